// Package ui defines the small seams between the client core and the
// terminal: transient notifications and blocking confirmation prompts.
// The core depends only on the interfaces, so tests substitute fakes
// and a different front end can replace the terminal implementations.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Notifier surfaces transient, user-visible outcome messages, the
// equivalent of toast notifications in a graphical client.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// TerminalNotifier writes notifications as single lines.
type TerminalNotifier struct {
	W io.Writer
}

func (n *TerminalNotifier) Success(msg string) {
	fmt.Fprintf(n.W, "✔ %s\n", msg)
}

func (n *TerminalNotifier) Error(msg string) {
	fmt.Fprintf(n.W, "✘ %s\n", msg)
}

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(title, text string) bool
}

// TerminalConfirmer prompts on the terminal and accepts y/yes.
type TerminalConfirmer struct {
	R *bufio.Reader
	W io.Writer
}

func (c *TerminalConfirmer) Confirm(title, text string) bool {
	fmt.Fprintf(c.W, "%s\n%s [y/N]: ", title, text)
	line, err := c.R.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
