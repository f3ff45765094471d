package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	VerifyEmail(ctx context.Context, userID, token string) error
	ResetPassword(ctx context.Context, userID, token string) error

	Posts(ctx context.Context, page int) error
	Open(ctx context.Context, postID string) error
	Categories(ctx context.Context) error

	Like(ctx context.Context) error
	Comment(ctx context.Context, text string) error
	EditComment(ctx context.Context, commentID string) error
	DeleteComment(ctx context.Context, commentID string) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SetImage(ctx context.Context, path string) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, postID string) error
	DeletePost(ctx context.Context, postID string) error

	Users(ctx context.Context, page int) error
	BlockUser(ctx context.Context, userID string, blocked bool) error
	VerifyUser(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
	AddCategory(ctx context.Context, title string) error
	EditCategory(ctx context.Context, categoryID, title string) error
	DeleteCategory(ctx context.Context, categoryID string) error
	Comments(ctx context.Context, page int) error
	RemoveComment(ctx context.Context, commentID string) error
}

// pageArg parses an optional page number argument, defaulting to 1.
func pageArg(args []string) int {
	if len(args) == 0 {
		return 1
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// runREPL starts a simple read-eval-print loop for the Thoughts CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// notify the user themselves. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("thoughts %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "verify":
			if len(args) < 2 {
				printlnFn("Usage: verify <userID> <token>")
				continue
			}
			_ = a.VerifyEmail(ctx, args[0], args[1])

		case "reset":
			if len(args) < 2 {
				printlnFn("Usage: reset <userID> <token>")
				continue
			}
			_ = a.ResetPassword(ctx, args[0], args[1])

		case "p", "posts":
			_ = a.Posts(ctx, pageArg(args))

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <postID>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "categories":
			_ = a.Categories(ctx)

		case "like":
			_ = a.Like(ctx)

		case "comment":
			if len(args) == 0 {
				printlnFn("Usage: comment <text>")
				continue
			}
			_ = a.Comment(ctx, strings.Join(args, " "))

		case "editcomment":
			if len(args) == 0 {
				printlnFn("Usage: editcomment <commentID>")
				continue
			}
			_ = a.EditComment(ctx, args[0])

		case "delcomment":
			if len(args) == 0 {
				printlnFn("Usage: delcomment <commentID>")
				continue
			}
			_ = a.DeleteComment(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "setimage":
			if len(args) == 0 {
				printlnFn("Usage: setimage <path>")
				continue
			}
			_ = a.SetImage(ctx, args[0])

		case "newpost":
			_ = a.NewPost(ctx)

		case "editpost":
			if len(args) == 0 {
				printlnFn("Usage: editpost <postID>")
				continue
			}
			_ = a.EditPost(ctx, args[0])

		case "delpost":
			if len(args) == 0 {
				printlnFn("Usage: delpost <postID>")
				continue
			}
			_ = a.DeletePost(ctx, args[0])

		case "users":
			_ = a.Users(ctx, pageArg(args))

		case "block":
			if len(args) == 0 {
				printlnFn("Usage: block <userID>")
				continue
			}
			_ = a.BlockUser(ctx, args[0], false)

		case "unblock":
			if len(args) == 0 {
				printlnFn("Usage: unblock <userID>")
				continue
			}
			_ = a.BlockUser(ctx, args[0], true)

		case "verifyuser":
			if len(args) == 0 {
				printlnFn("Usage: verifyuser <userID>")
				continue
			}
			_ = a.VerifyUser(ctx, args[0])

		case "deluser":
			if len(args) == 0 {
				printlnFn("Usage: deluser <userID>")
				continue
			}
			_ = a.DeleteUser(ctx, args[0])

		case "addcat":
			if len(args) == 0 {
				printlnFn("Usage: addcat <title>")
				continue
			}
			_ = a.AddCategory(ctx, strings.Join(args, " "))

		case "editcat":
			if len(args) < 2 {
				printlnFn("Usage: editcat <categoryID> <title>")
				continue
			}
			_ = a.EditCategory(ctx, args[0], strings.Join(args[1:], " "))

		case "delcat":
			if len(args) == 0 {
				printlnFn("Usage: delcat <categoryID>")
				continue
			}
			_ = a.DeleteCategory(ctx, args[0])

		case "comments":
			_ = a.Comments(ctx, pageArg(args))

		case "rmcomment":
			if len(args) == 0 {
				printlnFn("Usage: rmcomment <commentID>")
				continue
			}
			_ = a.RemoveComment(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Browsing: (p)osts [page], open <id>, categories")
	if !a.isLoggedIn() {
		printlnFn("Account: register, login, forgot, verify <id> <token>, reset <id> <token>")
	} else {
		printlnFn("Post: like, comment <text>, editcomment <id>, delcomment <id>")
		printlnFn("Profile: profile, editprofile, setimage <path>, newpost, editpost <id>, delpost <id>, logout")
	}
	if a.isAdmin() {
		printlnFn("Admin: users [page], block <id>, unblock <id>, verifyuser <id>, deluser <id>")
		printlnFn("Admin: addcat <title>, editcat <id> <title>, delcat <id>, comments [page], rmcomment <id>")
	}
	printlnFn("Other: help, exit")
}
