// Package optimistic implements local-first mutations: the new value is
// applied to client state before the network call resolves, then either
// reconciled with the server's canonical result or rolled back to the
// recorded pre-mutation value on failure.
//
// Each controller owns a Gate: while one mutation is in flight, further
// attempts are rejected with ErrBusy, so out-of-order acknowledgments
// cannot clobber newer local state. A closed (detached) controller
// never writes state again, which is how a torn-down view keeps late
// responses from mutating it.
package optimistic

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrBusy rejects a mutation while another one is in flight.
	ErrBusy = errors.New("mutation already in flight")
	// ErrClosed rejects mutations on a detached controller.
	ErrClosed = errors.New("controller is detached")
	// ErrLoginRequired rejects mutations that need a session.
	ErrLoginRequired = errors.New("login required")
	// ErrNotOwner rejects author-only operations for other users.
	ErrNotOwner = errors.New("not the author")
)

// State is the lifecycle of the most recent mutation.
type State int

const (
	StateIdle State = iota
	StatePending
	StateCommitted
	StateRolledBack
)

// Gate serializes the mutations of one controller and blocks state
// writes after Close.
type Gate struct {
	mu      sync.Mutex
	state   State
	pending bool
	closed  bool
}

// State returns the lifecycle state of the last mutation.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Close detaches the gate. Pending mutations finish their network call
// but no longer write state.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

func (g *Gate) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrClosed
	}
	if g.pending {
		return ErrBusy
	}
	g.pending = true
	g.state = StatePending
	return nil
}

// settle ends the pending mutation. apply runs under the gate lock and
// is skipped entirely when the gate was closed while the request was in
// flight.
func (g *Gate) settle(final State, apply func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = false
	if g.closed {
		return
	}
	g.state = final
	if apply != nil {
		apply()
	}
}

// Do runs one optimistic mutation over a value of type T:
//
//  1. prev is the recorded pre-mutation value, next the locally
//     computed result of the intended change.
//  2. next is applied through set immediately.
//  3. send issues the network request; it may return a canonical value
//     to reconcile local state with (nil to keep next).
//  4. On failure set(prev) restores the exact prior value.
func Do[T any](ctx context.Context, g *Gate, prev, next T, set func(T), send func(context.Context) (*T, error)) error {
	if err := g.begin(); err != nil {
		return err
	}
	set(next)

	canonical, err := send(ctx)
	if err != nil {
		g.settle(StateRolledBack, func() { set(prev) })
		return err
	}
	g.settle(StateCommitted, func() {
		if canonical != nil {
			set(*canonical)
		}
	})
	return nil
}
