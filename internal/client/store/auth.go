// Package store holds the client's global state: the authenticated
// session and the profile page data. State changes only through the
// transition methods here; dispatchers are the sole callers.
package store

import (
	"context"
	"sync"

	"thoughts/internal/client/models"
	"thoughts/internal/client/storage"
)

// AuthStore is the single authentication state of a running client:
// the current user, or nil when unauthenticated.
//
// Contract:
//   - Login persists the user durably and then publishes it; after a
//     successful Login every read (including after a restart, via
//     RestoreSession) observes the same user until Logout.
//   - Logout clears durable storage and memory atomically: if the
//     storage write fails, the in-memory user is kept too.
//   - Every transition bumps the session epoch. Workflows capture the
//     epoch before awaiting the network and drop their writes when it
//     has moved, so a token cleared by logout is never resurrected by
//     a late response.
type AuthStore struct {
	mu    sync.Mutex
	user  *models.User
	epoch uint64
	repo  storage.Repository
}

func NewAuthStore(repo storage.Repository) *AuthStore {
	return &AuthStore{repo: repo}
}

// Current returns a copy of the authenticated user, or nil.
func (s *AuthStore) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the session token of the current user, or "" when
// unauthenticated. It is the TokenSource of the API client and is read
// at request time, never cached.
func (s *AuthStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// Epoch returns the current session generation.
func (s *AuthStore) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// StillCurrent reports whether no login/logout happened since the
// given epoch was captured.
func (s *AuthStore) StillCurrent(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch == epoch
}

// Login persists user and makes it the current session.
func (s *AuthStore) Login(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}
	u := *user
	s.user = &u
	s.epoch++
	return nil
}

// Logout clears the session. Storage is cleared first; on failure the
// in-memory user is left in place so the two never diverge.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.user = nil
	s.epoch++
	return nil
}

// RestoreSession populates the store from durable storage. It runs
// synchronously at startup, before any guarded view is entered; the
// absence of a record leaves the store unauthenticated.
func (s *AuthStore) RestoreSession(ctx context.Context) error {
	user, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	if user != nil {
		s.epoch++
	}
	return nil
}

// Update persists and publishes a modified copy of the current user
// produced by fn, without starting a new session (the epoch is kept, so
// in-flight workflows of the same session remain valid). No-op when
// unauthenticated.
func (s *AuthStore) Update(ctx context.Context, fn func(u *models.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	fn(&u)
	if err := s.repo.Save(ctx, &u); err != nil {
		return err
	}
	s.user = &u
	return nil
}
