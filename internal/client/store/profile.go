package store

import (
	"sync"

	"thoughts/internal/client/models"
)

// ProfileStore holds the profile page state: the viewed profile (which
// may or may not be the authenticated user), a loading flag and the
// last fetch error.
//
// Loading must always return to false: every fetch path sets it true on
// entry and false on exit via a deferred call, success or failure.
type ProfileStore struct {
	mu      sync.Mutex
	profile *models.Profile
	loading bool
	err     string
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// Profile returns a copy of the viewed profile, or nil.
func (s *ProfileStore) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	p.Posts = append([]models.Post(nil), s.profile.Posts...)
	return &p
}

func (s *ProfileStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ProfileStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// SetProfile replaces the profile and clears the loading flag.
func (s *ProfileStore) SetProfile(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.loading = false
	s.err = ""
}

func (s *ProfileStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetError records the fetch error and clears loading. The existing
// profile is kept: stale data beats a blank page while the error shows.
func (s *ProfileStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.loading = false
}

// AddPost prepends a freshly created post so the page reflects it
// without a re-fetch. No-op when no profile is loaded.
func (s *ProfileStore) AddPost(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return
	}
	s.profile.Posts = append([]models.Post{post}, s.profile.Posts...)
}

// RemovePost drops the post with the given id from the profile's post
// sequence, if present.
func (s *ProfileStore) RemovePost(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return
	}
	posts := s.profile.Posts[:0]
	for _, p := range s.profile.Posts {
		if p.ID != postID {
			posts = append(posts, p)
		}
	}
	s.profile.Posts = posts
}

// Clear resets the store, e.g. when navigating away from the profile.
func (s *ProfileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.loading = false
	s.err = ""
}
