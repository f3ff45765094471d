// Package storage persists the logged-in user across client restarts.
// One JSON record lives under a fixed key; its absence means
// unauthenticated. Storage is last-write-wins, with no coordination
// between concurrently running clients.
package storage

import (
	"context"

	"thoughts/internal/client/models"
)

type Repository interface {
	// Save replaces the persisted session record.
	Save(ctx context.Context, user *models.User) error
	// Load returns the persisted user, or (nil, nil) when none exists.
	Load(ctx context.Context) (*models.User, error)
	// Clear removes the session record. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
