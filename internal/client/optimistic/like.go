package optimistic

import (
	"context"

	"thoughts/internal/client/api"
	"thoughts/internal/client/models"
	"thoughts/internal/client/store"
	"thoughts/internal/logging"
)

// LikeController toggles the current user's membership in a post's like
// set. The toggle is idempotent set membership; applying it twice
// restores the original state.
type LikeController struct {
	gate Gate
	api  api.Client
	auth *store.AuthStore
	log  logging.Logger
}

func NewLikeController(client api.Client, auth *store.AuthStore, log logging.Logger) *LikeController {
	return &LikeController{api: client, auth: auth, log: log.With("controller", "like")}
}

// Toggle flips the like for post. The like set updates immediately;
// while the request is in flight further toggles return ErrBusy. On
// failure the prior membership is restored exactly. The server response
// body is not used for reconciliation: toggling is idempotent and the
// local set already reflects the intent.
func (c *LikeController) Toggle(ctx context.Context, post *models.Post) error {
	user := c.auth.Current()
	if user == nil {
		return ErrLoginRequired
	}

	prev := append([]models.User(nil), post.Likes...)
	next := models.ToggleLike(post.Likes, *user)

	err := Do(ctx, &c.gate, prev, next,
		func(likes []models.User) { post.Likes = likes },
		func(ctx context.Context) (*[]models.User, error) {
			if _, err := c.api.ToggleLike(ctx, post.ID); err != nil {
				return nil, err
			}
			return nil, nil
		})
	if err != nil {
		c.log.Warn(ctx, "like toggle failed", "postID", post.ID, "error", err)
	}
	return err
}

// State exposes the lifecycle of the last toggle.
func (c *LikeController) State() State { return c.gate.State() }

// Close detaches the controller on view teardown.
func (c *LikeController) Close() { c.gate.Close() }
