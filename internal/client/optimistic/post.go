package optimistic

import (
	"context"

	"thoughts/internal/client/api"
	"thoughts/internal/client/models"
	"thoughts/internal/client/store"
	"thoughts/internal/client/ui"
	"thoughts/internal/logging"
)

// PostController edits and deletes posts. Edits are optimistic; deletes
// are confirmation-gated and only touch local state after the server
// acknowledged.
type PostController struct {
	gate    Gate
	api     api.Client
	auth    *store.AuthStore
	confirm ui.Confirmer
	log     logging.Logger
}

func NewPostController(client api.Client, auth *store.AuthStore, confirm ui.Confirmer, log logging.Logger) *PostController {
	return &PostController{api: client, auth: auth, confirm: confirm, log: log.With("controller", "post")}
}

// PostChanges carries the editable post fields. Nil members are left
// unchanged; Image replaces the post image when non-nil.
type PostChanges struct {
	Title       *string
	Description *string
	Category    *string
	ImageName   string
	Image       []byte
}

func (ch PostChanges) fields() map[string]string {
	f := map[string]string{}
	if ch.Title != nil {
		f["title"] = *ch.Title
	}
	if ch.Description != nil {
		f["description"] = *ch.Description
	}
	if ch.Category != nil {
		f["category"] = *ch.Category
	}
	return f
}

// Edit applies the changes to the post immediately, then reconciles
// with the post returned by the server, rolling back on failure.
// Authors and administrators only.
func (c *PostController) Edit(ctx context.Context, post *models.Post, changes PostChanges) error {
	user := c.auth.Current()
	if user == nil {
		return ErrLoginRequired
	}
	if post.Author.ID != user.ID && !user.IsAdmin {
		return ErrNotOwner
	}

	fields := changes.fields()
	if len(fields) == 0 && changes.Image == nil {
		return nil
	}

	prev := *post
	next := prev
	if changes.Title != nil {
		next.Title = *changes.Title
	}
	if changes.Description != nil {
		next.Description = *changes.Description
	}
	if changes.Category != nil {
		next.Category = *changes.Category
	}

	return Do(ctx, &c.gate, prev, next,
		func(p models.Post) { *post = p },
		func(ctx context.Context) (*models.Post, error) {
			updated, err := c.api.UpdatePost(ctx, post.ID, fields, changes.ImageName, changes.Image)
			if err != nil {
				return nil, err
			}
			return updated, nil
		})
}

// Delete removes the post behind a blocking confirmation. On success
// the remove callback drops the post from whatever collection holds it
// (profile page, browse list). The returned flag reports whether the
// deletion happened.
func (c *PostController) Delete(ctx context.Context, post *models.Post, remove func(postID string)) (bool, error) {
	user := c.auth.Current()
	if user == nil {
		return false, ErrLoginRequired
	}
	if post.Author.ID != user.ID && !user.IsAdmin {
		return false, ErrNotOwner
	}

	if err := c.gate.begin(); err != nil {
		return false, err
	}

	done, err := ui.RunDestructive(ctx, c.confirm,
		"Delete post?", "This post will be deleted permanently.",
		func(ctx context.Context) error {
			_, derr := c.api.DeletePost(ctx, post.ID)
			return derr
		})

	final := StateIdle
	if done {
		final = StateCommitted
	}
	c.gate.settle(final, func() {
		if done && remove != nil {
			remove(post.ID)
		}
	})
	return done, err
}

// State exposes the lifecycle of the last mutation.
func (c *PostController) State() State { return c.gate.State() }

// Close detaches the controller on view teardown.
func (c *PostController) Close() { c.gate.Close() }
