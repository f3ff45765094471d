package optimistic

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"thoughts/internal/client/api"
	"thoughts/internal/client/models"
	"thoughts/internal/client/store"
	"thoughts/internal/client/ui"
	"thoughts/internal/logging"
)

// CommentController mutates a post's comment sequence: optimistic add
// and edit, confirmation-gated delete. Edit and delete are author-only
// and refuse foreign comment ids before any network traffic.
type CommentController struct {
	gate    Gate
	api     api.Client
	auth    *store.AuthStore
	confirm ui.Confirmer
	log     logging.Logger
}

func NewCommentController(client api.Client, auth *store.AuthStore, confirm ui.Confirmer, log logging.Logger) *CommentController {
	return &CommentController{api: client, auth: auth, confirm: confirm, log: log.With("controller", "comment")}
}

// Add appends a comment immediately under a temporary id, then swaps in
// the server-assigned comment once the create call succeeds. On failure
// the sequence reverts to its pre-mutation value.
func (c *CommentController) Add(ctx context.Context, post *models.Post, text string) error {
	user := c.auth.Current()
	if user == nil {
		return ErrLoginRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	temp := models.Comment{
		ID:        "tmp-" + uuid.NewString(),
		PostID:    post.ID,
		Text:      text,
		Author:    user.Summary(),
		CreatedAt: time.Now(),
	}
	prev := append([]models.Comment(nil), post.Comments...)
	next := append(append([]models.Comment(nil), prev...), temp)

	return Do(ctx, &c.gate, prev, next,
		func(cs []models.Comment) { post.Comments = cs },
		func(ctx context.Context) (*[]models.Comment, error) {
			created, err := c.api.CreateComment(ctx, post.ID, text)
			if err != nil {
				return nil, err
			}
			reconciled := append([]models.Comment(nil), next...)
			for i := range reconciled {
				if reconciled[i].ID == temp.ID {
					reconciled[i] = *created
				}
			}
			return &reconciled, nil
		})
}

// Edit replaces a comment's text locally, then reconciles with the
// updated comment from the server. Only the author may edit; a foreign
// id fails with ErrNotOwner without issuing the call.
func (c *CommentController) Edit(ctx context.Context, post *models.Post, commentID, text string) error {
	user := c.auth.Current()
	if user == nil {
		return ErrLoginRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	idx := -1
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return api.ErrNotFound
	}
	if !post.Comments[idx].OwnedBy(user.ID) {
		return ErrNotOwner
	}

	prev := append([]models.Comment(nil), post.Comments...)
	next := append([]models.Comment(nil), prev...)
	next[idx].Text = text

	return Do(ctx, &c.gate, prev, next,
		func(cs []models.Comment) { post.Comments = cs },
		func(ctx context.Context) (*[]models.Comment, error) {
			updated, err := c.api.UpdateComment(ctx, commentID, text)
			if err != nil {
				return nil, err
			}
			reconciled := append([]models.Comment(nil), next...)
			reconciled[idx] = *updated
			return &reconciled, nil
		})
}

// Delete removes a comment behind a blocking confirmation. The comment
// leaves the local sequence only after the server call succeeds; a
// declined confirmation changes nothing. Authors and administrators may
// delete. The returned flag reports whether the deletion happened.
func (c *CommentController) Delete(ctx context.Context, post *models.Post, commentID string) (bool, error) {
	user := c.auth.Current()
	if user == nil {
		return false, ErrLoginRequired
	}

	var target *models.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return false, api.ErrNotFound
	}
	if !target.OwnedBy(user.ID) && !user.IsAdmin {
		return false, ErrNotOwner
	}

	if err := c.gate.begin(); err != nil {
		return false, err
	}

	done, err := ui.RunDestructive(ctx, c.confirm,
		"Delete comment?", "This comment will be deleted permanently.",
		func(ctx context.Context) error {
			_, derr := c.api.DeleteComment(ctx, commentID)
			return derr
		})

	final := StateIdle
	if done {
		final = StateCommitted
	}
	c.gate.settle(final, func() {
		if !done {
			return
		}
		kept := post.Comments[:0]
		for _, cm := range post.Comments {
			if cm.ID != commentID {
				kept = append(kept, cm)
			}
		}
		post.Comments = kept
	})
	return done, err
}

// State exposes the lifecycle of the last mutation.
func (c *CommentController) State() State { return c.gate.State() }

// Close detaches the controller on view teardown.
func (c *CommentController) Close() { c.gate.Close() }
