package dispatch

import (
	"context"

	"thoughts/internal/client/api"
	"thoughts/internal/client/ui"
)

// Admin moderation workflows. Destructive ones run behind the blocking
// confirmation flow: the network call fires only on confirmation,
// failures surface inline in the confirmation surface for retry, and
// the in-memory collection is updated through the remove callback only
// after the server acknowledged.

// BlockUser toggles a user's block flag after confirmation.
func (d *Dispatcher) BlockUser(ctx context.Context, userID string, blocked bool) (bool, error) {
	action := "blocked"
	if blocked {
		action = "unblocked"
	}
	done, err := ui.RunDestructive(ctx, d.confirm,
		"Are you sure?", "This user will be "+action+".",
		func(ctx context.Context) error {
			_, berr := d.api.BlockUser(ctx, userID)
			return berr
		})
	if done {
		d.notify.Success("User " + action)
	}
	return done, err
}

// VerifyUser marks an account as verified after confirmation.
func (d *Dispatcher) VerifyUser(ctx context.Context, userID string) (bool, error) {
	done, err := ui.RunDestructive(ctx, d.confirm,
		"Verify account?", "This user will be marked as verified.",
		func(ctx context.Context) error {
			_, verr := d.api.VerifyUser(ctx, userID)
			return verr
		})
	if done {
		d.notify.Success("User verified successfully")
	}
	return done, err
}

// DeleteUser removes an account; remove drops it from the caller's
// listing on success.
func (d *Dispatcher) DeleteUser(ctx context.Context, userID string, remove func(id string)) (bool, error) {
	done, err := ui.RunDestructive(ctx, d.confirm,
		"Are you sure?", "This user will be deleted permanently!",
		func(ctx context.Context) error {
			_, derr := d.api.DeleteUser(ctx, userID)
			return derr
		})
	if done {
		if remove != nil {
			remove(userID)
		}
		d.notify.Success("User deleted")
	}
	return done, err
}

// CreateCategory adds a post category.
func (d *Dispatcher) CreateCategory(ctx context.Context, title string) error {
	if _, err := d.api.CreateCategory(ctx, title); err != nil {
		d.notify.Error(api.MessageOf(err, "Failed to create category"))
		return err
	}
	d.notify.Success("Category created")
	return nil
}

// UpdateCategory renames a category.
func (d *Dispatcher) UpdateCategory(ctx context.Context, categoryID, title string) error {
	if _, err := d.api.UpdateCategory(ctx, categoryID, title); err != nil {
		d.notify.Error(api.MessageOf(err, "Failed to update category"))
		return err
	}
	d.notify.Success("Category updated")
	return nil
}

// DeleteCategory removes a category after confirmation.
func (d *Dispatcher) DeleteCategory(ctx context.Context, categoryID string, remove func(id string)) (bool, error) {
	done, err := ui.RunDestructive(ctx, d.confirm,
		"Are you sure?", "This category will be deleted permanently!",
		func(ctx context.Context) error {
			_, derr := d.api.DeleteCategory(ctx, categoryID)
			return derr
		})
	if done {
		if remove != nil {
			remove(categoryID)
		}
		d.notify.Success("Category deleted")
	}
	return done, err
}

// DeleteComment removes a comment from the moderation listing after
// confirmation.
func (d *Dispatcher) DeleteComment(ctx context.Context, commentID string, remove func(id string)) (bool, error) {
	done, err := ui.RunDestructive(ctx, d.confirm,
		"Are you sure?", "This comment will be deleted permanently!",
		func(ctx context.Context) error {
			_, derr := d.api.DeleteComment(ctx, commentID)
			return derr
		})
	if done {
		if remove != nil {
			remove(commentID)
		}
		d.notify.Success("Comment deleted successfully")
	}
	return done, err
}
