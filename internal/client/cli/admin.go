package cli

import (
	"context"
	"fmt"

	"thoughts/internal/client/api"
	"thoughts/internal/client/routes"
)

const usersPerPage = 10

// Users lists a page of registered accounts for the moderation
// dashboard.
func (a *App) Users(ctx context.Context, page int) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	up, err := a.api.ListUsers(ctx, page, usersPerPage)
	if err != nil {
		printlnFn("Failed to load users:", api.MessageOf(err, err.Error()))
		return err
	}
	for _, u := range up.Users {
		flags := ""
		if u.IsAdmin {
			flags += " admin"
		}
		if u.IsBlocked {
			flags += " blocked"
		}
		if !u.IsAccountVerified {
			flags += " unverified"
		}
		printlnFn(fmt.Sprintf("%s  %-20s <%s>%s", u.ID, u.Username, u.Email, flags))
	}
	printlnFn(fmt.Sprintf("Page %d of %d", page, up.Pages))
	return nil
}

// BlockUser toggles an account's block flag; blocked reports the
// account's current state, so false means "block" and true "unblock".
func (a *App) BlockUser(ctx context.Context, userID string, blocked bool) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	_, err := a.dispatch.BlockUser(ctx, userID, blocked)
	return err
}

// VerifyUser marks an account as verified without the email round trip.
func (a *App) VerifyUser(ctx context.Context, userID string) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	_, err := a.dispatch.VerifyUser(ctx, userID)
	return err
}

// DeleteUser removes an account permanently.
func (a *App) DeleteUser(ctx context.Context, userID string) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	_, err := a.dispatch.DeleteUser(ctx, userID, nil)
	return err
}

// AddCategory creates a post category.
func (a *App) AddCategory(ctx context.Context, title string) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	return a.dispatch.CreateCategory(ctx, title)
}

// EditCategory renames a category.
func (a *App) EditCategory(ctx context.Context, categoryID, title string) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	return a.dispatch.UpdateCategory(ctx, categoryID, title)
}

// DeleteCategory removes a category.
func (a *App) DeleteCategory(ctx context.Context, categoryID string) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	_, err := a.dispatch.DeleteCategory(ctx, categoryID, nil)
	return err
}

// Comments lists a page of all comments across posts for moderation.
func (a *App) Comments(ctx context.Context, page int) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	cp, err := a.api.ListComments(ctx, page)
	if err != nil {
		printlnFn("Failed to load comments:", api.MessageOf(err, err.Error()))
		return err
	}
	for _, c := range cp.Comments {
		printlnFn(fmt.Sprintf("%s  %s on %s: %s", c.ID, c.Author.Username, c.PostID, c.Text))
	}
	printlnFn(fmt.Sprintf("Page %d of %d", page, cp.Pages))
	return nil
}

// RemoveComment deletes any comment through the moderation dashboard.
func (a *App) RemoveComment(ctx context.Context, commentID string) error {
	if !a.enter(routes.Admin) {
		return nil
	}
	_, err := a.dispatch.DeleteComment(ctx, commentID, func(id string) {
		if a.current == nil {
			return
		}
		comments := a.current.Comments[:0]
		for _, c := range a.current.Comments {
			if c.ID != id {
				comments = append(comments, c)
			}
		}
		a.current.Comments = comments
	})
	return err
}
