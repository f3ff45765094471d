package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"thoughts/internal/client/api"
	"thoughts/internal/client/optimistic"
	"thoughts/internal/client/routes"
)

const postsPerPage = 10

// Posts lists a page of published posts, newest first.
func (a *App) Posts(ctx context.Context, page int) error {
	pp, err := a.api.ListPosts(ctx, page, postsPerPage, "")
	if err != nil {
		printlnFn("Failed to load posts:", api.MessageOf(err, err.Error()))
		return err
	}
	if len(pp.Posts) == 0 {
		printlnFn("No posts on this page.")
		return nil
	}
	for _, p := range pp.Posts {
		printlnFn(fmt.Sprintf("%s  %-40s by %s (%d likes, %d comments)",
			p.ID, p.Title, p.Author.Username, len(p.Likes), len(p.Comments)))
	}
	printlnFn(fmt.Sprintf("Page %d of %d", page, pp.Pages))
	return nil
}

// Open fetches a single post and makes it the current one; like and
// comment commands act on the opened post.
func (a *App) Open(ctx context.Context, postID string) error {
	post, err := a.api.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("Post not found.")
			return nil
		}
		printlnFn("Failed to load post:", api.MessageOf(err, err.Error()))
		return err
	}
	a.current = post
	a.renderCurrent()
	return nil
}

// Categories lists the available post categories.
func (a *App) Categories(ctx context.Context) error {
	cats, err := a.api.ListCategories(ctx)
	if err != nil {
		printlnFn("Failed to load categories:", api.MessageOf(err, err.Error()))
		return err
	}
	for _, c := range cats {
		printlnFn(c.ID + "  " + c.Title)
	}
	return nil
}

// Like toggles the current user's like on the opened post. The change
// shows immediately; a failed request puts the previous state back.
func (a *App) Like(ctx context.Context) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	if a.current == nil {
		printlnFn("Open a post first.")
		return nil
	}
	err := a.likes.Toggle(ctx, a.current)
	switch {
	case errors.Is(err, optimistic.ErrBusy):
		printlnFn("Still sending the previous change, try again in a moment.")
		return nil
	case errors.Is(err, optimistic.ErrLoginRequired):
		printlnFn("Log in to like posts.")
		return nil
	case err != nil:
		printlnFn("Like failed, reverted.")
		return err
	}
	a.renderCurrent()
	return nil
}

// Comment adds a comment to the opened post.
func (a *App) Comment(ctx context.Context, text string) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	if a.current == nil {
		printlnFn("Open a post first.")
		return nil
	}
	err := a.comments.Add(ctx, a.current, text)
	switch {
	case errors.Is(err, optimistic.ErrBusy):
		printlnFn("Still sending the previous change, try again in a moment.")
		return nil
	case err != nil:
		printlnFn("Comment failed, removed.")
		return err
	}
	a.renderCurrent()
	return nil
}

// EditComment replaces the text of one of the user's own comments on
// the opened post.
func (a *App) EditComment(ctx context.Context, commentID string) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	if a.current == nil {
		printlnFn("Open a post first.")
		return nil
	}
	text, err := getSimpleText(a.reader, "New text", os.Stdout)
	if err != nil {
		return err
	}
	err = a.comments.Edit(ctx, a.current, commentID, text)
	switch {
	case errors.Is(err, optimistic.ErrNotOwner):
		printlnFn("You can only edit your own comments.")
		return nil
	case errors.Is(err, api.ErrNotFound):
		printlnFn("No such comment on this post.")
		return nil
	case errors.Is(err, optimistic.ErrBusy):
		printlnFn("Still sending the previous change, try again in a moment.")
		return nil
	case err != nil:
		printlnFn("Edit failed, reverted.")
		return err
	}
	a.renderCurrent()
	return nil
}

// DeleteComment removes a comment from the opened post after
// confirmation. Owners may delete their own comments; admins any.
func (a *App) DeleteComment(ctx context.Context, commentID string) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	if a.current == nil {
		printlnFn("Open a post first.")
		return nil
	}
	done, err := a.comments.Delete(ctx, a.current, commentID)
	switch {
	case errors.Is(err, optimistic.ErrNotOwner):
		printlnFn("You can only delete your own comments.")
		return nil
	case errors.Is(err, api.ErrNotFound):
		printlnFn("No such comment on this post.")
		return nil
	case err != nil:
		printlnFn("Delete failed.")
		return err
	}
	if done {
		a.renderCurrent()
	}
	return nil
}

// renderCurrent prints the opened post with its likes and comments.
func (a *App) renderCurrent() {
	p := a.current
	if p == nil {
		return
	}
	printlnFn("## " + p.Title + "  (" + p.Category + ")")
	printlnFn("by " + p.Author.Username)
	printlnFn(p.Description)
	printlnFn(fmt.Sprintf("%d likes", len(p.Likes)))
	if u := a.auth.Current(); u != nil && p.LikedBy(u.ID) {
		printlnFn("You like this post.")
	}
	for _, c := range p.Comments {
		printlnFn(fmt.Sprintf("  [%s] %s: %s", c.ID, c.Author.Username, c.Text))
	}
}
