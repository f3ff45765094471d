package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"thoughts/internal/client/api"
	"thoughts/internal/client/dispatch"
	"thoughts/internal/client/optimistic"
	"thoughts/internal/client/routes"
)

// Profile loads and renders the signed-in user's profile page.
func (a *App) Profile(ctx context.Context) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	user := a.auth.Current()

	if err := a.dispatch.FetchProfile(ctx, user.ID); err != nil {
		return err
	}
	p := a.profile.Profile()
	if p == nil {
		return nil
	}

	printlnFn("@" + p.Username + "  <" + p.Email + ">")
	if p.Bio != "" {
		printlnFn(p.Bio)
	}
	if !p.IsAccountVerified {
		printlnFn("Account not verified yet. Check your email.")
	}
	printlnFn(fmt.Sprintf("%d posts:", len(p.Posts)))
	for _, post := range p.Posts {
		printlnFn("  " + post.ID + "  " + post.Title)
	}
	return nil
}

// EditProfile prompts for new profile details and sends only the
// fields that actually changed. Empty input keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	user := a.auth.Current()

	username, err := getSimpleText(a.reader, "Username ["+user.Username+"] (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := GetMultiline(a.reader, "Bio (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}

	changes := dispatch.ProfileChanges{}
	if username != "" {
		changes.Username = &username
	}
	if bio != "" {
		changes.Bio = &bio
	}
	return a.dispatch.UpdateUserInfo(ctx, changes)
}

// SetImage uploads a new profile image from a local file.
func (a *App) SetImage(ctx context.Context, path string) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Cannot read image:", err.Error())
		return err
	}
	return a.dispatch.UpdateProfileImage(ctx, filepath.Base(path), data)
}

// NewPost prompts for the post fields and publishes it. Validation
// errors are printed next to their field names.
func (a *App) NewPost(ctx context.Context) error {
	if !a.enter(routes.Profile) {
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Image file", os.Stdout)
	if err != nil {
		return err
	}

	var image []byte
	imageName := ""
	if imagePath != "" {
		image, err = os.ReadFile(imagePath)
		if err != nil {
			printlnFn("Cannot read image:", err.Error())
			return err
		}
		imageName = filepath.Base(imagePath)
	}

	fields, err := a.dispatch.CreatePost(ctx, title, description, category, imageName, image)
	if errors.Is(err, dispatch.ErrValidation) {
		printFieldErrors(fields)
		return nil
	}
	return err
}

// EditPost updates one of the user's posts (admins may edit any).
// Empty input keeps the current value; the listing shows the change
// immediately and a failed request puts the old values back.
func (a *App) EditPost(ctx context.Context, postID string) error {
	if !a.enter(routes.Profile) {
		return nil
	}

	post, err := a.api.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("Post not found.")
			return nil
		}
		return err
	}

	title, err := getSimpleText(a.reader, "Title ["+post.Title+"] (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category ["+post.Category+"] (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}

	changes := optimistic.PostChanges{}
	if title != "" {
		changes.Title = &title
	}
	if description != "" {
		changes.Description = &description
	}
	if category != "" {
		changes.Category = &category
	}

	err = a.posts.Edit(ctx, post, changes)
	switch {
	case errors.Is(err, optimistic.ErrNotOwner):
		printlnFn("You can only edit your own posts.")
		return nil
	case errors.Is(err, optimistic.ErrBusy):
		printlnFn("Still sending the previous change, try again in a moment.")
		return nil
	case err != nil:
		printlnFn("Edit failed, reverted.")
		return err
	}
	printlnFn("Post updated.")
	if a.current != nil && a.current.ID == post.ID {
		a.current = post
	}
	return nil
}

// DeletePost removes one of the user's posts after confirmation
// (admins may delete any). The profile page listing is updated on
// success.
func (a *App) DeletePost(ctx context.Context, postID string) error {
	if !a.enter(routes.Profile) {
		return nil
	}

	post, err := a.api.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("Post not found.")
			return nil
		}
		return err
	}

	done, err := a.posts.Delete(ctx, post, func(id string) {
		a.profile.RemovePost(id)
		if a.current != nil && a.current.ID == id {
			a.current = nil
		}
	})
	switch {
	case errors.Is(err, optimistic.ErrNotOwner):
		printlnFn("You can only delete your own posts.")
		return nil
	case err != nil:
		printlnFn("Delete failed.")
		return err
	}
	if done {
		printlnFn("Post deleted.")
	}
	return nil
}
