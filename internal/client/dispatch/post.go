package dispatch

import (
	"context"
	"fmt"
	"strings"

	"thoughts/internal/client/api"
)

// CreatePost publishes a new post. On success the post is prepended to
// the profile page's sequence so the UI reflects it without a re-fetch.
// Validation failures (local or backend) return a field->message map
// for inline display; the profile store is never mutated on failure.
func (d *Dispatcher) CreatePost(ctx context.Context, title, description, category, imageName string, image []byte) (map[string]string, error) {
	fieldErrors := map[string]string{}
	if strings.TrimSpace(title) == "" {
		fieldErrors["title"] = "Title is required"
	}
	if strings.TrimSpace(description) == "" {
		fieldErrors["description"] = "Description is required"
	}
	if strings.TrimSpace(category) == "" {
		fieldErrors["category"] = "Category is required"
	}
	if len(image) == 0 {
		fieldErrors["image"] = "Image is required"
	}
	if len(fieldErrors) > 0 {
		return fieldErrors, fmt.Errorf("%w: incomplete post", ErrValidation)
	}

	epoch := d.auth.Epoch()
	fields := map[string]string{
		"title":       title,
		"description": description,
		"category":    category,
	}

	post, err := d.api.CreatePost(ctx, fields, imageName, image)
	if err != nil {
		if fields := api.FieldErrorsOf(err); len(fields) > 0 {
			return fields, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		d.notify.Error(api.MessageOf(err, "Failed to create post"))
		return nil, err
	}
	if !d.auth.StillCurrent(epoch) {
		d.log.Warn(ctx, "discarding stale create-post response")
		return nil, nil
	}
	d.profile.AddPost(*post)
	d.notify.Success("Post created successfully")
	return nil, nil
}
