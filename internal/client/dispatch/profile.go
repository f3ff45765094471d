package dispatch

import (
	"context"

	"thoughts/internal/client/api"
	"thoughts/internal/client/models"
)

// FetchProfile loads a user's profile page into the profile store.
// The loading flag goes false -> true -> false exactly once per call,
// success or failure; the deferred reset guards every exit path.
func (d *Dispatcher) FetchProfile(ctx context.Context, userID string) error {
	epoch := d.auth.Epoch()

	d.profile.SetLoading(true)
	defer d.profile.SetLoading(false)

	p, err := d.api.GetProfile(ctx, userID)
	if err != nil {
		d.notify.Error(api.MessageOf(err, "Failed to load profile."))
		d.profile.SetError(err.Error())
		return err
	}
	if !d.auth.StillCurrent(epoch) {
		d.log.Warn(ctx, "discarding stale profile response", "userID", userID)
		return nil
	}
	d.profile.SetProfile(p)
	return nil
}

// ProfileChanges carries the editable profile fields. Nil members are
// not part of the request.
type ProfileChanges struct {
	Username *string
	Bio      *string
	Password *string
}

// UpdateUserInfo sends only the fields that differ from the currently
// stored values. When nothing differs the operation is a no-op success:
// no network call, no store mutation.
func (d *Dispatcher) UpdateUserInfo(ctx context.Context, changes ProfileChanges) error {
	user := d.auth.Current()
	if user == nil {
		return api.ErrUnauthorized
	}

	current := user
	if p := d.profile.Profile(); p != nil && p.ID == user.ID {
		current = &p.User
	}

	fields := map[string]string{}
	if changes.Username != nil && *changes.Username != current.Username {
		fields["username"] = *changes.Username
	}
	if changes.Bio != nil && *changes.Bio != current.Bio {
		fields["bio"] = *changes.Bio
	}
	if changes.Password != nil && *changes.Password != "" {
		fields["password"] = *changes.Password
	}
	if len(fields) == 0 {
		d.log.Debug(ctx, "profile info unchanged, skipping update")
		return nil
	}

	epoch := d.auth.Epoch()
	d.profile.SetLoading(true)
	defer d.profile.SetLoading(false)

	updated, err := d.api.UpdateProfile(ctx, user.ID, fields)
	if err != nil {
		d.notify.Error(api.MessageOf(err, "Failed to update info"))
		d.profile.SetError(err.Error())
		return err
	}
	if !d.auth.StillCurrent(epoch) {
		return nil
	}
	d.profile.SetProfile(updated)
	if err := d.auth.Update(ctx, func(u *models.User) {
		u.Username = updated.Username
		u.Bio = updated.Bio
	}); err != nil {
		d.log.Error(ctx, "persisting updated user failed", "error", err)
	}
	d.notify.Success("Profile info updated")
	return nil
}

// UpdateProfileImage uploads a new profile image and merges the
// returned URL into the profile store and, since the profile page is
// the current user's, into the auth store and durable storage.
func (d *Dispatcher) UpdateProfileImage(ctx context.Context, filename string, data []byte) error {
	user := d.auth.Current()
	if user == nil {
		return api.ErrUnauthorized
	}

	epoch := d.auth.Epoch()
	d.profile.SetLoading(true)
	defer d.profile.SetLoading(false)

	url, err := d.api.UploadProfileImage(ctx, filename, data)
	if err != nil {
		d.notify.Error(api.MessageOf(err, "Failed to update image"))
		d.profile.SetError(err.Error())
		return err
	}
	if !d.auth.StillCurrent(epoch) {
		d.log.Warn(ctx, "discarding stale image response")
		return nil
	}

	if p := d.profile.Profile(); p != nil {
		p.ProfileImage.URL = url
		d.profile.SetProfile(p)
	}
	if err := d.auth.Update(ctx, func(u *models.User) {
		u.ProfileImage.URL = url
	}); err != nil {
		d.log.Error(ctx, "persisting updated user failed", "error", err)
	}
	d.notify.Success("Profile image updated")
	return nil
}
