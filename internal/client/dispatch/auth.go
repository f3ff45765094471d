package dispatch

import (
	"context"
	"fmt"

	"thoughts/internal/client/api"
)

// Login authenticates and starts a session. On success the user is
// persisted durably and published through the auth store; on failure
// the store is untouched and the backend message (or a fallback) is
// shown.
func (d *Dispatcher) Login(ctx context.Context, email, password string) error {
	epoch := d.auth.Epoch()

	user, err := d.api.Login(ctx, email, password)
	if err != nil {
		d.notify.Error(api.MessageOf(err, "Login failed. Please try again."))
		return err
	}
	if !d.auth.StillCurrent(epoch) {
		// session changed while the request was in flight; discard
		d.log.Warn(ctx, "discarding stale login response", "email", email)
		return nil
	}
	if err := d.auth.Login(ctx, user); err != nil {
		d.notify.Error("Login failed. Please try again.")
		return fmt.Errorf("persisting session: %w", err)
	}
	d.notify.Success("Logged in successfully!")
	d.log.Info(ctx, "logged in", "userID", user.ID)
	return nil
}

// Logout asks for confirmation, then clears the session. Declining
// leaves every piece of state unchanged.
func (d *Dispatcher) Logout(ctx context.Context) error {
	if !d.confirm.Confirm("Are you sure?", "You will be logged out from your account.") {
		return nil
	}
	if err := d.auth.Logout(ctx); err != nil {
		d.notify.Error("Logout failed. Please try again.")
		return err
	}
	d.profile.Clear()
	d.notify.Success("Logged out successfully!")
	return nil
}

// Register creates an account. When the backend rejects individual
// fields it returns the field->message map (with ErrValidation) for
// inline display; any other failure produces a generic notification.
func (d *Dispatcher) Register(ctx context.Context, username, email, password string) (map[string]string, error) {
	if err := d.api.Register(ctx, username, email, password); err != nil {
		if fields := api.FieldErrorsOf(err); len(fields) > 0 {
			return fields, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		d.notify.Error(api.MessageOf(err, "Registration failed"))
		return nil, err
	}
	d.notify.Success("Email verification link sent to your email!")
	return nil, nil
}
