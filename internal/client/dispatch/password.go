package dispatch

import (
	"context"

	"thoughts/internal/client/api"
)

// VerifyEmail confirms a registration through the emailed link's
// userID/token pair.
func (d *Dispatcher) VerifyEmail(ctx context.Context, userID, token string) error {
	msg, err := d.api.VerifyEmail(ctx, userID, token)
	if err != nil {
		d.notify.Error(api.MessageOf(err, "Email verification failed"))
		return err
	}
	if msg == "" {
		msg = "Your account has been verified"
	}
	d.notify.Success(msg)
	return nil
}

// SendResetLink requests a password-reset email.
func (d *Dispatcher) SendResetLink(ctx context.Context, email string) error {
	msg, err := d.api.SendResetLink(ctx, email)
	if err != nil {
		d.notify.Error(api.MessageOf(err, "Failed to send reset link"))
		return err
	}
	if msg == "" {
		msg = "Password reset link sent to your email"
	}
	d.notify.Success(msg)
	return nil
}

// ResetPassword validates the reset link, then sets the new password.
func (d *Dispatcher) ResetPassword(ctx context.Context, userID, token, password string) error {
	if err := d.api.CheckResetLink(ctx, userID, token); err != nil {
		d.notify.Error(api.MessageOf(err, "Invalid or expired reset link"))
		return err
	}
	if err := d.api.ResetPassword(ctx, userID, token, password); err != nil {
		d.notify.Error(api.MessageOf(err, "Failed to reset password"))
		return err
	}
	d.notify.Success("Password has been reset, you can log in now")
	return nil
}
