package cli

import (
	"context"
	"errors"
	"os"

	"thoughts/internal/client/dispatch"
	"thoughts/internal/client/routes"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create a new
// account. Field-level validation errors from the backend are printed
// next to their field names so the user knows what to fix.
func (a *App) Register(ctx context.Context) error {
	if !a.enter(routes.Guest) {
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	fields, err := a.dispatch.Register(ctx, username, email, password)
	if errors.Is(err, dispatch.ErrValidation) {
		printFieldErrors(fields)
		return nil
	}
	return err
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	if !a.enter(routes.Guest) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	return a.dispatch.Login(ctx, email, password)
}

// Logout ends the session after confirmation and drops the opened post.
func (a *App) Logout(ctx context.Context) error {
	if !a.enter(routes.Profile) {
		return nil
	}
	if err := a.dispatch.Logout(ctx); err != nil {
		return err
	}
	if !a.isLoggedIn() {
		a.current = nil
	}
	return nil
}

// ForgotPassword requests a password-reset email.
func (a *App) ForgotPassword(ctx context.Context) error {
	if !a.enter(routes.Guest) {
		return nil
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	return a.dispatch.SendResetLink(ctx, email)
}

// VerifyEmail confirms a registration with the userID/token pair from
// the emailed link.
func (a *App) VerifyEmail(ctx context.Context, userID, token string) error {
	if !a.enter(routes.Guest) {
		return nil
	}
	return a.dispatch.VerifyEmail(ctx, userID, token)
}

// ResetPassword sets a new password using the emailed reset link.
func (a *App) ResetPassword(ctx context.Context, userID, token string) error {
	if !a.enter(routes.Guest) {
		return nil
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	return a.dispatch.ResetPassword(ctx, userID, token, password)
}

func printFieldErrors(fields map[string]string) {
	for field, msg := range fields {
		printlnFn("  " + field + ": " + msg)
	}
}
