package ui

import "context"

// RunDestructive executes a destructive call behind a blocking
// confirmation. The call fires only after the user confirms. On
// failure the error is shown inside the confirmation surface and the
// user may retry without losing context; a global notification is never
// emitted from here. The returned flag reports whether the call
// eventually succeeded.
func RunDestructive(ctx context.Context, c Confirmer, title, text string, call func(context.Context) error) (bool, error) {
	if !c.Confirm(title, text) {
		return false, nil
	}
	for {
		err := call(ctx)
		if err == nil {
			return true, nil
		}
		if ctx.Err() != nil {
			return false, err
		}
		if !c.Confirm(title, err.Error()+". Retry?") {
			return false, err
		}
	}
}
