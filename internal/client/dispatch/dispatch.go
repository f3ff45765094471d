// Package dispatch contains the asynchronous action workflows of the
// client. Every workflow follows the same contract: call the remote
// API, then on success mutate the relevant store(s) and notify, and on
// failure surface a user-visible notification while leaving prior
// store state intact. No API failure escapes a dispatcher unhandled.
package dispatch

import (
	"errors"

	"thoughts/internal/client/api"
	"thoughts/internal/client/store"
	"thoughts/internal/client/ui"
	"thoughts/internal/logging"
)

// ErrValidation marks failures that carry a field->message map for
// inline rendering next to the offending inputs.
var ErrValidation = errors.New("validation failed")

// Dispatcher owns the stores and the seams the workflows report
// through. It is the only writer of AuthStore and ProfileStore.
type Dispatcher struct {
	api     api.Client
	auth    *store.AuthStore
	profile *store.ProfileStore
	notify  ui.Notifier
	confirm ui.Confirmer
	log     logging.Logger
}

func New(client api.Client, auth *store.AuthStore, profile *store.ProfileStore, notify ui.Notifier, confirm ui.Confirmer, log logging.Logger) *Dispatcher {
	return &Dispatcher{
		api:     client,
		auth:    auth,
		profile: profile,
		notify:  notify,
		confirm: confirm,
		log:     log.With("component", "dispatch"),
	}
}
