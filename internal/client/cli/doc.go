// Package cli provides the interactive Thoughts command-line client.
//
// It wires configuration, the local session database, the REST API
// client, the state stores and an interactive REPL for browsing posts,
// commenting, liking and managing a profile. Administrators get an
// extra set of moderation commands.
//
// Navigation is gated the same way the web client gates routes: each
// command belongs to an access class (public, guest, profile, admin)
// and the guard decides before the command runs whether the current
// session may enter it.
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits.
package cli
