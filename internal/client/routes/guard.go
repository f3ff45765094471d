// Package routes decides whether the current session may enter a
// navigation target. The decision is a pure function of the auth state
// and the target's class, evaluated before the view runs, so a gated
// view is never rendered and then redirected away.
package routes

import "thoughts/internal/client/models"

// Class groups navigation targets by access rule.
type Class int

const (
	// Public views: home, posts, categories, contact, services.
	Public Class = iota
	// Guest views: login, register, email verification, password reset.
	Guest
	// Profile views: the signed-in user's own pages.
	Profile
	// Admin views: the moderation dashboard.
	Admin
)

// Redirect targets.
const (
	HomePath     = "/"
	NotFoundPath = "/not-found"
)

// Decision is the guard verdict: render the target, or go elsewhere.
type Decision struct {
	Allow    bool
	Redirect string
}

var allow = Decision{Allow: true}

func redirect(to string) Decision {
	return Decision{Redirect: to}
}

// Decide applies the guard table for the given session state. A nil
// user is unauthenticated; IsAdmin distinguishes administrators.
func Decide(user *models.User, class Class) Decision {
	switch class {
	case Guest:
		if user != nil {
			return redirect(HomePath)
		}
		return allow
	case Profile:
		if user == nil {
			return redirect(HomePath)
		}
		return allow
	case Admin:
		if user == nil {
			return redirect(HomePath)
		}
		if !user.IsAdmin {
			return redirect(NotFoundPath)
		}
		return allow
	default:
		return allow
	}
}
