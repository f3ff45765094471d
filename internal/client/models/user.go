// Package models defines the client-side view of the Thoughts backend
// entities: users, profiles, posts, comments and categories. Field tags
// match the JSON shapes produced by the REST API.
package models

// Image references a stored image by URL.
type Image struct {
	URL string `json:"url"`
}

// User is the authenticated identity as returned by the backend.
// Token is the opaque bearer credential issued on login; it is empty on
// user records embedded in posts and comments.
type User struct {
	ID                string `json:"_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Bio               string `json:"bio,omitempty"`
	ProfileImage      Image  `json:"profileImage"`
	IsAdmin           bool   `json:"isAdmin"`
	IsBlocked         bool   `json:"isBlocked"`
	IsAccountVerified bool   `json:"isAccountVerified"`
	Token             string `json:"token,omitempty"`
}

// Summary returns a copy of u stripped of the session token, suitable
// for embedding into posts, comments and like sets.
func (u User) Summary() User {
	u.Token = ""
	return u
}

// Profile is the data of the profile page being viewed. It may describe
// the authenticated user or somebody else; the two are distinct entities.
type Profile struct {
	User
	Posts []Post `json:"posts"`
}
