package models

import "time"

// Post is a published article with its comments and like set.
type Post struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       Image     `json:"image"`
	Author      User      `json:"user"`
	Comments    []Comment `json:"comments"`
	Likes       []User    `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LikedBy reports whether the like set contains the given user id.
func (p *Post) LikedBy(userID string) bool {
	for _, u := range p.Likes {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// ToggleLike returns a copy of the like set with the given user added if
// absent or removed if present. The set never holds a user id twice.
func ToggleLike(likes []User, user User) []User {
	out := make([]User, 0, len(likes)+1)
	removed := false
	for _, u := range likes {
		if u.ID == user.ID {
			removed = true
			continue
		}
		out = append(out, u)
	}
	if !removed {
		out = append(out, user.Summary())
	}
	return out
}
