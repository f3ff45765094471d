package models

import "time"

// Comment belongs to a post. Only its author may edit or delete it.
type Comment struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"post"`
	Text      string    `json:"text"`
	Author    User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// OwnedBy reports whether the comment was written by the given user id.
func (c *Comment) OwnedBy(userID string) bool {
	return userID != "" && c.Author.ID == userID
}

// Category labels posts. Managed by administrators.
type Category struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}
