package models

// Paginated listing envelopes used by the admin dashboard and the
// public posts feed. Count is the total number of matching documents,
// Pages the number of pages at the requested limit.

type UserPage struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
	Pages int    `json:"pages"`
}

type PostPage struct {
	Posts []Post `json:"posts"`
	Count int    `json:"count"`
	Pages int    `json:"pages"`
}

type CommentPage struct {
	Comments []Comment `json:"comments"`
	Count    int       `json:"count"`
	Pages    int       `json:"pages"`
}
