package models

import "time"

// Comment is a reply on a post. Author is a display name, not a user
// reference: guests comment under any name they claim, signed-in users
// under their account username.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
