package models

import "time"

// Post is one blog entry. AuthorID records the owner at creation time
// and is the only field authorization decisions read. AuthorUsername is
// populated from the users table on reads for display.
type Post struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Image          string    `json:"image,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	AuthorID       string    `json:"author"`
	AuthorUsername string    `json:"authorUsername,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
