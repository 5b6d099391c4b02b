package models

import "time"

// SocialLinks holds the optional profile link set.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Github   string `json:"github,omitempty"`
}

// Profile is the user's optional about section, stored as a single
// JSONB document on the users row.
type Profile struct {
	Bio          string       `json:"bio,omitempty"`
	ProfileImage string       `json:"profileImage,omitempty"`
	SocialLinks  *SocialLinks `json:"socialLinks,omitempty"`
}

// User is an account holder. PasswordHash never crosses the response
// boundary; the json tag enforces that at serialization time.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      *Profile  `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
