package config

// Field length limits enforced by the service-layer validators.
const (
	MinTitleLength = 5
	MaxTitleLength = 200

	MaxTagCount  = 10
	MaxTagLength = 30

	MinCommentAuthorLength = 5
	MaxCommentAuthorLength = 50

	MinPasswordLength = 6

	MaxBioLength = 500
)
