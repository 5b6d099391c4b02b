package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/lillieharlow/Bloggy-API/internal/config"
)

var (
	imageExtPattern = regexp.MustCompile(`\.(jpg|jpeg|png|gif|bmp)$`)
	tagPattern      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,30}$`)
	// Letters, digits, spaces; dashes are stripped before the check.
	commentAuthorPattern = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
)

// validateImageURL accepts an empty value or an absolute http(s) URL
// ending in a known image extension.
func validateImageURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	invalid := errors.New("Invalid image URL")
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return invalid
	}
	if err := validation.Validate(s, is.URL); err != nil {
		return invalid
	}
	if !imageExtPattern.MatchString(strings.ToLower(s)) {
		return invalid
	}
	return nil
}

// validateTags enforces the tag count and per-tag character rules.
func validateTags(value interface{}) error {
	tags, _ := value.([]string)
	if len(tags) == 0 {
		return nil
	}

	invalid := fmt.Errorf("Max %d tags; a tag can contain letters, numbers, dashes or underscores (1-%d chars).",
		config.MaxTagCount, config.MaxTagLength)
	if len(tags) > config.MaxTagCount {
		return invalid
	}
	for _, tag := range tags {
		if !tagPattern.MatchString(tag) {
			return invalid
		}
	}
	return nil
}

// validateCommentAuthor enforces the display-name character rule: only
// alphanumerics and dashes (spaces allowed between words).
func validateCommentAuthor(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !commentAuthorPattern.MatchString(strings.ReplaceAll(s, "-", "")) {
		return errors.New("Author name can only contain alphanumeric characters and dashes")
	}
	return nil
}

// validateLinkURL accepts an empty value or any well-formed URL.
func validateLinkURL(name string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if err := validation.Validate(s, is.URL); err != nil {
			return fmt.Errorf("Invalid %s URL", name)
		}
		return nil
	}
}
