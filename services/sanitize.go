package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all HTML; case descriptions, hearing notes, and
// activity details are plain text
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips HTML tags and trims surrounding whitespace from
// user-supplied free text
func SanitizeText(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}
