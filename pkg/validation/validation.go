// Package validation provides input validation and sanitization for
// player-supplied strings: pilot names from config and course names
// typed into the designer. Both end up in saved files and log output,
// so they are checked before use rather than at every consumer.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length limits for player-supplied strings
const (
	MaxPlayerNameLen = 32
	MaxCourseNameLen = 64
)

// Regular expressions for input validation
var (
	// Allow alphanumeric, spaces, hyphens, underscores, and basic punctuation.
	// This prevents most special characters that could cause issues while
	// allowing reasonable names.
	validNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.()]+$`)
)

// ValidatePlayerName validates and sanitizes a pilot name
func ValidatePlayerName(name string) (string, error) {
	return validateName("player name", name, MaxPlayerNameLen)
}

// ValidateCourseName validates and sanitizes a course name before it
// is written into a course file.
func ValidateCourseName(name string) (string, error) {
	return validateName("course name", name, MaxCourseNameLen)
}

func validateName(kind, name string, maxLen int) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%s cannot be empty", kind)
	}

	if len(name) > maxLen {
		return "", fmt.Errorf("%s too long: %d characters (max %d)", kind, len(name), maxLen)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%s contains invalid UTF-8 characters", kind)
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%s cannot be only whitespace", kind)
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%s contains control characters", kind)
		}
	}

	if !validNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("%s contains invalid characters (only alphanumeric, spaces, hyphens, underscores, and basic punctuation allowed)", kind)
	}

	return trimmed, nil
}
