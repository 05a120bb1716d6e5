package utils

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and escapes HTML entities.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeIdentity normalizes a requester identity (usually an email):
// lowercased, trimmed, control characters removed.
func SanitizeIdentity(identity string) string {
	identity = strings.ToLower(strings.TrimSpace(identity))

	var result strings.Builder
	for _, r := range identity {
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
