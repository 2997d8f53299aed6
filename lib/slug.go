package lib

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a name: lowercase, spaces
// collapsed to hyphens, everything outside [a-z0-9_-] dropped.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	lastHyphen := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// NormalizeSlug lowercases and trims a caller-provided slug. The read
// endpoints lowercase the slug they look up, so stored slugs have to match.
func NormalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidSlug reports whether s contains only letters, numbers,
// underscores, or hyphens.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
