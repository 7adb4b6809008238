package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// NormalizeEmail canonicalizes an email address: surrounding whitespace
// is trimmed and the address is lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Slugify turns a title into a url-safe slug: lowercase ascii letters,
// digits and single dashes.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// UniqueSlug appends a short random suffix, used when a plain slug is
// already taken.
func UniqueSlug(base string) string {
	suffix := uuid.NewString()[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
