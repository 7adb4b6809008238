package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "farmer@example.com", NormalizeEmail("  Farmer@Example.COM "))
	assert.Equal(t, "a@b.c", NormalizeEmail("a@b.c"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Fresh Eggs":              "fresh-eggs",
		"  Duck   Eggs!  ":        "duck-eggs",
		"100% Grass-Fed Beef":     "100-grass-fed-beef",
		"---":                     "",
		"Crème Brûlée":            "cr-me-br-l-e",
		"already-a-slug":          "already-a-slug",
		"Trailing punctuation!!!": "trailing-punctuation",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestUniqueSlug(t *testing.T) {
	slug := UniqueSlug("fresh-eggs")
	assert.True(t, strings.HasPrefix(slug, "fresh-eggs-"))
	assert.Len(t, slug, len("fresh-eggs-")+8)

	// Two calls never collide.
	assert.NotEqual(t, UniqueSlug("x"), UniqueSlug("x"))

	// An empty base still yields something usable.
	assert.Len(t, UniqueSlug(""), 8)
}
