package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Home Appliances":       "home-appliances",
		"  Kitchen  ":           "kitchen",
		"Solar Panels & Cables": "solar-panels-cables",
		"UPS-Batteries":         "ups-batteries",
		"a_b c":                 "a_b-c",
		"---":                   "",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "home-appliances", NormalizeSlug("Home-Appliances"))
	assert.Equal(t, "ups_2024", NormalizeSlug("  UPS_2024  "))
	assert.Equal(t, "", NormalizeSlug(""))

	// A stored slug must match its lowercased lookup
	stored := NormalizeSlug("Solar-Panels")
	assert.Equal(t, SanitizeString("Solar-Panels", true, true), stored)
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("home-appliances"))
	assert.True(t, IsValidSlug("ups_2024"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("has space"))
	assert.False(t, IsValidSlug("slash/slug"))
}
