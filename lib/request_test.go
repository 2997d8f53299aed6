package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		number string
		valid  bool
	}{
		{"0112345678", true},
		{"+2490112345678", true},
		{"0123456789", true},
		{"0912345678", false}, // second digit must be 1
		{"112345678", false},  // too short without prefix
		{"01123456789", false},
		{"abc", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, IsValidPhone(c.number), "number %q", c.number)
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@host.net", true},
		{"user@site.org", true},
		{"user@site.info", true},
		{"user@site.io", false},    // TLD not allowed
		{"user@site.co.uk", false}, // multi-level TLD not allowed
		{"user@sub-domain.com", false},
		{"user name@host.com", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, IsValidEmail(c.email), "email %q", c.email)
	}
}
