package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritableColumnsFiltersProtectedAndMalformedKeys(t *testing.T) {
	fields := map[string]any{
		"name":          "Acme",
		"is_active":     true,
		"id":            "5c9d2c3a-0000-0000-0000-000000000000",
		"created_at":    "2026-01-01T00:00:00Z",
		"updated_at":    "2026-01-01T00:00:00Z",
		"password_hash": "raw-text",
		"Name":          "uppercase",
		"drop table":    "users",
		"1stColumn":     "x",
	}

	out := writableColumns(fields)

	assert.Equal(t, map[string]any{
		"name":      "Acme",
		"is_active": true,
	}, out)
}

func TestWritableColumnsEmptyBody(t *testing.T) {
	assert.Empty(t, writableColumns(map[string]any{"id": "x"}))
}
