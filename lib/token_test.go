package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSKU(t *testing.T) {
	sku, err := GenerateSKU("Solar Panel 300W", 6)
	require.NoError(t, err)

	parts := strings.SplitN(sku, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "SOL", parts[0])
	assert.Len(t, parts[1], 6)
	assert.Equal(t, strings.ToUpper(sku), sku)
}

func TestGenerateSKUShortName(t *testing.T) {
	sku, err := GenerateSKU("tv", 4)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sku, "TV-"))
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken()
	require.NoError(t, err)
	b, err := GenerateRandomToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
