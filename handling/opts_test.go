package handling

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)
	assert.Zero(t, opts.Page)
	assert.Zero(t, opts.PageSize)
	assert.Empty(t, opts.SearchTerm)
}

func TestParseProductListOptionsFull(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/?page=2&page_size=25&search=solar&include_categories=true&include_type=true&created_after=2026-01-01T00:00:00Z", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 25, opts.PageSize)
	assert.Equal(t, "solar", opts.SearchTerm)
	assert.True(t, opts.IncludeCategories)
	assert.True(t, opts.IncludeType)
	require.NotNil(t, opts.CreatedAfter)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), opts.CreatedAfter.UTC())
}

func TestParseProductListOptionsBadValues(t *testing.T) {
	for _, target := range []string{
		"/api/?page=abc",
		"/api/?page_size=x",
		"/api/?created_after=yesterday",
		"/api/?include_type=maybe",
	} {
		r := httptest.NewRequest("GET", target, nil)
		_, err := ParseProductListOptions(r)
		assert.Error(t, err, "target %s", target)
	}
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/brands?page=3&page_size=50", nil)
	page, pageSize, err := ParsePagination(r)
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, pageSize)

	r = httptest.NewRequest("GET", "/admin/brands?page=x", nil)
	_, _, err = ParsePagination(r)
	assert.Error(t, err)
}
