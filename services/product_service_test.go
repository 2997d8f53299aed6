package services

import (
	"testing"
	"time"

	"ims_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestCachedListResultKeepsListingTotal(t *testing.T) {
	opts := &ProductListOptions{Page: 3, PageSize: 2}
	products := []tables.Product{{Name: "Inverter"}, {Name: "Battery"}}

	result := cachedListResult(opts, products, 57, time.Now())

	// The total is the listing count, not the page length
	assert.Equal(t, 57, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.Page)
	assert.Equal(t, 2, result.Pagination.PageSize)
	assert.Len(t, result.Products, 2)
}

func TestIsPlainListing(t *testing.T) {
	assert.True(t, (&ProductListOptions{Page: 1, PageSize: 10}).isPlainListing())

	cutoff := time.Now()
	assert.False(t, (&ProductListOptions{SearchTerm: "solar"}).isPlainListing())
	assert.False(t, (&ProductListOptions{CreatedAfter: &cutoff}).isPlainListing())
}
