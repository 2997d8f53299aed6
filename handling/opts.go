package handling

import (
	"ims_server/services"
	"net/http"
	"strconv"
	"time"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	// Parse date filters
	if createdAfter := query.Get("created_after"); createdAfter != "" {
		t, err := time.Parse(time.RFC3339, createdAfter)
		if err != nil {
			return nil, err
		}
		opts.CreatedAfter = &t
	}

	if createdBefore := query.Get("created_before"); createdBefore != "" {
		t, err := time.Parse(time.RFC3339, createdBefore)
		if err != nil {
			return nil, err
		}
		opts.CreatedBefore = &t
	}

	// Parse relation flags
	if includeCategories := query.Get("include_categories"); includeCategories != "" {
		if valBool, err = strconv.ParseBool(includeCategories); err != nil {
			return nil, err
		}
		opts.IncludeCategories = valBool
	}

	if includeType := query.Get("include_type"); includeType != "" {
		if valBool, err = strconv.ParseBool(includeType); err != nil {
			return nil, err
		}
		opts.IncludeType = valBool
	}

	return opts, nil
}

// ParsePagination reads page/page_size for plain paginated listings
func ParsePagination(r *http.Request) (page, pageSize int, err error) {
	query := r.URL.Query()

	if p := query.Get("page"); p != "" {
		if page, err = strconv.Atoi(p); err != nil {
			return 0, 0, err
		}
	}
	if ps := query.Get("page_size"); ps != "" {
		if pageSize, err = strconv.Atoi(ps); err != nil {
			return 0, 0, err
		}
	}
	return page, pageSize, nil
}
