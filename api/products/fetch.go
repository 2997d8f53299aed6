package products

import (
	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllProducts handles GET /api/ with filtering and pagination
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters into options
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	prm.logger.Debug("Fetching products",
		gecho.Field("page", opts.Page),
		gecho.Field("page_size", opts.PageSize),
		gecho.Field("search", opts.SearchTerm),
	)

	result, err := prm.productService.List(ctx, opts)
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		handling.RespondDomainError(err, prm.logger, w)
		return
	}

	// Return successful response with metadata
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"meta": map[string]any{
				"query_time_ms": result.QueryTime.Milliseconds(),
				"count":         len(result.Products),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /p/{id} and GET /api/p/{id}. The parameter
// is a uuid; anything else is treated as a slug lookup.
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")

	var product *tables.Product
	var err error

	if id, parseErr := uuid.Parse(idStr); parseErr == nil && id != uuid.Nil {
		product, err = prm.productService.GetByID(ctx, id)
	} else if slug := lib.SanitizeString(idStr, true, true); lib.IsValidSlug(slug) {
		product, err = prm.productService.GetBySlug(ctx, slug)
	} else {
		prm.logger.Warn("Invalid product identifier", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product ID"),
			gecho.Send(),
		)
		return
	}
	if err != nil {
		handling.RespondDomainError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// FetchCategories handles GET /api/category/, active categories in name order
func (prm *ProductRoutesManager) FetchCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := prm.categoryService.ListActive(r.Context())
	if err != nil {
		prm.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		handling.RespondDomainError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

// FetchProductsByCategory handles GET /api/category/{slug}. Direct members
// only; a member-less category answers with an empty list.
func (prm *ProductRoutesManager) FetchProductsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := lib.SanitizeString(chi.URLParam(r, "slug"), true, true)

	products, err := prm.productService.ListByCategorySlug(r.Context(), slug)
	if err != nil {
		handling.RespondDomainError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"slug":     slug,
			"products": products,
		}),
		gecho.Send(),
	)
}
