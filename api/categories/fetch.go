package categories

import (
	"ims_server/handling"
	"ims_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ListActive handles GET /categories, active categories in name order
func (crm *CategoryRoutesManager) ListActive(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.ListActive(r.Context())
	if err != nil {
		crm.logger.Error("Failed to list categories", gecho.Field("error", err))
		handling.RespondDomainError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

// Tree handles GET /categories/tree, the full hierarchy with siblings in name order
func (crm *CategoryRoutesManager) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := crm.categoryService.Tree(r.Context())
	if err != nil {
		crm.logger.Error("Failed to build category tree", gecho.Field("error", err))
		handling.RespondDomainError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(tree),
		gecho.Send(),
	)
}

// ProductsByCategory handles GET /categories/{slug}. A category without
// products answers with an empty list, not a 404.
func (crm *CategoryRoutesManager) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := lib.SanitizeString(chi.URLParam(r, "slug"), true, true)

	products, err := crm.productService.ListByCategorySlug(r.Context(), slug)
	if err != nil {
		handling.RespondDomainError(err, crm.logger, w)
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

// Ancestors handles GET /categories/{slug}/ancestors in root-first order
func (crm *CategoryRoutesManager) Ancestors(w http.ResponseWriter, r *http.Request) {
	slug := lib.SanitizeString(chi.URLParam(r, "slug"), true, true)

	category, err := crm.categoryService.GetBySlug(r.Context(), slug)
	if err != nil {
		handling.RespondDomainError(err, crm.logger, w)
		return
	}

	ancestors, err := crm.categoryService.Ancestors(r.Context(), category.Id)
	if err != nil {
		crm.logger.Error("Failed to fetch category ancestors", gecho.Field("error", err), gecho.Field("slug", slug))
		handling.RespondDomainError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(ancestors),
		gecho.Send(),
	)
}

// Descendants handles GET /categories/{slug}/descendants in tree order
func (crm *CategoryRoutesManager) Descendants(w http.ResponseWriter, r *http.Request) {
	slug := lib.SanitizeString(chi.URLParam(r, "slug"), true, true)

	category, err := crm.categoryService.GetBySlug(r.Context(), slug)
	if err != nil {
		handling.RespondDomainError(err, crm.logger, w)
		return
	}

	descendants, err := crm.categoryService.Descendants(r.Context(), category.Id)
	if err != nil {
		crm.logger.Error("Failed to fetch category descendants", gecho.Field("error", err), gecho.Field("slug", slug))
		handling.RespondDomainError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(descendants),
		gecho.Send(),
	)
}
