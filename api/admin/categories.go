package admin

import (
	"net/http"

	"ims_server/database"
	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Category mutations go through the category service so the closure table
// stays consistent; reads use the generic helpers.
func (ar *AdminRoutesManager) registerCategoryRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", ar.listCategories)
		r.Get("/{id}", ar.getCategory)
		r.Post("/", ar.createCategory)
		r.Put("/{id}", ar.updateCategory)
		r.Delete("/{id}", ar.deleteCategory)
	})
}

func (ar *AdminRoutesManager) listCategories(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	result, err := database.Paginate(
		database.Query[tables.Category](ar.db).OrderBy("id", database.ASC),
		r.Context(), page, pageSize,
	)
	if err != nil {
		ar.logger.Error("Failed to list categories", gecho.Field("error", err))
		handling.RespondDomainError(lib.MapPgError(err), ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (ar *AdminRoutesManager) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	category, err := database.FindByID[tables.Category](ar.db, r.Context(), id)
	if err != nil {
		handling.RespondDomainError(lib.MapPgError(err), ar.logger, w)
		return
	}
	if category == nil {
		gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
		return
	}

	gecho.Success(w, gecho.WithData(category), gecho.Send())
}

func (ar *AdminRoutesManager) createCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract category body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category fields"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := ar.categoryService.Create(r.Context(), body)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract category body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category fields"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := ar.categoryService.Update(r.Context(), id, body)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	// Children or referenced products make the delete a 409
	if err := ar.categoryService.Delete(r.Context(), id); err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted"),
		gecho.Send(),
	)
}
