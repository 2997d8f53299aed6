package admin

import (
	"net/http"

	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Suppliers carry a nested one-to-one address, so mutations go through the
// supplier service.
func (ar *AdminRoutesManager) registerSupplierRoutes(r chi.Router) {
	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", ar.listSuppliers)
		r.Get("/{id}", ar.getSupplier)
		r.Post("/", ar.createSupplier)
		r.Put("/{id}", ar.updateSupplier)
		r.Delete("/{id}", ar.deleteSupplier)
	})
}

func (ar *AdminRoutesManager) listSuppliers(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	result, err := ar.supplierService.List(r.Context(), page, pageSize)
	if err != nil {
		ar.logger.Error("Failed to list suppliers", gecho.Field("error", err))
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (ar *AdminRoutesManager) getSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	supplier, err := ar.supplierService.GetByID(r.Context(), id)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(supplier), gecho.Send())
}

func (ar *AdminRoutesManager) createSupplier(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SupplierRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract supplier body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the supplier fields"), gecho.WithData(err), gecho.Send())
		return
	}

	supplier, err := ar.supplierService.Create(r.Context(), body)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Supplier created"),
		gecho.WithData(supplier),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) updateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SupplierRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract supplier body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the supplier fields"), gecho.WithData(err), gecho.Send())
		return
	}

	supplier, err := ar.supplierService.Update(r.Context(), id, body)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Supplier updated"),
		gecho.WithData(supplier),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	if err := ar.supplierService.Delete(r.Context(), id); err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Supplier deleted"),
		gecho.Send(),
	)
}
