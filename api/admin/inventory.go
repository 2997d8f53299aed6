package admin

import (
	"net/http"

	"ims_server/api/middleware"
	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Inventory entries carry monetary bounds and actor stamps, so all
// mutations go through the inventory service.
func (ar *AdminRoutesManager) registerInventoryRoutes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", ar.listInventory)
		r.Get("/{id}", ar.getInventory)
		r.Post("/", ar.createInventory)
		r.Put("/{id}", ar.updateInventory)
		r.Delete("/{id}", ar.deleteInventory)

		// Media rides on its inventory entry
		r.Get("/{id}/media", ar.listInventoryMedia)
		r.Post("/{id}/media", ar.uploadInventoryMedia)
	})
}

func (ar *AdminRoutesManager) listInventory(w http.ResponseWriter, r *http.Request) {
	productIDStr := r.URL.Query().Get("product_id")
	if productIDStr == "" {
		gecho.BadRequest(w, gecho.WithMessage("product_id query parameter is required"), gecho.Send())
		return
	}

	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product_id"), gecho.Send())
		return
	}

	entries, err := ar.inventoryService.ListByProduct(r.Context(), productID)
	if err != nil {
		ar.logger.Error("Failed to list inventory", gecho.Field("error", err), gecho.Field("product_id", productID))
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(entries), gecho.Send())
}

func (ar *AdminRoutesManager) getInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	entry, err := ar.inventoryService.GetByID(r.Context(), id)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(entry), gecho.Send())
}

func (ar *AdminRoutesManager) createInventory(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Unauthorized"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.InventoryRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract inventory body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the inventory fields"), gecho.WithData(err), gecho.Send())
		return
	}

	entry, err := ar.inventoryService.Create(r.Context(), body, claims.Sub)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Inventory entry created"),
		gecho.WithData(entry),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) updateInventory(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Unauthorized"), gecho.Send())
		return
	}

	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.InventoryRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract inventory body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the inventory fields"), gecho.WithData(err), gecho.Send())
		return
	}

	entry, err := ar.inventoryService.Update(r.Context(), id, body, claims.Sub)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Inventory entry updated"),
		gecho.WithData(entry),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) deleteInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	if err := ar.inventoryService.Delete(r.Context(), id); err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Inventory entry deleted"),
		gecho.Send(),
	)
}
