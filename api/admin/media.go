package admin

import (
	"net/http"
	"strconv"

	"ims_server/database"
	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Media rows are created through the inventory upload endpoint; the browser
// only reads, re-features and deletes them.
func (ar *AdminRoutesManager) registerMediaRoutes(r chi.Router) {
	r.Route("/media", func(r chi.Router) {
		r.Get("/", ar.listMedia)
		r.Get("/{id}", ar.getMedia)
		r.Post("/{id}/feature", ar.setFeatureMedia)
		r.Delete("/{id}", ar.deleteMedia)
	})
}

func (ar *AdminRoutesManager) listMedia(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	result, err := database.Paginate(
		database.Query[tables.Media](ar.db).OrderBy("id", database.ASC),
		r.Context(), page, pageSize,
	)
	if err != nil {
		ar.logger.Error("Failed to list media", gecho.Field("error", err))
		handling.RespondDomainError(lib.MapPgError(err), ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (ar *AdminRoutesManager) getMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	media, err := database.FindByID[tables.Media](ar.db, r.Context(), id)
	if err != nil {
		handling.RespondDomainError(lib.MapPgError(err), ar.logger, w)
		return
	}
	if media == nil {
		gecho.NotFound(w, gecho.WithMessage("Media not found"), gecho.Send())
		return
	}

	gecho.Success(w, gecho.WithData(media), gecho.Send())
}

func (ar *AdminRoutesManager) listInventoryMedia(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	media, err := ar.mediaService.ListByInventory(r.Context(), inventoryID)
	if err != nil {
		ar.logger.Error("Failed to list media", gecho.Field("error", err), gecho.Field("inventory_id", inventoryID))
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(media), gecho.Send())
}

// uploadInventoryMedia handles multipart image uploads for an inventory
// entry. Fields: image (file), alt_text, is_feature.
func (ar *AdminRoutesManager) uploadInventoryMedia(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		ar.logger.Warn("Failed to parse multipart form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid multipart form"), gecho.Send())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Missing image file"), gecho.Send())
		return
	}
	defer file.Close()

	isFeature, _ := strconv.ParseBool(r.FormValue("is_feature"))
	req := &structs.MediaRequest{
		AltText:   r.FormValue("alt_text"),
		IsFeature: isFeature,
	}

	media, err := ar.mediaService.Upload(r.Context(), inventoryID, file, header, req)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Image uploaded"),
		gecho.WithData(media),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) setFeatureMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	if err := ar.mediaService.SetFeature(r.Context(), mediaID); err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Feature image set"),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) deleteMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	if err := ar.mediaService.Delete(r.Context(), mediaID); err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Image deleted"),
		gecho.Send(),
	)
}
