package admin

import (
	"encoding/json"
	"net/http"
	"regexp"

	"ims_server/database"
	"ims_server/handling"
	"ims_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// recordRoutes is the generic record browser: paginated list, get, create,
// update and delete over the database helpers for one table type.
type recordRoutes[T any] struct {
	ar     *AdminRoutesManager
	entity string
}

func registerRecordRoutes[T any](ar *AdminRoutesManager, r chi.Router, entity string) {
	rr := &recordRoutes[T]{ar: ar, entity: entity}
	r.Route("/"+entity, func(r chi.Router) {
		r.Get("/", rr.list)
		r.Get("/{id}", rr.get)
		r.Post("/", rr.create)
		r.Put("/{id}", rr.update)
		r.Delete("/{id}", rr.del)
	})
}

// columnPattern guards the update path: body keys become SET targets, so
// only plain lowercase identifiers are allowed through.
var columnPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// immutableColumns are never writable through the browser. Password hashes
// only change through the auth service's argon2 path.
var immutableColumns = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"password_hash": true,
}

// writableColumns strips protected columns and anything that is not a plain
// lowercase identifier from an update body.
func writableColumns(fields map[string]any) map[string]any {
	for key := range fields {
		if immutableColumns[key] || !columnPattern.MatchString(key) {
			delete(fields, key)
		}
	}
	return fields
}

func (rr *recordRoutes[T]) list(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	result, err := database.Paginate(
		database.Query[T](rr.ar.db).OrderBy("id", database.ASC),
		r.Context(), page, pageSize,
	)
	if err != nil {
		rr.ar.logger.Error("Failed to list records", gecho.Field("entity", rr.entity), gecho.Field("error", err))
		handling.RespondDomainError(lib.MapPgError(err), rr.ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (rr *recordRoutes[T]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	record, err := database.FindByID[T](rr.ar.db, r.Context(), id)
	if err != nil {
		rr.ar.logger.Error("Failed to fetch record", gecho.Field("entity", rr.entity), gecho.Field("id", id), gecho.Field("error", err))
		handling.RespondDomainError(lib.MapPgError(err), rr.ar.logger, w)
		return
	}
	if record == nil {
		gecho.NotFound(w, gecho.WithMessage("Record not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(record),
		gecho.Send(),
	)
}

func (rr *recordRoutes[T]) create(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[T](r)
	if err != nil {
		rr.ar.logger.Warn("Failed to extract record body", gecho.Field("entity", rr.entity), gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the record fields"), gecho.WithData(err), gecho.Send())
		return
	}

	record, err := database.Create(rr.ar.db, r.Context(), body)
	if err != nil {
		rr.ar.logger.Error("Failed to create record", gecho.Field("entity", rr.entity), gecho.Field("error", err))
		handling.RespondDomainError(lib.MapPgError(err), rr.ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Record created"),
		gecho.WithData(record),
		gecho.Send(),
	)
}

func (rr *recordRoutes[T]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	defer r.Body.Close()
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid JSON body"), gecho.Send())
		return
	}

	fields = writableColumns(fields)
	if len(fields) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("No writable fields in body"), gecho.Send())
		return
	}

	affected, err := database.UpdateByID[T](rr.ar.db, r.Context(), id, fields)
	if err != nil {
		rr.ar.logger.Error("Failed to update record", gecho.Field("entity", rr.entity), gecho.Field("id", id), gecho.Field("error", err))
		handling.RespondDomainError(lib.MapPgError(err), rr.ar.logger, w)
		return
	}
	if affected == 0 {
		gecho.NotFound(w, gecho.WithMessage("Record not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Record updated"),
		gecho.Send(),
	)
}

func (rr *recordRoutes[T]) del(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	affected, err := database.DeleteByID[T](rr.ar.db, r.Context(), id)
	if err != nil {
		rr.ar.logger.Error("Failed to delete record", gecho.Field("entity", rr.entity), gecho.Field("id", id), gecho.Field("error", err))
		handling.RespondDomainError(lib.MapPgError(err), rr.ar.logger, w)
		return
	}
	if affected == 0 {
		gecho.NotFound(w, gecho.WithMessage("Record not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Record deleted"),
		gecho.Send(),
	)
}

// parseRecordID reads and validates the {id} URL parameter, answering 400
// itself when the value is not a UUID.
func parseRecordID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid record ID"), gecho.Send())
		return uuid.Nil, false
	}
	return id, true
}
