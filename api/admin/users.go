package admin

import (
	"net/http"

	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Users ride the generic handlers for reads, updates and deletes; creation
// goes through the auth service so the password is argon2-hashed instead of
// landing as an empty hash column.
func (ar *AdminRoutesManager) registerUserRoutes(r chi.Router) {
	rr := &recordRoutes[tables.User]{ar: ar, entity: "users"}
	r.Route("/users", func(r chi.Router) {
		r.Get("/", rr.list)
		r.Get("/{id}", rr.get)
		r.Post("/", ar.createUser)
		r.Put("/{id}", rr.update)
		r.Delete("/{id}", rr.del)
	})
}

func (ar *AdminRoutesManager) createUser(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract user body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the user fields"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := ar.authService.Register(body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
			return
		}
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	user.PasswordHash = ""

	gecho.Success(w,
		gecho.WithMessage("User created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
