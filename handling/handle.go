package handling

import (
	"errors"
	"net/http"

	"ims_server/lib"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.Send())
}

// RespondDomainError maps a domain error to its HTTP response. Anything
// unmapped is logged and answered with a generic 500.
func RespondDomainError(err error, logger *gecho.Logger, w http.ResponseWriter) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
	case errors.Is(err, lib.ErrConflict), errors.Is(err, lib.ErrCategoryProtected):
		gecho.Conflict(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
	case errors.Is(err, lib.ErrInvalidParent), errors.Is(err, lib.ErrValidation):
		gecho.BadRequest(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
	case errors.Is(err, lib.ErrInvalidCredentials), errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrExpiredToken):
		gecho.Unauthorized(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
	case errors.Is(err, lib.ErrAccountInactive):
		gecho.Forbidden(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
	default:
		HandleError(err, "unhandled domain error", logger, w)
	}
}
