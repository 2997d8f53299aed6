package auth

import (
	"ims_server/api/middleware"
	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleMe returns the authenticated user with profile and address
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Unauthorized"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(claims.Sub)
	if err != nil {
		arm.logger.Error("Failed to get user", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		handling.RespondDomainError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}

// HandleUpdateMe updates the profile description and address of the
// authenticated user
func (arm *AuthRoutesManager) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Unauthorized"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProfileRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the profile information"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := arm.authService.UpdateProfile(r.Context(), claims.Sub, body)
	if err != nil {
		arm.logger.Error("Failed to update profile", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		handling.RespondDomainError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Profile updated"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
