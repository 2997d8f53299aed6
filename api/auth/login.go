package auth

import (
	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := arm.authService.Login(body)
	if err != nil {
		// Unverified accounts answer 403, bad credentials 401
		handling.RespondDomainError(err, arm.logger, w)
		return
	}

	accessToken, err := arm.authService.GenerateAccessToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate refresh token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	// Send last login to db asynchronously
	go func() {
		err := arm.authService.UpdateLastLogin(user.Id)
		if err != nil {
			arm.logger.Error("Failed to update last login", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		}
	}()

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
