package auth

import (
	"ims_server/handling"
	"ims_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh rotates the token pair using the refresh cookie
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Missing refresh token"), gecho.Send())
		return
	}

	user, accessToken, newRefreshToken, err := arm.authService.RefreshTokens(refreshToken)
	if err != nil {
		arm.logger.Warn("Token refresh failed", gecho.Field("error", err))
		handling.RespondDomainError(err, arm.logger, w)
		return
	}

	lib.SetCookie(lib.RefreshCookieName, newRefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Tokens refreshed"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
