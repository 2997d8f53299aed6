package auth

import (
	"fmt"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// HandleVerifyEmail handles email verification requests and redirects to the frontend.
func (arm *AuthRoutesManager) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	token := params.Get("token")
	userID := params.Get("user_id")

	if token == "" || userID == "" {
		gecho.BadRequest(w, gecho.WithMessage("Missing token or user id"), gecho.Send())
		return
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		arm.logger.Warn("Invalid user_id format", gecho.Field("error", err), gecho.Field("user_id", userID))
		gecho.BadRequest(w, gecho.WithMessage("Invalid user id format"), gecho.Send())
		return
	}

	// Verify the email and activate the account
	err = arm.authService.VerifyEmail(userUUID, token)
	if err != nil {
		arm.logger.Warn("Email verification failed", gecho.Field("error", err), gecho.Field("user_id", userID))
		http.Redirect(w, r, getRedirectURL(arm.cfg.Server.FrontendURL, "err"), http.StatusSeeOther)
		return
	}

	arm.logger.Info("Email verified successfully", gecho.Field("user_id", userID))

	// Redirect to frontend with success (user needs to log in manually)
	http.Redirect(w, r, getRedirectURL(arm.cfg.Server.FrontendURL, "ok"), http.StatusSeeOther)
}

func getRedirectURL(cfgURL, status string) string {
	return fmt.Sprintf("%s/email-verified?status=%s", cfgURL, status)
}
