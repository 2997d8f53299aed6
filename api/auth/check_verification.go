package auth

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// HandleCheckVerification checks if an account has been verified
func (arm *AuthRoutesManager) HandleCheckVerification(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("user_id")
	if userIDStr == "" {
		arm.logger.Warn("Missing user_id parameter")
		gecho.BadRequest(w, gecho.WithMessage("Missing user id"), gecho.Send())
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		arm.logger.Warn("Invalid user_id format", gecho.Field("error", err), gecho.Field("user_id", userIDStr))
		gecho.BadRequest(w, gecho.WithMessage("Invalid user id format"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(userID)
	if err != nil || user == nil {
		// Don't reveal if user exists or not
		gecho.Success(w, gecho.WithData(map[string]any{
			"verified": false,
		}), gecho.Send())
		return
	}

	gecho.Success(w, gecho.WithData(map[string]any{
		"verified": user.IsActive,
		"email":    user.Email,
	}), gecho.Send())
}
