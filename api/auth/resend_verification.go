package auth

import (
	"context"
	"net/http"
	"time"

	"ims_server/database"
	"ims_server/lib"
	"ims_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,catalogemail"`
}

// HandleResendVerification handles requests to resend verification emails
func (arm *AuthRoutesManager) HandleResendVerification(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[ResendVerificationRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid request"), gecho.WithData(err), gecho.Send())
		return
	}

	// Find the user by email
	user, err := database.Query[tables.User](arm.authService.GetDB()).
		Where("email", body.Email).
		First(context.Background())
	if err != nil {
		arm.logger.Error("Failed to find user", gecho.Field("error", err), gecho.Field("email", body.Email))
		// Don't reveal if user exists or not
		gecho.Success(w, gecho.WithMessage("Verification email sent"), gecho.Send())
		return
	}

	// If user not found, still return success to prevent email enumeration
	if user == nil {
		arm.logger.Warn("User not found", gecho.Field("email", body.Email))
		gecho.Success(w, gecho.WithMessage("Verification email sent"), gecho.Send())
		return
	}

	// Check if the account is already verified
	if user.IsActive {
		arm.logger.Info("Account already verified", gecho.Field("user_id", user.Id))
		gecho.Success(w, gecho.WithMessage("Account is already verified"), gecho.Send())
		return
	}

	// Prevent spam (max 1 email per 2 minutes)
	recentVerification, err := database.Query[tables.EmailVerification](arm.authService.GetDB()).
		Where("user_id", user.Id).
		OrderBy("created_at", database.DESC).
		First(context.Background())

	if err == nil && recentVerification != nil {
		timeSinceLastEmail := time.Since(recentVerification.CreatedAt)
		if timeSinceLastEmail < 2*time.Minute {
			arm.logger.Warn("Rate limit exceeded for verification email",
				gecho.Field("user_id", user.Id),
				gecho.Field("time_since_last", timeSinceLastEmail))
			gecho.TooManyRequests(w,
				gecho.WithMessage("Please wait before requesting another verification email"),
				gecho.WithData(map[string]any{
					"retry_after_seconds": int((2*time.Minute - timeSinceLastEmail).Seconds()),
				}),
				gecho.Send())
			return
		}
	}

	// Delete any existing verification tokens for this user
	_, err = database.Query[tables.EmailVerification](arm.authService.GetDB()).
		Where("user_id", user.Id).
		Delete(context.Background())
	if err != nil {
		arm.logger.Warn("Failed to delete old verification tokens", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		// Continue anyway - this is not critical
	}

	// Send new verification email
	_, err = arm.emailService.SendVerificationEmail(user)
	if err != nil {
		arm.logger.Error("Failed to send verification email", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		gecho.InternalServerError(w, gecho.WithMessage("Failed to send verification email"), gecho.Send())
		return
	}

	arm.logger.Info("Verification email resent successfully", gecho.Field("user_id", user.Id))
	gecho.Success(w, gecho.WithMessage("Verification email sent"), gecho.Send())
}
