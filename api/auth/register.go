package auth

import (
	"ims_server/lib"
	"ims_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your registration information"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := arm.authService.Register(body)
	if err != nil {
		userMessage := lib.GetUserMessage(err)

		// Unique violations return 409 Conflict (already logged as warn in service)
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage(userMessage), gecho.Send())
			return
		}

		// Other database errors return 500 (already logged as error in service)
		gecho.InternalServerError(w, gecho.WithMessage(userMessage), gecho.Send())
		return
	}

	// clear password from user
	user.PasswordHash = ""

	go func() {
		// Account stays inactive until the emailed token is used
		result, err := arm.emailService.SendVerificationEmail(user)
		if err != nil {
			arm.logger.Error("Failed to send verification email", gecho.Field("error", err), gecho.Field("user_id", user.Id))
			return
		}
		arm.logger.Debug("Verification email sent", gecho.Field("email_verification_id", result.Id), gecho.Field("user_id", user.Id))
	}()

	gecho.Success(w,
		gecho.WithMessage("Account created. Check your email to verify your address"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
