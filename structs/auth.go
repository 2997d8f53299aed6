package structs

import (
	"time"

	"github.com/google/uuid"
)

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

type AuthClaims struct {
	Sub     uuid.UUID `json:"sub"`
	Email   string    `json:"email"`
	IsStaff bool      `json:"staff"`
	Iat     time.Time `json:"iat"`
	Exp     time.Time `json:"exp"`
	Jti     uuid.UUID `json:"jti"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,catalogemail"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string `json:"last_name" validate:"omitempty,max=100"`
	Email           string `json:"email" validate:"required,catalogemail"`
	MobileNumber    string `json:"mobile_number" validate:"required,sdphone"`
	Country         string `json:"country" validate:"omitempty,max=100"`
	Gender          string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

type UpdateProfileRequest struct {
	Description *string         `json:"description" validate:"omitempty,max=1000"`
	Address     *AddressRequest `json:"address" validate:"omitempty"`
}

type AddressRequest struct {
	FullName             string `json:"full_name" validate:"required,min=2,max=200"`
	Phone                string `json:"phone" validate:"required,sdphone"`
	Postcode             string `json:"postcode" validate:"required,max=20"`
	AddressLine1         string `json:"address_line1" validate:"required,max=200"`
	AddressLine2         string `json:"address_line2" validate:"omitempty,max=200"`
	TownCity             string `json:"town_city" validate:"required,max=100"`
	DeliveryInstructions string `json:"delivery_instructions" validate:"omitempty,max=500"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
