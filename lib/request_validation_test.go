package lib

import (
	"testing"

	"ims_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() structs.RegisterRequest {
	return structs.RegisterRequest{
		FirstName:       "Amina",
		LastName:        "Hassan",
		Email:           "amina@example.com",
		MobileNumber:    "0112345678",
		Gender:          "Female",
		Password:        "sup3r-secret",
		PasswordConfirm: "sup3r-secret",
	}
}

func TestRegisterRequestValid(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, ValidateStruct(req))
}

func TestRegisterRequestPasswordMismatch(t *testing.T) {
	req := validRegisterRequest()
	req.PasswordConfirm = "different"

	err := ValidateStruct(req)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "passwordconfirm", ve.Errors[0].Field)
	assert.Equal(t, "must match password", ve.Errors[0].Message)
}

func TestRegisterRequestMissingFirstName(t *testing.T) {
	req := validRegisterRequest()
	req.FirstName = ""

	err := ValidateStruct(req)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "firstname", ve.Errors[0].Field)
	assert.Equal(t, "is required", ve.Errors[0].Message)
}

func TestRegisterRequestBadPhoneAndEmail(t *testing.T) {
	req := validRegisterRequest()
	req.MobileNumber = "0912345678"
	req.Email = "amina@example.io"

	err := ValidateStruct(req)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 2)
}

func TestSupplierRequestValidation(t *testing.T) {
	req := structs.SupplierRequest{
		Name:         "Nile Traders",
		MobileNumber: "+2490112345678",
		Email:        "sales@niletraders.com",
	}
	assert.NoError(t, ValidateStruct(req))

	req.Email = "sales@niletraders.shop"
	assert.Error(t, ValidateStruct(req))
}
