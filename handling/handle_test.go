package handling

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ims_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestRespondDomainErrorStatusCodes(t *testing.T) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))

	cases := []struct {
		err  error
		want int
	}{
		{lib.ErrNotFound, http.StatusNotFound},
		{lib.ErrConflict, http.StatusConflict},
		{lib.ErrCategoryProtected, http.StatusConflict},
		{lib.ErrInvalidParent, http.StatusBadRequest},
		{lib.ErrValidation, http.StatusBadRequest},
		{lib.ErrInvalidCredentials, http.StatusUnauthorized},
		{lib.ErrExpiredToken, http.StatusUnauthorized},
		{lib.ErrAccountInactive, http.StatusForbidden},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		RespondDomainError(tc.err, logger, rec)
		assert.Equal(t, tc.want, rec.Code, "error %v", tc.err)
	}
}

func TestRespondDomainErrorWrappedSentinel(t *testing.T) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))

	rec := httptest.NewRecorder()
	RespondDomainError(fmt.Errorf("update category: %w", lib.ErrInvalidParent), logger, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
