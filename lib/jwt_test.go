package lib

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseToken(t *testing.T) {
	sub := uuid.New()
	secret := "test-secret"

	token, err := SignToken(sub, "staff@example.com", true, time.Minute, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, sub, claims.Sub)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.True(t, claims.IsStaff)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
	assert.True(t, claims.Exp.After(time.Now()))
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := SignToken(uuid.New(), "user@example.com", false, time.Minute, "right-secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := SignToken(uuid.New(), "user@example.com", false, -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}
