package lib

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "already exists", GetUserMessage(ErrConflict))
	assert.Equal(t, "not found", GetUserMessage(ErrNotFound))
	assert.Equal(t, "parent category is invalid", GetUserMessage(ErrInvalidParent))
	assert.Equal(t, "invalid credentials", GetUserMessage(ErrInvalidCredentials))
	assert.Equal(t, "account has not been verified yet", GetUserMessage(ErrAccountInactive))
	assert.Equal(t, "something went wrong, please try again", GetUserMessage(fmt.Errorf("pq: connection reset")))
}

func TestGetUserMessageWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create category: %w", ErrConflict)
	assert.Equal(t, "already exists", GetUserMessage(wrapped))
}

func TestUniqueViolationHelpers(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", ErrConflict)))
	assert.False(t, IsUniqueViolation(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("fetch: %w", ErrNotFound)))
}
