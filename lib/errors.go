package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account not verified")
)

// Catalog errors
var (
	ErrInvalidParent     = errors.New("invalid parent category")
	ErrCategoryProtected = errors.New("category has children or referenced products")
	ErrValidation        = errors.New("validation failed")
)

// MapPgError translates a Postgres driver error into a domain error.
// Uniqueness is enforced at the storage layer, so duplicate creation
// races surface here as SQLSTATE 23505.
func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return ErrCategoryProtected
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}

// IsUniqueViolation reports whether err is a duplicate-unique-field error.
func IsUniqueViolation(err error) bool {
	return errors.Is(MapPgError(err), ErrConflict)
}

// IsNotFound reports whether err means no matching record.
func IsNotFound(err error) bool {
	return errors.Is(MapPgError(err), ErrNotFound)
}

// GetUserMessage returns a message safe to show to the caller.
func GetUserMessage(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return "already exists"
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrCategoryProtected):
		return "record is referenced by other records"
	case errors.Is(err, ErrInvalidParent):
		return "parent category is invalid"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid credentials"
	case errors.Is(err, ErrAccountInactive):
		return "account has not been verified yet"
	case errors.Is(err, ErrInvalidToken):
		return "invalid token"
	case errors.Is(err, ErrExpiredToken):
		return "token has expired"
	case errors.Is(err, ErrValidation):
		return err.Error()
	default:
		return "something went wrong, please try again"
	}
}

// GetDetailForLogging returns the full error text for logs only.
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
