package errors

import (
	"net/http"
	"testing"

	"rently/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapKeepsIdentity(t *testing.T) {
	err := ErrDuplicateAccount.WrapMessage("register")

	assert.True(t, errors.Is(err, ErrDuplicateAccount))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "User with this email already exists", appErr.Message())
}

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails("role is invalid")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "role is invalid", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestInvalidCredentials_Message(t *testing.T) {
	assert.Equal(t, "Invalid email or password", ErrInvalidCredentials.Error())
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode())
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.Wrap(NewStorageError(cause, "find account by email"), "login")

	assert.True(t, IsStorageError(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "STORAGE_ERROR", appErr.ErrorCode())
	assert.NotContains(t, appErr.Message(), "connection refused")

	assert.False(t, IsStorageError(ErrInvalidCredentials))
}
