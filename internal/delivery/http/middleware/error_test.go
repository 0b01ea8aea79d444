package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "rently/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil), rec)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, logs.String()
}

func TestHandleHTTPError_AppErrorWithDetails(t *testing.T) {
	rec, body, logs := handleError(t, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("Email: email")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "Email: email", body.Error.Details)
	assert.Empty(t, logs)
}

func TestHandleHTTPError_UnauthorizedDropsDetails(t *testing.T) {
	rec, body, _ := handleError(t, errors.Wrap(domainerrors.ErrInvalidCredentials.WithDetails("password mismatch"), "login failed"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", body.Error.Message)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_StorageErrorIsLogged(t *testing.T) {
	rec, body, logs := handleError(t, domainerrors.NewStorageError(errors.New("pq: too many connections"), "create account"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Nil(t, body.Error.Details)
	assert.Contains(t, logs, "too many connections")
	assert.NotContains(t, rec.Body.String(), "too many connections")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body, _ := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Not Found", body.Error.Message)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	rec, body, logs := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Contains(t, logs, "Unhandled error")
}
