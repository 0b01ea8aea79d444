package middleware

import (
	"net/http"

	domainerrors "rently/internal/domain/errors"
	"rently/internal/errors"

	"github.com/labstack/echo/v4"
)

// responseStatus predicts the status of a request whose error has not reached the
// HTTP error handler yet. Committed responses report what was written.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
