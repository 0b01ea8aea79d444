package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rently/config"
	deliverycontext "rently/internal/delivery/context"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "reuses client id", incoming: "req-from-gateway", reused: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			var ctxRequestID string
			e.GET("/", func(c echo.Context) error {
				ctx := c.Request().Context()
				ctxRequestID = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLogger(ctx).Info("inside handler")

				return c.NoContent(http.StatusNoContent)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxRequestID)
			assert.Contains(t, logs.String(), `"request_id":"`+headerID+`"`)
			if tt.reused {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				assert.NotEqual(t, tt.incoming, headerID)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newEcho := func(debug bool, logs *bytes.Buffer) *echo.Echo {
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(logs, nil)), cfg)

		e := echo.New()
		e.POST("/auth/register", func(c echo.Context) error {
			return errors.WithStack(domainerrors.ErrDuplicateAccount)
		}, m.Handle)

		return e
	}

	t.Run("debug logs with predicted status", func(t *testing.T) {
		var logs bytes.Buffer
		e := newEcho(true, &logs)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/register", nil))

		assert.Contains(t, logs.String(), `"msg":"HTTP Request"`)
		assert.Contains(t, logs.String(), `"status":409`)
		assert.Contains(t, logs.String(), `"level":"WARN"`)
	})

	t.Run("silent without debug", func(t *testing.T) {
		var logs bytes.Buffer
		e := newEcho(false, &logs)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/register", nil))

		assert.Empty(t, logs.String())
	})
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	mw := NewMetricsMiddleware(m)

	e := echo.New()
	e.Use(mw.Handle)
	e.GET("/users/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/auth/login", func(c echo.Context) error {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `rently_http_requests_total{method="GET",route="/users/:id",status="200"} 1`)
	assert.Contains(t, body, `rently_http_requests_total{method="POST",route="/auth/login",status="401"} 1`)
	assert.Contains(t, body, `status="404"`)
	assert.NotContains(t, body, `route="/nowhere"`)
	assert.NotContains(t, body, `route="/users/42"`)
}

func TestMetricsMiddleware_NilMetrics(t *testing.T) {
	e := echo.New()
	e.Use(NewMetricsMiddleware(nil).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
