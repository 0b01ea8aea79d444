package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "/auth/login", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/auth/login", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/auth/login", http.StatusUnauthorized, 10*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.requestTotal.WithLabelValues("POST", "/auth/login", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requestTotal.WithLabelValues("POST", "/auth/login", "401")), 0)
}

func TestMetrics_RecordAuthAttempt(t *testing.T) {
	m := New()

	m.RecordAuthAttempt("login", OutcomeInvalidCredentials)
	m.RecordAuthAttempt("login", OutcomeInvalidCredentials)
	m.RecordAuthAttempt("register", OutcomeSuccess)

	assert.InDelta(t, 2, testutil.ToFloat64(m.authAttempts.WithLabelValues("login", OutcomeInvalidCredentials)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.authAttempts.WithLabelValues("register", OutcomeSuccess)), 0)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
		m.RecordAuthAttempt("login", OutcomeSuccess)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordAuthAttempt("register", OutcomeDuplicate)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `rently_auth_attempts_total{operation="register",outcome="duplicate"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	m := New()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(7)

	require.NoError(t, m.RegisterDBStats(db, "accounts"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `go_sql_max_open_connections{db_name="accounts"} 7`)

	assert.Error(t, m.RegisterDBStats(db, "accounts"))

	var unwired *Metrics
	assert.NoError(t, unwired.RegisterDBStats(db, "accounts"))
}
