// Package metrics owns the Prometheus collectors exported by the API.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"rently/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rently"

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// Auth attempt outcomes
const (
	OutcomeSuccess            = "success"
	OutcomeDuplicate          = "duplicate"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeError              = "error"
)

// Metrics groups the collectors on a private registry instead of the global default one.
type Metrics struct {
	registry       *prometheus.Registry
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	authAttempts   *prometheus.CounterVec
}

// New registers all collectors, including Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Registration and login attempts by outcome",
		}, []string{"operation", "outcome"}),
	}

	m.registry.MustRegister(
		m.requestTotal,
		m.requestLatency,
		m.authAttempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest records one handled request. route is the matched route template, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// RecordAuthAttempt counts a register or login attempt.
func (m *Metrics) RecordAuthAttempt(operation, outcome string) {
	if m == nil {
		return
	}

	m.authAttempts.With(prometheus.Labels{"operation": operation, "outcome": outcome}).Inc()
}

// RegisterDBStats exports the pool statistics of db under the db_name label.
// It is a no-op when metrics are not wired.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	if m == nil {
		return nil
	}

	if err := m.registry.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return errors.Wrapf(err, "register %s pool stats", name)
	}

	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
