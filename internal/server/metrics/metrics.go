// Package metrics holds the Prometheus collectors of the portal server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes used as label values.
const (
	LoginSuccess            = "success"
	LoginEntityNotFound     = "entity_not_found"
	LoginInvalidCredentials = "invalid_credentials"
	LoginError              = "error"
)

// Metrics groups every collector. Each instance owns its registry so tests
// can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	LoginAttempts       *prometheus.CounterVec
	Registrations       prometheus.Counter
	PasswordResets      prometheus.Counter
	UsersDeleted        prometheus.Counter
	DocumentsUploaded   *prometheus.CounterVec
	UploadFailures      *prometheus.CounterVec
	RegistryEntities    prometheus.Gauge
	RegistrySkippedRows prometheus.Gauge
	RPCRequests         *prometheus.CounterVec
	RPCDuration         *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered, plus the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		LoginAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "came_login_attempts_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		Registrations: f.NewCounter(prometheus.CounterOpts{
			Name: "came_registrations_total",
			Help: "Credential rows created",
		}),
		PasswordResets: f.NewCounter(prometheus.CounterOpts{
			Name: "came_password_resets_total",
			Help: "Administrative password resets",
		}),
		UsersDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "came_users_deleted_total",
			Help: "Credential rows deleted",
		}),
		DocumentsUploaded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "came_documents_uploaded_total",
			Help: "Documents stored in the vault by type",
		}, []string{"type"}),
		UploadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "came_document_upload_failures_total",
			Help: "Failed document uploads by reason",
		}, []string{"reason"}),
		RegistryEntities: f.NewGauge(prometheus.GaugeOpts{
			Name: "came_registry_entities",
			Help: "Entities in the last roster load",
		}),
		RegistrySkippedRows: f.NewGauge(prometheus.GaugeOpts{
			Name: "came_registry_skipped_rows",
			Help: "Rows skipped in the last roster load",
		}),
		RPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "came_grpc_requests_total",
			Help: "gRPC requests by method and status code",
		}, []string{"method", "code"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "came_grpc_request_duration_seconds",
			Help:    "gRPC request duration",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveLogin(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

// ObserveRegistryLoad records the size of the roster just loaded.
func (m *Metrics) ObserveRegistryLoad(entities, skipped int) {
	m.RegistryEntities.Set(float64(entities))
	m.RegistrySkippedRows.Set(float64(skipped))
}

// ObserveRPC records one finished call. Call with time.Now() taken at the
// start of the call.
func (m *Metrics) ObserveRPC(method, code string, start time.Time) {
	m.RPCRequests.WithLabelValues(method, code).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
