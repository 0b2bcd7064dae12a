package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/akulov/taskboard/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Auth metrics

	RegistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "registrations_total",
		Help:      "Total user registrations.",
	})

	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "logins_total",
		Help:      "Total login attempts, by outcome.",
	}, []string{"outcome"})

	// Password reset lifecycle

	ResetRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "password_reset_requests_total",
		Help:      "Total reset tokens issued.",
	})

	ResetsConsumedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "password_resets_consumed_total",
		Help:      "Total reset token consume attempts, by outcome.",
	}, []string{"outcome"})

	ResetTokensPurgedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "reset_tokens_purged_total",
		Help:      "Expired reset tokens cleared by the janitor.",
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taskboard",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskboard",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		RegistrationsTotal,
		LoginsTotal,
		ResetRequestsTotal,
		ResetsConsumedTotal,
		ResetTokensPurgedTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer serves /metrics plus the liveness and readiness probes on a
// dedicated listener, away from the public API port.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		report := checker.Readiness(r.Context())
		code := http.StatusOK
		if report.Status != health.StatusUp {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, report)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
