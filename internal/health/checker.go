package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusUp   = "up"
	StatusDown = "down"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check is the health of a single dependency.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report aggregates dependency checks into an overall status.
type Report struct {
	Status string           `json:"status"`
	Checks map[string]Check `json:"checks,omitempty"`
}

type Checker struct {
	db     Pinger
	logger *slog.Logger
	gauge  *prometheus.GaugeVec
}

func NewChecker(db Pinger, logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "taskboard",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		db:     db,
		logger: logger.With("component", "health"),
		gauge:  gauge,
	}
}

// Liveness reports on the process itself, never on dependencies.
func (c *Checker) Liveness(_ context.Context) Report {
	return Report{Status: StatusUp}
}

// Readiness pings every dependency and reports per-check status.
func (c *Checker) Readiness(ctx context.Context) Report {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	report := Report{
		Status: StatusUp,
		Checks: make(map[string]Check),
	}

	if err := c.db.Ping(checkCtx); err != nil {
		c.logger.Warn("postgres health check failed", "error", err)
		report.Status = StatusDown
		report.Checks["postgres"] = Check{Status: StatusDown, Error: err.Error()}
		c.gauge.WithLabelValues("postgres").Set(0)
	} else {
		report.Checks["postgres"] = Check{Status: StatusUp}
		c.gauge.WithLabelValues("postgres").Set(1)
	}

	return report
}
