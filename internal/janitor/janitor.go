// Package janitor clears expired password-reset tokens on a schedule.
// Purging is hygiene only: expiry is enforced at validate/consume time, so a
// missed run never makes a stale token usable.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/akulov/taskboard/internal/metrics"
	"github.com/robfig/cron/v3"
)

// tokenPurger is the slice of UserRepository the janitor needs.
type tokenPurger interface {
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}

type Janitor struct {
	users  tokenPurger
	logger *slog.Logger
	cron   *cron.Cron
}

func New(users tokenPurger, logger *slog.Logger) *Janitor {
	return &Janitor{
		users:  users,
		logger: logger.With("component", "janitor"),
		cron:   cron.New(),
	}
}

// Start schedules an hourly purge and runs the cron loop in its own
// goroutine. Call Stop to drain it.
func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc("@hourly", j.purge); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts scheduling and waits for an in-flight purge to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := j.users.PurgeExpiredResetTokens(ctx)
	if err != nil {
		j.logger.Error("purge expired reset tokens", "error", err)
		return
	}
	if n > 0 {
		metrics.ResetTokensPurgedTotal.Add(float64(n))
		j.logger.Info("purged expired reset tokens", "count", n)
	}
}
