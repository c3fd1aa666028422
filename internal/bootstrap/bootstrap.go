package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/Houeta/staff-api/internal/metrics"
)

const (
	maxAttempts = 10
	backoffCap  = 10 * time.Second
)

// Initializer is the slice of the repository the readiness loop needs:
// idempotent schema creation followed by a liveness ping.
type Initializer interface {
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Readiness drives the startup database-readiness loop. The loop is the only
// place in the service that retries anything; per-request failures are
// surfaced to callers immediately.
type Readiness struct {
	log     *slog.Logger
	init    Initializer
	metrics *metrics.Metrics
	sleep   func(ctx context.Context, d time.Duration) bool
}

func NewReadiness(log *slog.Logger, init Initializer, mtr *metrics.Metrics) *Readiness {
	return &Readiness{
		log:     log,
		init:    init,
		metrics: mtr,
		sleep:   sleepCtx,
	}
}

// Backoff returns the wait before the next attempt: min(2^attempt, 10)
// seconds, with attempt counted from 1.
func Backoff(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > backoffCap {
		return backoffCap
	}
	return d
}

// Wait attempts schema creation and a liveness ping until both succeed or
// attempts are exhausted. It reports whether the database became ready.
// Exhaustion is not fatal: the caller keeps the process running and /health
// reports the outage.
func (r *Readiness) Wait(ctx context.Context) bool {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := r.init.EnsureSchema(ctx)
		if err == nil {
			err = r.init.Ping(ctx)
		}
		if err == nil {
			r.metrics.DBReady.Set(1)
			r.log.InfoContext(ctx, "Database connected and tables ensured", "attempt", attempt)
			return true
		}

		wait := Backoff(attempt)
		r.log.WarnContext(ctx, "Database not ready, retrying",
			"attempt", attempt, "max_attempts", maxAttempts, "wait", wait, sl.Err(err))
		if !r.sleep(ctx, wait) {
			break
		}
	}

	r.metrics.DBReady.Set(0)
	r.log.ErrorContext(ctx, "Could not connect to database after retries; /health will report it down")
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
