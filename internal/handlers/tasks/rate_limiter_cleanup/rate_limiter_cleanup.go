package rate_limiter_cleanup

import (
	"context"
	"time"

	"tireshop/pkg/logger"
)

// RateLimiterCleanup удаляет бакеты клиентов, которые давно не присылали запросов.
type RateLimiterCleanup struct {
	log      taskLogger
	limiter  Limiter
	interval time.Duration
	idleTTL  time.Duration
}

func NewRateLimiterCleanup(log taskLogger, limiter Limiter, interval, idleTTL time.Duration) *RateLimiterCleanup {
	return &RateLimiterCleanup{
		log:      log,
		limiter:  limiter,
		interval: interval,
		idleTTL:  idleTTL,
	}
}

func (r *RateLimiterCleanup) TTL() time.Duration {
	return r.interval
}

func (r *RateLimiterCleanup) Do(context.Context) error {
	removed := r.limiter.Cleanup(r.idleTTL)
	if removed > 0 {
		r.log.Info("rate limiter cleanup", logger.NewField("removed_clients", removed))
	}
	return nil
}

func (r *RateLimiterCleanup) Info() string {
	return "rate limiter cleanup"
}
