package shop

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ClothingShop/internal/nav"
	"ClothingShop/pkg/kit"
)

// Sweeper periodically drops idle navigation sessions and stale rate-limit
// buckets.
type Sweeper struct {
	Sessions *nav.MemStore
	Limiter  *kit.IPRateLimiter
	TTL      time.Duration
	Interval time.Duration
	Log      *zap.Logger
}

func (sw *Sweeper) Run(ctx context.Context) error {
	t := time.NewTicker(sw.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			sw.sweepOnce()
		}
	}
}

func (sw *Sweeper) sweepOnce() {
	evicted := sw.Sessions.Sweep(sw.TTL)
	if sw.Limiter != nil {
		sw.Limiter.Sweep()
	}
	if evicted > 0 && sw.Log != nil {
		sw.Log.Info("idle sessions evicted", zap.Int("count", evicted))
	}
}
