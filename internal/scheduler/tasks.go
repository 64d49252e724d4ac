package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/northwind-studio/website/internal/imageload"
	"github.com/northwind-studio/website/internal/ratelimit"
	"github.com/northwind-studio/website/internal/wizard"
	"github.com/northwind-studio/website/pkg/logger"
)

const (
	TaskSessionSweep = "contact_session_sweep"
	TaskImageRefresh = "image_probe_refresh"
	TaskRateLimitGC  = "contact_rate_limit_prune"
)

// rateLimitIdle is how long a client bucket may sit unused before it is
// dropped. Any bucket idle this long has refilled completely.
const rateLimitIdle = 10 * time.Minute

// SessionSweepTask evicts idle contact wizard sessions.
type SessionSweepTask struct {
	store *wizard.Store
	log   *slog.Logger
	now   func() time.Time
}

func NewSessionSweepTask(store *wizard.Store, log *slog.Logger) *SessionSweepTask {
	return &SessionSweepTask{
		store: store,
		log:   log.With(logger.Scope("scheduler.session_sweep")),
		now:   time.Now,
	}
}

// Run executes the sweep
func (t *SessionSweepTask) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	removed := t.store.Sweep(t.now())
	if removed > 0 {
		t.log.Info("evicted idle contact sessions",
			slog.Int("removed", removed),
			slog.Int("remaining", t.store.Len()))
	}
	return nil
}

// ImageRefreshTask re-probes remote image sources so a recovered CDN is
// picked up and a broken one falls back.
type ImageRefreshTask struct {
	prober *imageload.Prober
}

func NewImageRefreshTask(prober *imageload.Prober) *ImageRefreshTask {
	return &ImageRefreshTask{prober: prober}
}

func (t *ImageRefreshTask) Run(ctx context.Context) error {
	return t.prober.Refresh(ctx)
}

// RateLimitPruneTask drops idle per-client rate limit buckets.
type RateLimitPruneTask struct {
	limiter *ratelimit.Limiter
	log     *slog.Logger
	now     func() time.Time
}

func NewRateLimitPruneTask(limiter *ratelimit.Limiter, log *slog.Logger) *RateLimitPruneTask {
	return &RateLimitPruneTask{
		limiter: limiter,
		log:     log.With(logger.Scope("scheduler.rate_limit_prune")),
		now:     time.Now,
	}
}

func (t *RateLimitPruneTask) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if removed := t.limiter.Prune(t.now().Add(-rateLimitIdle)); removed > 0 {
		t.log.Debug("pruned rate limit buckets", slog.Int("removed", removed))
	}
	return nil
}
