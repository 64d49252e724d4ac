package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/internal/imageload"
	"github.com/northwind-studio/website/internal/ratelimit"
	"github.com/northwind-studio/website/internal/wizard"
	"github.com/northwind-studio/website/pkg/logger"
)

// Module provides scheduled task functionality
var Module = fx.Module("scheduler",
	fx.Provide(NewSchedulerFromConfig),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

func NewSchedulerFromConfig(log *slog.Logger) *Scheduler {
	return NewScheduler(log, DefaultTaskTimeout)
}

// TaskParams contains dependencies for creating scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Store     *wizard.Store
	Prober    *imageload.Prober
	Limiter   *ratelimit.Limiter
	Log       *slog.Logger
	Cfg       *config.Config
}

// RegisterTasks registers all scheduled tasks. A zero interval disables the
// corresponding task.
func RegisterTasks(p TaskParams) error {
	if interval := p.Cfg.Contact.SweepInterval; interval > 0 {
		sweep := NewSessionSweepTask(p.Store, p.Log)
		if err := p.Scheduler.AddIntervalTask(TaskSessionSweep, interval, sweep.Run); err != nil {
			p.Log.Error("failed to register session sweep task", logger.Error(err))
		}
	}

	if interval := p.Cfg.Contact.SweepInterval; interval > 0 && p.Limiter.Enabled() {
		prune := NewRateLimitPruneTask(p.Limiter, p.Log)
		if err := p.Scheduler.AddIntervalTask(TaskRateLimitGC, interval, prune.Run); err != nil {
			p.Log.Error("failed to register rate limit prune task", logger.Error(err))
		}
	}

	if interval := p.Cfg.Images.ProbeInterval; interval > 0 {
		refresh := NewImageRefreshTask(p.Prober)
		if err := p.Scheduler.AddIntervalTask(TaskImageRefresh, interval, refresh.Run); err != nil {
			p.Log.Error("failed to register image refresh task", logger.Error(err))
		}
	}

	p.Log.Info("registered scheduled tasks",
		slog.Any("tasks", p.Scheduler.ListTasks()))
	return nil
}

// RegisterSchedulerLifecycle registers the scheduler with fx lifecycle
func RegisterSchedulerLifecycle(lc fx.Lifecycle, scheduler *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
