package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-studio/website/internal/imageload"
	"github.com/northwind-studio/website/internal/ratelimit"
	"github.com/northwind-studio/website/internal/wizard"
	"github.com/northwind-studio/website/pkg/logger"
)

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(logger.Nop(), 0)
	assert.False(t, s.IsRunning())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Start(context.Background()), "second start is a no-op")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.IsRunning())
	require.NoError(t, s.Stop(ctx), "second stop is a no-op")
}

func TestScheduler_AddTasks(t *testing.T) {
	s := NewScheduler(logger.Nop(), 0)
	noop := func(ctx context.Context) error { return nil }

	assert.Empty(t, s.ListTasks())

	require.NoError(t, s.AddIntervalTask("b_interval", time.Minute, noop))
	require.NoError(t, s.AddCronTask("a_cron", "0 */5 * * * *", noop))
	assert.Equal(t, []string{"a_cron", "b_interval"}, s.ListTasks())

	// re-adding replaces the entry
	require.NoError(t, s.AddIntervalTask("b_interval", 2*time.Minute, noop))
	assert.Len(t, s.ListTasks(), 2)

	info := s.GetTaskInfo()
	require.Len(t, info, 2)
	assert.Equal(t, "a_cron", info[0].Name)

	s.RemoveTask("a_cron")
	s.RemoveTask("missing")
	assert.Equal(t, []string{"b_interval"}, s.ListTasks())
}

func TestScheduler_AddTaskErrors(t *testing.T) {
	s := NewScheduler(logger.Nop(), 0)
	noop := func(ctx context.Context) error { return nil }

	assert.Error(t, s.AddIntervalTask("zero", 0, noop))
	assert.Error(t, s.AddCronTask("bad", "not a schedule", noop))
	assert.Empty(t, s.ListTasks())
}

func TestScheduler_RunNow(t *testing.T) {
	s := NewScheduler(logger.Nop(), 20*time.Millisecond)

	var runs atomic.Int32
	var hadDeadline atomic.Bool
	require.NoError(t, s.AddIntervalTask("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		_, ok := ctx.Deadline()
		hadDeadline.Store(ok)
		return nil
	}))
	require.NoError(t, s.AddIntervalTask("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	}))

	require.NoError(t, s.RunNow("count"))
	require.NoError(t, s.RunNow("failing"))
	assert.EqualValues(t, 1, runs.Load())
	assert.True(t, hadDeadline.Load())

	assert.Error(t, s.RunNow("missing"))
}

func TestScheduler_TaskTimeout(t *testing.T) {
	s := NewScheduler(logger.Nop(), 10*time.Millisecond)

	var got atomic.Value
	require.NoError(t, s.AddIntervalTask("slow", time.Hour, func(ctx context.Context) error {
		<-ctx.Done()
		got.Store(ctx.Err())
		return ctx.Err()
	}))

	require.NoError(t, s.RunNow("slow"))
	assert.Equal(t, context.DeadlineExceeded, got.Load())
}

func TestSessionSweepTask(t *testing.T) {
	form := wizard.Form{Steps: []wizard.StepDef{{Title: "only"}}}
	store := wizard.NewStore(func() *wizard.Wizard { return wizard.New(form, nil) }, time.Minute, logger.Nop())
	store.Create()
	store.Create()

	task := NewSessionSweepTask(store, logger.Nop())
	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, 2, store.Len(), "fresh sessions are kept")

	task.now = func() time.Time { return time.Now().Add(time.Hour) }
	require.NoError(t, task.Run(context.Background()))
	assert.Zero(t, store.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, task.Run(ctx), context.Canceled)
}

func TestImageRefreshTask(t *testing.T) {
	prober := imageload.NewProber(nil, time.Second, logger.Nop())
	task := NewImageRefreshTask(prober)
	require.NoError(t, task.Run(context.Background()))
}

func TestRateLimitPruneTask(t *testing.T) {
	limiter := ratelimit.New(60, 1, logger.Nop())
	limiter.Allow("203.0.113.1")

	task := NewRateLimitPruneTask(limiter, logger.Nop())
	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, 1, limiter.Len(), "recent buckets are kept")

	task.now = func() time.Time { return time.Now().Add(time.Hour) }
	require.NoError(t, task.Run(context.Background()))
	assert.Zero(t, limiter.Len())
}
