package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-studio/website/pkg/logger"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore(func() *Wizard { return New(twoStepForm(), &fakeSubmitter{}) }, time.Hour, logger.Nop())

	id, w := s.Create()
	require.NotEmpty(t, id)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, w, got)

	_, ok = s.Get("does-not-exist")
	assert.False(t, ok)

	s.Delete(id)
	_, ok = s.Get(id)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStoreDraftIsNotStored(t *testing.T) {
	s := NewStore(func() *Wizard { return New(twoStepForm(), &fakeSubmitter{}) }, time.Hour, logger.Nop())

	a, b := s.Draft(), s.Draft()
	require.NotNil(t, a)
	assert.NotSame(t, a, b)
	assert.Zero(t, s.Len())
}

func TestStoreSweep(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	now := func() time.Time { return clock }

	sub := &fakeSubmitter{block: make(chan struct{}), started: make(chan struct{}, 1)}
	s := NewStore(func() *Wizard { return New(twoStepForm(), sub, WithClock(now)) }, time.Hour, logger.Nop())

	idleID, _ := s.Create()
	busyID, busy := s.Create()
	require.NoError(t, busy.Set("email", "a@b.com"))
	require.NoError(t, busy.Advance(context.Background()))
	require.NoError(t, busy.Set("message", "hello"))

	done := make(chan error, 1)
	go func() { done <- busy.Submit(context.Background()) }()
	<-sub.started

	clock = base.Add(30 * time.Minute)
	freshID, _ := s.Create()

	assert.Zero(t, s.Sweep(base.Add(59*time.Minute)))
	assert.Equal(t, 1, s.Sweep(base.Add(80*time.Minute)))

	_, ok := s.Get(idleID)
	assert.False(t, ok)
	_, ok = s.Get(busyID)
	assert.True(t, ok, "in-flight session must survive the sweep")
	_, ok = s.Get(freshID)
	assert.True(t, ok)

	close(sub.block)
	require.NoError(t, <-done)
}

func TestStoreSweepDisabled(t *testing.T) {
	s := NewStore(func() *Wizard { return New(twoStepForm(), &fakeSubmitter{}) }, 0, logger.Nop())
	s.Create()
	assert.Zero(t, s.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, s.Len())
}
