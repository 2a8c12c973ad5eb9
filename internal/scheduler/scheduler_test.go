package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"foodsync/internal/model"
)

type fakeRunner struct {
	runs  atomic.Int32
	err   error
	panic bool
}

func (r *fakeRunner) Run(context.Context) (model.SyncSummary, error) {
	r.runs.Add(1)
	if r.panic {
		panic("boom")
	}
	return model.SyncSummary{}, r.err
}

func TestRunOnceContainsError(t *testing.T) {
	r := &fakeRunner{err: errors.New("feed down")}
	s := New(r, time.Hour, zap.NewNop().Sugar())

	assert.NotPanics(t, func() { s.RunOnce(context.Background()) })
	assert.Equal(t, int32(1), r.runs.Load())
}

func TestRunOnceContainsPanic(t *testing.T) {
	r := &fakeRunner{panic: true}
	s := New(r, time.Hour, zap.NewNop().Sugar())

	assert.NotPanics(t, func() { s.RunOnce(context.Background()) })
}

// A failing run must not stop the schedule.
func TestStartKeepsTicking(t *testing.T) {
	r := &fakeRunner{err: errors.New("always failing")}
	s := New(r, 10*time.Millisecond, zap.NewNop().Sugar())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()
	s.Start(ctx)

	assert.GreaterOrEqual(t, r.runs.Load(), int32(2))
}

func TestStartStopsOnCancel(t *testing.T) {
	r := &fakeRunner{}
	s := New(r, time.Hour, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
	assert.Equal(t, int32(0), r.runs.Load())
}
