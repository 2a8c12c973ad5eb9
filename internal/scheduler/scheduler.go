package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"foodsync/internal/model"
)

// Runner is the single entry point the scheduler drives; the sync pipeline
// implements it.
type Runner interface {
	Run(ctx context.Context) (model.SyncSummary, error)
}

const defaultInterval = 24 * time.Hour

// Scheduler fires one pipeline run per interval. A failed or panicking run
// is logged and does not affect the next tick.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	log      *zap.SugaredLogger
}

func New(runner Runner, interval time.Duration, log *zap.SugaredLogger) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{runner: runner, interval: interval, log: log}
}

// Start blocks until ctx is cancelled, running the pipeline once per
// interval. The first run happens after one full interval, not at startup;
// use RunOnce for an immediate run.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single run, containing any error or panic.
func (s *Scheduler) RunOnce(ctx context.Context) {
	defer func() {
		if v := recover(); v != nil {
			s.log.Errorw("sync run panicked", "panic", v)
		}
	}()

	if _, err := s.runner.Run(ctx); err != nil {
		s.log.Errorw("sync run failed", "err", err)
	}
}
