package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs a task on a fixed period until stopped. The market refresh
// loop and the storage watcher are both driven by it.
type Scheduler struct {
	interval time.Duration
	task     func(context.Context)
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
}

// New creates a stopped Scheduler
func New(interval time.Duration, task func(context.Context)) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
	}
}

// Start launches the task loop. A second Start while running is ignored.
// The context passed to the task is cancelled by Stop.
func (s *Scheduler) Start(ctx context.Context, firstRunImmediately bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	s.wg.Add(1)
	go s.loop(ctx, firstRunImmediately)
}

func (s *Scheduler) loop(ctx context.Context, firstRunImmediately bool) {
	defer s.wg.Done()

	if firstRunImmediately {
		s.task(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.task(ctx)
		}
	}
}

// Stop cancels the task context and waits for the loop to exit
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.running = false
}

// Restart stops the loop, if any, and starts it again with a fresh ticker.
// It must not be called from inside the task.
func (s *Scheduler) Restart(ctx context.Context, firstRunImmediately bool) {
	s.Stop()
	s.Start(ctx, firstRunImmediately)
}

// Interval returns the configured period
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// IsRunning reports whether the loop is active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
