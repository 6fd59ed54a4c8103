package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name string
	fn   func(ctx context.Context) error
}

// Scheduler drives all registered jobs off one shared tick. Jobs that
// should only act at a certain hour gate themselves on the clock, so a
// single cadence covers the whole set.
type Scheduler struct {
	tick   time.Duration
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(tick time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		tick:   tick,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add registers a job. Must be called before Start.
func (s *Scheduler) Add(name string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, fn: fn})
	slog.Info("Cron job registered", "name", name)
}

// Start launches the tick loop. Jobs run once immediately, then on
// every tick until Stop is called.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.loop()

	s.mu.Lock()
	slog.Info("Cron scheduler started", "job_count", len(s.jobs), "tick", s.tick)
	s.mu.Unlock()
}

// Stop cancels the loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.runAll()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.runAll()
		}
	}
}

func (s *Scheduler) runAll() {
	s.mu.Lock()
	jobs := s.jobs
	s.mu.Unlock()

	for _, j := range jobs {
		start := time.Now()
		if err := j.fn(s.ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		} else {
			slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
		}
	}
}
