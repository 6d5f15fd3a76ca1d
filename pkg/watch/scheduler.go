package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a job on a cron schedule, for periodic re-validation that
// does not depend on file events.
type Scheduler struct {
	spec    string
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewScheduler creates a scheduler for spec, a standard five-field cron
// expression. Common expressions:
//   - "*/15 * * * *" - every 15 minutes
//   - "0 * * * *"    - hourly
//   - "0 3 * * *"    - daily at 3 AM
func NewScheduler(spec string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		spec:   spec,
		cron:   cron.New(),
		logger: logger.With("component", "watch.scheduler"),
	}
}

// Start schedules job and returns immediately. The scheduler stops when ctx
// is cancelled or Stop is called. An empty spec does nothing.
func (s *Scheduler) Start(ctx context.Context, job func(context.Context)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec == "" {
		s.logger.Debug("no schedule configured, skipping scheduler")
		return nil
	}
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := cron.ParseStandard(s.spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.spec, err)
	}

	if _, err := s.cron.AddFunc(s.spec, func() {
		s.logger.Debug("scheduled run starting")
		job(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule job: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("scheduler started", "schedule", s.spec)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the scheduler and waits for a running job to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("scheduler stopped")
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the next scheduled run time, or nil when nothing is scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
