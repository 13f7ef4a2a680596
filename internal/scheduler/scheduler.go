package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lululale/zoom-car-rental/internal/jobs"
	"github.com/lululale/zoom-car-rental/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.OverdueRentalScan, s.jobs.RunOverdueRentalScan)
	if err != nil {
		logger.Error("Failed to register OverdueRentalScan job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.PendingInspectionScan, s.jobs.RunPendingInspectionScan)
	if err != nil {
		logger.Error("Failed to register PendingInspectionScan job", "error", err)
	}
}

// Start begins executing scheduled jobs
func (s *Scheduler) Start() {
	logger.Info("Starting scheduler")
	s.cron.Start()
}

// Stop gracefully shuts the scheduler down, waiting for running jobs
func (s *Scheduler) Stop() {
	logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
