package jobs

import (
	"github.com/lululale/zoom-car-rental/internal/config"
	"github.com/lululale/zoom-car-rental/internal/logger"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

// JobRunner coordinates the scheduled ledger scans. The scans are
// read-only: the lifecycle state machine has no overdue state, so jobs
// report rather than transition.
type JobRunner struct {
	store  repository.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store repository.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		config: cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllScans runs every scan once (for manual execution)
func (jr *JobRunner) RunAllScans() {
	jr.RunOverdueRentalScan()
	jr.RunPendingInspectionScan()
}
