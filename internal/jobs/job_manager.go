package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	evaluationReportJob *EvaluationReportJob
}

// NewJobManager creates a job manager around the already built jobs.
func NewJobManager(evaluationReportJob *EvaluationReportJob) *JobManager {
	return &JobManager{
		evaluationReportJob: evaluationReportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.evaluationReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start evaluation report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.evaluationReportJob.Stop()
}
