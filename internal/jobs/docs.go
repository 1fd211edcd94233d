// Package jobs provides scheduled background tasks for the packing service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// EvaluationReportJob - lists stored episodes, scores the running ones and
// logs totals, mean reward and mean degree of filling.
//
// # Usage
//
//	reportJob := jobs.NewEvaluationReportJob(summaryHandler, repository, scorer, "@every 1m", logger)
//	jobManager := jobs.NewJobManager(reportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are parsed with cron.WithSeconds, so six-field expressions and
// descriptors such as "@every 30s" are both accepted. An invalid schedule makes
// Start fail.
//
// # Error Handling
//
// Running episodes whose container holds no weight have no reward and are
// left out of the means. Any other failure aborts the run and is logged.
package jobs
