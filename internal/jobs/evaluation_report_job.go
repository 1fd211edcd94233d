package jobs

import (
	"context"
	"errors"
	"log/slog"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/container"
	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultEvaluationReportSchedule is used when no schedule is configured.
const DefaultEvaluationReportSchedule = "@every 1m"

type (
	// EpisodesSummaryHandler lists stored episodes.
	EpisodesSummaryHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetEpisodesSummaryQuery,
		) ([]queries.GetEpisodesSummaryQueryResponse, error)
	}

	// RunningEpisodesReader loads every episode that still accepts steps.
	RunningEpisodesReader interface {
		GetAllRunning(ctx context.Context) ([]*episode.Episode, error)
	}
)

// EvaluationReport aggregates the state of all stored episodes.
type EvaluationReport struct {
	Episodes   int
	Running    int
	Terminated int

	// Scored counts running episodes with a defined reward.
	Scored              int
	MeanReward          float64
	MeanDegreeOfFilling float64
}

// EvaluationReportJob periodically scores running episodes and logs a summary.
type EvaluationReportJob struct {
	summaryHandler EpisodesSummaryHandler
	reader         RunningEpisodesReader
	scorer         services.PlacementScorer
	schedule       string
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewEvaluationReportJob creates the report job.
// An empty schedule falls back to DefaultEvaluationReportSchedule.
func NewEvaluationReportJob(
	summaryHandler EpisodesSummaryHandler,
	reader RunningEpisodesReader,
	scorer services.PlacementScorer,
	schedule string,
	logger *slog.Logger,
) *EvaluationReportJob {
	if schedule == "" {
		schedule = DefaultEvaluationReportSchedule
	}

	return &EvaluationReportJob{
		summaryHandler: summaryHandler,
		reader:         reader,
		scorer:         scorer,
		schedule:       schedule,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "evaluation_report_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *EvaluationReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if _, err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Evaluation report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Evaluation report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler. A report already running is not interrupted.
func (j *EvaluationReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Evaluation report job stopped")
}

// Report builds one report and logs it.
func (j *EvaluationReportJob) Report(ctx context.Context) (EvaluationReport, error) {
	summaries, err := j.summaryHandler.Handle(ctx, queries.NewGetEpisodesSummaryQuery())
	if err != nil {
		return EvaluationReport{}, err
	}

	var report EvaluationReport
	report.Episodes = len(summaries)
	for _, s := range summaries {
		switch s.Status {
		case episode.Running:
			report.Running++
		case episode.Terminated:
			report.Terminated++
		}
	}

	running, err := j.reader.GetAllRunning(ctx)
	if err != nil {
		return EvaluationReport{}, err
	}

	var rewardSum, fillingSum float64
	for _, ep := range running {
		c := ep.Container()

		reward, scoreErr := j.scorer.Score(c)
		if errors.Is(scoreErr, container.ErrCenterOfGravityUndefined) {
			continue
		}
		if scoreErr != nil {
			return EvaluationReport{}, scoreErr
		}

		report.Scored++
		rewardSum += reward
		fillingSum += c.DegreeOfFilling()
	}
	if report.Scored > 0 {
		report.MeanReward = rewardSum / float64(report.Scored)
		report.MeanDegreeOfFilling = fillingSum / float64(report.Scored)
	}

	j.logger.InfoContext(ctx, "Evaluation report",
		"episodes", report.Episodes,
		"running", report.Running,
		"terminated", report.Terminated,
		"scored", report.Scored,
		"mean_reward", report.MeanReward,
		"mean_degree_of_filling", report.MeanDegreeOfFilling,
	)

	return report, nil
}
