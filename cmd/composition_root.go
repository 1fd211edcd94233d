package cmd

import (
	"log/slog"

	httpin "packing/internal/adapters/in/http"
	"packing/internal/adapters/out/postgres"
	"packing/internal/adapters/out/postgres/episoderepo"
	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/services"
	"packing/internal/core/ports"
	"packing/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	scorer     services.PlacementScorer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		scorer:     services.NewDefaultPlacementScorer(),
		logger:     logger,
	}
}

func (c *CompositionRoot) episodeUoWFactory() commands.EpisodeUoWFactory {
	return FuncEpisodeUoWFactory(func() commands.EpisodeUoW {
		return c.uowFactory.Create()
	})
}

// episodeRepository is bound to the plain connection, outside any unit of work.
func (c *CompositionRoot) episodeRepository() ports.EpisodeRepository {
	return episoderepo.NewGormEpisodeRepository(c.gormDB, discardTracker{})
}

func (c *CompositionRoot) CreateCreateEpisodeCommandHandler() commands.CreateEpisodeCommandHandler {
	return commands.NewCreateEpisodeCommandHandler(c.episodeUoWFactory())
}

func (c *CompositionRoot) CreateStepEpisodeCommandHandler() commands.StepEpisodeCommandHandler {
	return commands.NewStepEpisodeCommandHandler(c.episodeUoWFactory(), c.scorer)
}

func (c *CompositionRoot) CreateResetEpisodeCommandHandler() commands.ResetEpisodeCommandHandler {
	return commands.NewResetEpisodeCommandHandler(c.episodeUoWFactory())
}

func (c *CompositionRoot) CreateGetEpisodeEvaluationQueryHandler() queries.GetEpisodeEvaluationQueryHandler {
	return queries.NewGetEpisodeEvaluationQueryHandler(c.episodeRepository(), c.scorer)
}

func (c *CompositionRoot) CreateGetEpisodesSummaryQueryHandler() queries.GetEpisodesSummaryQueryHandler {
	return queries.NewGetEpisodesSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateEpisodeCommandHandler(),
		c.CreateStepEpisodeCommandHandler(),
		c.CreateResetEpisodeCommandHandler(),
		c.CreateGetEpisodeEvaluationQueryHandler(),
		c.CreateGetEpisodesSummaryQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reportJob := jobs.NewEvaluationReportJob(
		c.CreateGetEpisodesSummaryQueryHandler(),
		c.episodeRepository(),
		c.scorer,
		c.config.EvaluationReportSchedule,
		c.logger,
	)
	return jobs.NewJobManager(reportJob)
}

type FuncEpisodeUoWFactory func() commands.EpisodeUoW

func (f FuncEpisodeUoWFactory) Create() commands.EpisodeUoW {
	return f()
}

type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.UUID, any) {}
