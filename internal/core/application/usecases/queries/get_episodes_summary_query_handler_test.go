package queries_test

import (
	"context"
	"testing"
	"time"

	"packing/internal/adapters/out/postgres/episoderepo"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetEpisodesSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetEpisodesSummaryQueryHandler
	repo      *episoderepo.GormEpisodeRepository
}

func (suite *GetEpisodesSummaryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&episoderepo.EpisodeDTO{}, &episoderepo.ShipmentDTO{}, &episoderepo.PlacementDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetEpisodesSummaryQueryHandler(db)
	suite.repo = episoderepo.NewGormEpisodeRepository(db, &noopAggregateTracker{})
}

func (suite *GetEpisodesSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetEpisodesSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE episodes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetEpisodesSummaryQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetEpisodesSummaryQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetEpisodesSummaryQueryHandlerTestSuite) TestHandle_WithEpisodes_ReturnsRowsInCreationOrder() {
	ctx := context.Background()
	first := suite.saveEpisode(5, 3, 3)
	second := suite.saveEpisode(4, 2, 1)

	suite.Require().NoError(first.Step(episode.Action{ShipmentIndex: 0, X: 0, Y: 0}))
	suite.Require().NoError(first.Step(episode.Action{ShipmentIndex: 1, X: 2, Y: 0}))
	suite.Require().NoError(suite.repo.Update(ctx, first))

	suite.Require().NoError(second.Step(episode.Action{ShipmentIndex: 0, X: 0, Y: 0}))
	suite.Require().NoError(suite.repo.Update(ctx, second))

	result, err := suite.handler.Handle(ctx, queries.NewGetEpisodesSummaryQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(5, result[0].ContainerLength)
	suite.Equal(3, result[0].ContainerHeight)
	suite.Equal(episode.Running, result[0].Status)
	suite.Equal(3, result[0].Shipments)
	suite.Equal(2, result[0].Placements)

	suite.Equal(second.ID(), result[1].ID)
	suite.Equal(episode.Terminated, result[1].Status)
	suite.Equal(1, result[1].Shipments)
	suite.Equal(1, result[1].Placements)
}

func (suite *GetEpisodesSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetEpisodesSummaryQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetEpisodesSummaryQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *GetEpisodesSummaryQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.saveEpisode(5, 3, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewGetEpisodesSummaryQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

// saveEpisode stores an episode whose catalog holds n 1x1 shipments.
func (suite *GetEpisodesSummaryQueryHandlerTestSuite) saveEpisode(length, height, n int) *episode.Episode {
	shipments := make([]shipment.Shipment, 0, n)
	for range n {
		s, err := shipment.NewStandardShipment(1, 1, 1)
		suite.Require().NoError(err)
		shipments = append(shipments, s)
	}

	ep, err := episode.NewEpisode(kernel.NewUUID(), episode.Config{
		ContainerLength: length,
		ContainerHeight: height,
		Shipments:       shipments,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), ep))

	// created_at has microsecond precision; keep creation order unambiguous
	time.Sleep(2 * time.Millisecond)
	return ep
}

type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func TestGetEpisodesSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetEpisodesSummaryQueryHandlerTestSuite))
}
