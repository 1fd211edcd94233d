package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "packing/internal/adapters/out/postgres"
	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts PostgreSQL and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests do not see each other's rows.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE episodes, episode_shipments, episode_placements").Error
	suite.Require().NoError(err)
}

// TearDownSuite stops the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.EpisodeRepository())
	suite.NotNil(uow2.EpisodeRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsEpisode() {
	ctx := context.Background()
	uow := suite.factory.Create()
	ep := createTestEpisode(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EpisodeRepository().Add(ctx, ep))

	suite.Require().NoError(ep.Step(episode.Action{ShipmentIndex: 0, X: 0, Y: 0}))
	suite.Require().NoError(uow.EpisodeRepository().Update(ctx, ep))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().EpisodeRepository().Get(ctx, ep.ID())
	suite.Require().NoError(err)
	suite.Equal(ep.Placements(), loaded.Placements())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEpisode() {
	ctx := context.Background()
	uow := suite.factory.Create()
	ep := createTestEpisode(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EpisodeRepository().Add(ctx, ep))

	_, err := uow.EpisodeRepository().Get(ctx, ep.ID())
	suite.Require().NoError(err, "Episode should be visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().EpisodeRepository().Get(ctx, ep.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	ep1 := createTestEpisode(suite)
	ep2 := createTestEpisode(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.EpisodeRepository().Add(ctx, ep1))
	suite.Require().NoError(uow2.EpisodeRepository().Add(ctx, ep2))

	_, err := uow1.EpisodeRepository().Get(ctx, ep2.ID())
	suite.Require().Error(err, "UOW1 should not see ep2")
	_, err = uow2.EpisodeRepository().Get(ctx, ep1.ID())
	suite.Require().Error(err, "UOW2 should not see ep1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	repo := suite.factory.Create().EpisodeRepository()
	_, err = repo.Get(ctx, ep1.ID())
	suite.Require().NoError(err)
	_, err = repo.Get(ctx, ep2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TracksWrittenAggregates() {
	ctx := context.Background()
	uow, ok := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	ep := createTestEpisode(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EpisodeRepository().Add(ctx, ep))
	suite.Require().NoError(uow.EpisodeRepository().Update(ctx, ep))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]kernel.UUID{ep.ID(), ep.ID()}, uow.TrackedIDs())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	ep := createTestEpisode(suite)

	suite.Require().NoError(uow.EpisodeRepository().Add(ctx, ep))

	loaded, err := suite.factory.Create().EpisodeRepository().Get(ctx, ep.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(ep.ID()))
}

func createTestEpisode(suite *UnitOfWorkIntegrationTestSuite) *episode.Episode {
	box, err := shipment.NewStandardShipment(2, 2, 10)
	suite.Require().NoError(err)

	ep, err := episode.NewEpisode(kernel.NewUUID(), episode.Config{
		ContainerLength: 4,
		ContainerHeight: 2,
		Shipments:       []shipment.Shipment{box, box},
	})
	suite.Require().NoError(err)
	return ep
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
