package commands_test

import (
	"context"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEpisodeRepository struct{ mock.Mock }

func (m *MockEpisodeRepository) Add(ctx context.Context, e *episode.Episode) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEpisodeRepository) Update(ctx context.Context, e *episode.Episode) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEpisodeRepository) Get(ctx context.Context, id kernel.UUID) (*episode.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*episode.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetAllRunning(ctx context.Context) ([]*episode.Episode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*episode.Episode), args.Error(1)
}

type MockEpisodeUoW struct{ mock.Mock }

func (m *MockEpisodeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEpisodeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEpisodeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEpisodeUoW) EpisodeRepository() ports.EpisodeRepository {
	args := m.Called()
	return args.Get(0).(ports.EpisodeRepository)
}

type MockEpisodeUoWFactory struct{ mock.Mock }

func (m *MockEpisodeUoWFactory) Create() commands.EpisodeUoW {
	args := m.Called()
	return args.Get(0).(commands.EpisodeUoW)
}
