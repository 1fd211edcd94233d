package commands

import (
	"context"

	"packing/internal/core/domain/model/episode"
)

// CreateEpisodeCommandHandler persists a fresh Running episode.
//
// Example:
//
//	handler := NewCreateEpisodeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("episode creation failed: %w", err)
//	}
type CreateEpisodeCommandHandler struct {
	uowFactory EpisodeUoWFactory
}

// NewCreateEpisodeCommandHandler creates a handler for episode creation.
func NewCreateEpisodeCommandHandler(uowFactory EpisodeUoWFactory) CreateEpisodeCommandHandler {
	return CreateEpisodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the episode and stores it in one transaction.
func (h CreateEpisodeCommandHandler) Handle(ctx context.Context, cmd CreateEpisodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ep, err := episode.NewEpisode(cmd.EpisodeID(), episode.Config{
		ContainerLength: cmd.ContainerLength(),
		ContainerHeight: cmd.ContainerHeight(),
		Shipments:       cmd.Shipments(),
	})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EpisodeRepository().Add(ctx, ep); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
