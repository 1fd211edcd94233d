package commands

import (
	"context"
)

// ResetEpisodeCommandHandler restarts a stored episode.
type ResetEpisodeCommandHandler struct {
	uowFactory EpisodeUoWFactory
}

// NewResetEpisodeCommandHandler creates a handler for episode resets.
func NewResetEpisodeCommandHandler(uowFactory EpisodeUoWFactory) ResetEpisodeCommandHandler {
	return ResetEpisodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the episode, resets it and stores it in one transaction.
func (h ResetEpisodeCommandHandler) Handle(ctx context.Context, cmd ResetEpisodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EpisodeRepository()

	ep, err := repo.Get(ctx, cmd.EpisodeID())
	if err != nil {
		return err
	}

	if err = ep.Reset(); err != nil {
		return err
	}

	if err = repo.Update(ctx, ep); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
