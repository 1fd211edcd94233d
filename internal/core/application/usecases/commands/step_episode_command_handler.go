package commands

import (
	"context"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/services"
)

// StepResult is what a driver receives after a step.
type StepResult struct {
	Observation episode.Observation
	Reward      float64
	Terminated  bool
}

// StepEpisodeCommandHandler applies one action to a stored episode and scores the result.
//
// Example:
//
//	handler := NewStepEpisodeCommandHandler(uowFactory, services.NewDefaultPlacementScorer())
//	cmd, _ := NewStepEpisodeCommand(id, 0, 2, 0)
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, episode.ErrEpisodeTerminated):
//	    // reset before stepping again
//	case err != nil:
//	    return err
//	}
//	fmt.Println(result.Reward, result.Terminated)
type StepEpisodeCommandHandler struct {
	uowFactory EpisodeUoWFactory
	scorer     services.PlacementScorer
}

// NewStepEpisodeCommandHandler creates a handler that rewards steps with scorer.
func NewStepEpisodeCommandHandler(
	uowFactory EpisodeUoWFactory,
	scorer services.PlacementScorer,
) StepEpisodeCommandHandler {
	return StepEpisodeCommandHandler{
		uowFactory: uowFactory,
		scorer:     scorer,
	}
}

// Handle loads the episode, steps it, scores the container and stores the new state.
// A rejected action leaves the stored episode untouched.
func (h StepEpisodeCommandHandler) Handle(ctx context.Context, cmd StepEpisodeCommand) (StepResult, error) {
	if err := cmd.Validate(); err != nil {
		return StepResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StepResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EpisodeRepository()

	ep, err := repo.Get(ctx, cmd.EpisodeID())
	if err != nil {
		return StepResult{}, err
	}

	if err = ep.Step(cmd.Action()); err != nil {
		return StepResult{}, err
	}

	reward, err := h.scorer.Score(ep.Container())
	if err != nil {
		return StepResult{}, err
	}

	if err = repo.Update(ctx, ep); err != nil {
		return StepResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StepResult{}, err
	}

	return StepResult{
		Observation: ep.Observation(),
		Reward:      reward,
		Terminated:  ep.Terminated(),
	}, nil
}
