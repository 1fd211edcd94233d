package commands

import (
	"errors"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrStepEpisodeCommandIsNotConstructed = errors.New(
	"StepEpisodeCommand must be created via NewStepEpisodeCommand constructor",
)

// StepEpisodeCommand asks to pack one catalog shipment of an episode at (x, y).
// Range checks on the index and the coordinates belong to the episode itself,
// because only it knows the catalog size and container dimensions.
type StepEpisodeCommand struct { //nolint:recvcheck //using for validation
	episodeID kernel.UUID
	action    episode.Action

	guard guard.ConstructorGuard
}

// NewStepEpisodeCommand creates a step command for the given episode.
func NewStepEpisodeCommand(episodeID kernel.UUID, shipmentIndex, x, y int) (StepEpisodeCommand, error) {
	command := StepEpisodeCommand{
		action: episode.Action{ShipmentIndex: shipmentIndex, X: x, Y: y},
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setEpisodeID(episodeID); err != nil {
		return StepEpisodeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StepEpisodeCommand) Validate() error {
	return c.guard.Validate(ErrStepEpisodeCommandIsNotConstructed)
}

// EpisodeID returns the episode to step.
func (c StepEpisodeCommand) EpisodeID() kernel.UUID {
	return c.episodeID
}

// Action returns the requested placement.
func (c StepEpisodeCommand) Action() episode.Action {
	return c.action
}

func (c *StepEpisodeCommand) setEpisodeID(episodeID kernel.UUID) error {
	if err := episodeID.Validate(); err != nil {
		return err
	}

	c.episodeID = episodeID
	return nil
}
