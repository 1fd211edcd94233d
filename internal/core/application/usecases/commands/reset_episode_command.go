package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrResetEpisodeCommandIsNotConstructed = errors.New(
	"ResetEpisodeCommand must be created via NewResetEpisodeCommand constructor",
)

// ResetEpisodeCommand empties the container of an episode and makes its whole
// catalog available again.
type ResetEpisodeCommand struct { //nolint:recvcheck //using for validation
	episodeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetEpisodeCommand creates a reset command for the given episode.
func NewResetEpisodeCommand(episodeID kernel.UUID) (ResetEpisodeCommand, error) {
	command := ResetEpisodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEpisodeID(episodeID); err != nil {
		return ResetEpisodeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetEpisodeCommand) Validate() error {
	return c.guard.Validate(ErrResetEpisodeCommandIsNotConstructed)
}

// EpisodeID returns the episode to reset.
func (c ResetEpisodeCommand) EpisodeID() kernel.UUID {
	return c.episodeID
}

func (c *ResetEpisodeCommand) setEpisodeID(episodeID kernel.UUID) error {
	if err := episodeID.Validate(); err != nil {
		return err
	}

	c.episodeID = episodeID
	return nil
}
