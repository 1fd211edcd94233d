package commands

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/guard"
)

var (
	ErrCreateEpisodeCommandIsNotConstructed = errors.New(
		"CreateEpisodeCommand must be created via NewCreateEpisodeCommand constructor",
	)
	ErrContainerSizeIsInvalid = errors.New("container length and height must be greater than 0")
	ErrShipmentsAreRequired   = errors.New("at least one shipment is required")
)

// CreateEpisodeCommand represents a request to start a packing episode.
// Carries the container size and the shipment catalog.
//
// Example:
//
//	box, _ := shipment.NewStandardShipment(2, 2, 10)
//	cmd, err := NewCreateEpisodeCommand(kernel.NewUUID(), 5, 3, []shipment.Shipment{box})
//	if err != nil {
//	    return fmt.Errorf("invalid episode data: %w", err)
//	}
//
//	handler := NewCreateEpisodeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create episode: %w", err)
//	}
type CreateEpisodeCommand struct { //nolint:recvcheck //using for validation
	episodeID       kernel.UUID
	containerLength int
	containerHeight int
	shipments       []shipment.Shipment

	guard guard.ConstructorGuard
}

// NewCreateEpisodeCommand creates a command to register a new episode.
// Validates the identifier, that both container dimensions are positive and
// that the catalog holds at least one constructed shipment.
func NewCreateEpisodeCommand(
	episodeID kernel.UUID,
	containerLength int,
	containerHeight int,
	shipments []shipment.Shipment,
) (CreateEpisodeCommand, error) {
	command := CreateEpisodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEpisodeID(episodeID),
		command.setContainerSize(containerLength, containerHeight),
		command.setShipments(shipments),
	); err != nil {
		return CreateEpisodeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEpisodeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEpisodeCommandIsNotConstructed)
}

// EpisodeID returns the identifier of the episode to create.
func (c CreateEpisodeCommand) EpisodeID() kernel.UUID {
	return c.episodeID
}

// ContainerLength returns the container extent along x.
func (c CreateEpisodeCommand) ContainerLength() int {
	return c.containerLength
}

// ContainerHeight returns the container extent along y.
func (c CreateEpisodeCommand) ContainerHeight() int {
	return c.containerHeight
}

// Shipments returns a copy of the shipment catalog.
func (c CreateEpisodeCommand) Shipments() []shipment.Shipment {
	return append([]shipment.Shipment(nil), c.shipments...)
}

func (c *CreateEpisodeCommand) setEpisodeID(episodeID kernel.UUID) error {
	if err := episodeID.Validate(); err != nil {
		return err
	}

	c.episodeID = episodeID
	return nil
}

func (c *CreateEpisodeCommand) setContainerSize(length, height int) error {
	if length <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrContainerSizeIsInvalid, length, height)
	}

	c.containerLength = length
	c.containerHeight = height
	return nil
}

func (c *CreateEpisodeCommand) setShipments(shipments []shipment.Shipment) error {
	if len(shipments) == 0 {
		return ErrShipmentsAreRequired
	}

	for i, s := range shipments {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("shipment %d: %w", i, err)
		}
	}

	c.shipments = append([]shipment.Shipment(nil), shipments...)
	return nil
}
