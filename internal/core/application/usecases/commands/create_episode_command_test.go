package commands_test

import (
	"testing"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateEpisodeCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	shipments := catalog(t)

	cmd, err := commands.NewCreateEpisodeCommand(id, 5, 3, shipments)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.EpisodeID())
	assert.Equal(t, 5, cmd.ContainerLength())
	assert.Equal(t, 3, cmd.ContainerHeight())
	assert.Equal(t, shipments, cmd.Shipments())
}

func TestNewCreateEpisodeCommand_InvalidEpisodeID(t *testing.T) {
	_, err := commands.NewCreateEpisodeCommand(kernel.UUID{}, 5, 3, catalog(t))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateEpisodeCommand_InvalidContainerSize(t *testing.T) {
	_, err := commands.NewCreateEpisodeCommand(kernel.NewUUID(), 0, 3, catalog(t))
	require.ErrorIs(t, err, commands.ErrContainerSizeIsInvalid)
}

func TestNewCreateEpisodeCommand_EmptyCatalog(t *testing.T) {
	_, err := commands.NewCreateEpisodeCommand(kernel.NewUUID(), 5, 3, nil)
	require.ErrorIs(t, err, commands.ErrShipmentsAreRequired)
}

func TestNewCreateEpisodeCommand_UnconstructedShipment(t *testing.T) {
	_, err := commands.NewCreateEpisodeCommand(kernel.NewUUID(), 5, 3, []shipment.Shipment{{}})
	require.ErrorIs(t, err, shipment.ErrShipmentIsNotConstructed)
}

func TestNewCreateEpisodeCommand_JoinsErrors(t *testing.T) {
	_, err := commands.NewCreateEpisodeCommand(kernel.UUID{}, -1, 3, nil)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, commands.ErrContainerSizeIsInvalid)
	require.ErrorIs(t, err, commands.ErrShipmentsAreRequired)
}
