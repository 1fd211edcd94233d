package commands_test

import (
	"testing"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

// catalog returns a 2x2 (w=10) and a 1x1 (w=2) shipment.
func catalog(t *testing.T) []shipment.Shipment {
	t.Helper()
	big, err := shipment.NewStandardShipment(2, 2, 10)
	require.NoError(t, err)
	small, err := shipment.NewStandardShipment(1, 1, 2)
	require.NoError(t, err)
	return []shipment.Shipment{big, small}
}

// runningEpisode returns a fresh episode in a 4x2 container.
func runningEpisode(t *testing.T) *episode.Episode {
	t.Helper()
	ep, err := episode.NewEpisode(kernel.NewUUID(), episode.Config{
		ContainerLength: 4,
		ContainerHeight: 2,
		Shipments:       catalog(t),
	})
	require.NoError(t, err)
	return ep
}
