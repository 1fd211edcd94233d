package container_test

import (
	"math"
	"testing"

	"packing/internal/core/domain/model/container"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackedShipment(t *testing.T) {
	t.Run("should bind shipment to corner", func(t *testing.T) {
		s := newShipment(t, 3, 2, 5)

		p, err := container.NewPackedShipment(s, 1, 4)

		require.NoError(t, err)
		assert.Equal(t, s, p.Shipment())
		assert.Equal(t, 1, p.X())
		assert.Equal(t, 4, p.Y())
		assert.InDelta(t, 1.0, p.Position().X(), 1e-12)
		assert.Equal(t, container.Footprint{X0: 1, Y0: 4, X1: 4, Y1: 6}, p.Footprint())
	})

	t.Run("should reject corners whose far edge overflows", func(t *testing.T) {
		s := newShipment(t, 2, 3, 1)

		_, err := container.NewPackedShipment(s, math.MaxInt-1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = container.NewPackedShipment(s, 0, math.MaxInt-2)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept the largest representable corner", func(t *testing.T) {
		s := newShipment(t, 2, 3, 1)

		p, err := container.NewPackedShipment(s, math.MaxInt-2, math.MaxInt-3)

		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, p.Footprint().X1)
		assert.Equal(t, math.MaxInt, p.Footprint().Y1)
	})

	t.Run("should reject zero value shipment", func(t *testing.T) {
		_, err := container.NewPackedShipment(shipment.Shipment{}, 0, 0)
		require.ErrorIs(t, err, shipment.ErrShipmentIsNotConstructed)
	})
}

func TestPackedShipment_CenterOfGravity(t *testing.T) {
	p, err := container.NewPackedShipment(newShipment(t, 3, 2, 5), 1, 4)
	require.NoError(t, err)

	cog := p.CenterOfGravity()

	assert.InDelta(t, 2.5, cog.X(), 1e-12)
	assert.InDelta(t, 5.0, cog.Y(), 1e-12)
}

func TestFootprint_Overlaps(t *testing.T) {
	base := container.Footprint{X0: 0, Y0: 0, X1: 2, Y1: 2}

	tests := []struct {
		name     string
		other    container.Footprint
		overlaps bool
	}{
		{"same rectangle", base, true},
		{"contained", container.Footprint{X0: 1, Y0: 1, X1: 2, Y1: 2}, true},
		{"partial", container.Footprint{X0: 1, Y0: 1, X1: 3, Y1: 3}, true},
		{"right edge", container.Footprint{X0: 2, Y0: 0, X1: 3, Y1: 2}, false},
		{"top edge", container.Footprint{X0: 0, Y0: 2, X1: 2, Y1: 3}, false},
		{"corner", container.Footprint{X0: 2, Y0: 2, X1: 3, Y1: 3}, false},
		{"far away", container.Footprint{X0: 5, Y0: 5, X1: 6, Y1: 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestFootprint_Within(t *testing.T) {
	assert.True(t, container.Footprint{X0: 0, Y0: 0, X1: 5, Y1: 3}.Within(5, 3))
	assert.True(t, container.Footprint{X0: 4, Y0: 2, X1: 5, Y1: 3}.Within(5, 3))
	assert.False(t, container.Footprint{X0: 4, Y0: 0, X1: 6, Y1: 2}.Within(5, 3))
	assert.False(t, container.Footprint{X0: -1, Y0: 0, X1: 1, Y1: 1}.Within(5, 3))
	assert.False(t, container.Footprint{X0: 0, Y0: 2, X1: 1, Y1: 4}.Within(5, 3))
}
