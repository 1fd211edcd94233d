package container

import (
	"fmt"
	"math"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/errs"
)

// Footprint is the half-open rectangle [X0, X1) × [Y0, Y1) covered by a packed shipment.
type Footprint struct {
	X0, Y0 int
	X1, Y1 int
}

// Overlaps reports whether both rectangles share at least one cell.
// Rectangles that only touch along an edge do not overlap.
func (f Footprint) Overlaps(other Footprint) bool {
	return !(f.X1 <= other.X0 || other.X1 <= f.X0 || f.Y1 <= other.Y0 || other.Y1 <= f.Y0)
}

// Within reports whether the rectangle lies inside [0, length) × [0, height).
func (f Footprint) Within(length, height int) bool {
	return f.X0 >= 0 && f.Y0 >= 0 && f.X1 <= length && f.Y1 <= height
}

// PackedShipment pairs a shipment with the lower-left corner it was packed at.
// It is an immutable value.
type PackedShipment struct {
	shipment shipment.Shipment
	x        int
	y        int
}

// NewPackedShipment binds s to the corner (x, y). Whether the corner fits a
// container is decided by Container.Valid; only corners whose far edge is not
// representable as an int are rejected.
func NewPackedShipment(s shipment.Shipment, x, y int) (PackedShipment, error) {
	if err := s.Validate(); err != nil {
		return PackedShipment{}, err
	}
	if x > math.MaxInt-s.Length() {
		return PackedShipment{}, errs.NewValueIsOutOfRangeError("x", x, math.MinInt, math.MaxInt-s.Length())
	}
	if y > math.MaxInt-s.Height() {
		return PackedShipment{}, errs.NewValueIsOutOfRangeError("y", y, math.MinInt, math.MaxInt-s.Height())
	}

	return PackedShipment{shipment: s, x: x, y: y}, nil
}

// Shipment returns the packed shipment.
func (p PackedShipment) Shipment() shipment.Shipment {
	return p.shipment
}

// X returns the x coordinate of the lower-left corner.
func (p PackedShipment) X() int {
	return p.x
}

// Y returns the y coordinate of the lower-left corner.
func (p PackedShipment) Y() int {
	return p.y
}

// Position returns the lower-left corner as a Position.
func (p PackedShipment) Position() kernel.Position {
	return kernel.NewPosition(float64(p.x), float64(p.y))
}

// Footprint returns the rectangle covered by the shipment.
func (p PackedShipment) Footprint() Footprint {
	return Footprint{
		X0: p.x,
		Y0: p.y,
		X1: p.x + p.shipment.Length(),
		Y1: p.y + p.shipment.Height(),
	}
}

// CenterOfGravity returns the centroid of the footprint: position + (length/2, height/2).
func (p PackedShipment) CenterOfGravity() kernel.Position {
	half := kernel.NewPosition(float64(p.shipment.Length())/2, float64(p.shipment.Height())/2)
	return p.Position().Add(half)
}

func (p PackedShipment) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.shipment, p.x, p.y)
}
