package kernel

import (
	"fmt"

	"packing/internal/pkg/errs"
)

// ErrDivisionByZero is returned by Position.Div when the divisor is zero.
var ErrDivisionByZero = errs.NewValueIsInvalidErrorWithCause(
	"divisor", fmt.Errorf("division of a position by zero is undefined"))

// Position is a point in the container plane.
// Placement coordinates are integral, but centers of gravity are not, so both
// components are float64. Position is an immutable value: every arithmetic
// method returns a new value.
//
// Unlike the identifiers in this package, the zero value is meaningful: it is
// the container origin.
//
// Example:
//
//	corner := kernel.NewPosition(2, 0)
//	center := corner.Add(kernel.NewPosition(1.5, 1)) // Position(3.5,1)
//	weighted := center.Mul(40)                        // Position(140,40)
//	mean, err := weighted.Div(40)                     // Position(3.5,1), nil
type Position struct {
	x float64
	y float64
}

// NewPosition creates a Position from its coordinates.
func NewPosition(x, y float64) Position {
	return Position{x: x, y: y}
}

// X returns the horizontal coordinate.
func (p Position) X() float64 {
	return p.x
}

// Y returns the vertical coordinate.
func (p Position) Y() float64 {
	return p.y
}

// Add returns the component-wise sum of both positions.
func (p Position) Add(other Position) Position {
	return Position{x: p.x + other.x, y: p.y + other.y}
}

// Mul scales both components by k.
func (p Position) Mul(k float64) Position {
	return Position{x: p.x * k, y: p.y * k}
}

// Div divides both components by k.
//
// Returns:
//   - Position: the scaled position
//   - error: ErrDivisionByZero when k is zero
func (p Position) Div(k float64) (Position, error) {
	if k == 0 {
		return Position{}, ErrDivisionByZero
	}
	return Position{x: p.x / k, y: p.y / k}, nil
}

// Equal compares both components exactly.
func (p Position) Equal(other Position) bool {
	return p == other
}

// String implements fmt.Stringer, e.g. "Position(3.5,1)".
func (p Position) String() string {
	return fmt.Sprintf("Position(%g,%g)", p.x, p.y)
}
