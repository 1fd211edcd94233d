package shipment

import (
	"errors"
	"fmt"

	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when using a zero-value Shipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is an immutable rectangular item. In this two-dimensional model the
// "volume" of a shipment is its footprint area.
//
// Example:
//
//	pallet, err := shipment.NewShipment(2, 1, 40, true, false, "pallet-7")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pallet.Volume()) // 2
type Shipment struct { //nolint:recvcheck //using for validation
	length     int
	height     int
	weight     int
	stackable  bool
	rotatable  bool
	identifier string

	guard guard.ConstructorGuard
}

// NewShipment creates a Shipment.
//
// Parameters:
//   - length: extent along x (must be > 0)
//   - height: extent along y (must be > 0)
//   - weight: must be > 0
//   - stackable, rotatable: placement flags
//   - identifier: optional display name, may be empty
//
// Returns:
//   - Shipment: the value object
//   - error: every violated rule, joined
func NewShipment(length, height, weight int, stackable, rotatable bool, identifier string) (Shipment, error) {
	s := Shipment{
		stackable:  stackable,
		rotatable:  rotatable,
		identifier: identifier,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setLength(length), s.setHeight(height), s.setWeight(weight)); err != nil {
		return Shipment{}, err
	}

	return s, nil
}

// NewStandardShipment creates a stackable, non-rotatable Shipment without an identifier.
func NewStandardShipment(length, height, weight int) (Shipment, error) {
	return NewShipment(length, height, weight, true, false, "")
}

// Validate checks that the Shipment was built by a constructor.
func (s Shipment) Validate() error {
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// Length returns the extent along x.
func (s Shipment) Length() int {
	return s.length
}

// Height returns the extent along y.
func (s Shipment) Height() int {
	return s.height
}

// Weight returns the weight of the shipment.
func (s Shipment) Weight() int {
	return s.weight
}

// Stackable reports whether other shipments may rest on this one.
func (s Shipment) Stackable() bool {
	return s.stackable
}

// Rotatable reports whether the shipment may be turned by 90 degrees.
func (s Shipment) Rotatable() bool {
	return s.rotatable
}

// Identifier returns the display name, or "" when none was given.
func (s Shipment) Identifier() string {
	return s.identifier
}

// Volume returns length × height.
func (s Shipment) Volume() int {
	return s.length * s.height
}

// String implements fmt.Stringer, e.g. "Shipment(pallet-7 2x1 w=40)".
func (s Shipment) String() string {
	if s.identifier == "" {
		return fmt.Sprintf("Shipment(%dx%d w=%d)", s.length, s.height, s.weight)
	}
	return fmt.Sprintf("Shipment(%s %dx%d w=%d)", s.identifier, s.length, s.height, s.weight)
}

func (s *Shipment) setLength(length int) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("length", fmt.Errorf("%d is not greater than 0", length))
	}

	s.length = length
	return nil
}

func (s *Shipment) setHeight(height int) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("height", fmt.Errorf("%d is not greater than 0", height))
	}

	s.height = height
	return nil
}

func (s *Shipment) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", weight))
	}

	s.weight = weight
	return nil
}
