// Package guard provides ConstructorGuard, a marker that distinguishes values built
// through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, commands and queries that must only
// be created through their constructor function. Its zero value is "not constructed".
//
// Example usage:
//
//	var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment")
//
//	type Shipment struct {
//	    length int
//	    guard  guard.ConstructorGuard
//	}
//
//	func (s Shipment) Validate() error {
//	    return s.guard.Validate(ErrShipmentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
