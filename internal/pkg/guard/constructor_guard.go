// Package guard holds ConstructorGuard, which lets value objects, entities and
// commands detect that they were built through their constructor rather than
// as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set only by the struct's constructor.
// A zero value fails Validate, which catches `var x Load` or `Offer{}` literals
// slipping past validation.
//
//	type SubmitOfferCommand struct {
//	    loadID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c SubmitOfferCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
