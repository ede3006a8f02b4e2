// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// domain objects so that zero values can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A struct that embeds it and is
// created with a composite literal keeps the zero guard and fails Validate.
//
// Example usage:
//
//	var ErrAddLineItemCommandIsNotConstructed = errors.New("AddLineItemCommand must be created via NewAddLineItemCommand")
//
//	type AddLineItemCommand struct {
//	    sessionID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AddLineItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
