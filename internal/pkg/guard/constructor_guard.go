// Package guard provides a defensive construction pattern for commands,
// queries, and value objects. Embedding a ConstructorGuard lets a type detect
// whether it was built through its designated constructor or left as a zero
// value, so validation can reject uninitialized instances before they reach
// business logic.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value is invalid, so any struct that embeds
// a guard and is instantiated directly will fail Validate.
//
// Example:
//
//	type SubmitOrderCommand struct {
//	    tableID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSubmitOrderCommand(tableID string) SubmitOrderCommand {
//	    return SubmitOrderCommand{tableID: tableID, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owner was built through its constructor.
// Otherwise it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
