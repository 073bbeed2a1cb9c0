package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, entities and commands are only
// created through their designated constructor functions. A zero-value struct
// fails validation, so improperly initialized objects are caught before any
// operation runs on them.
//
// Embed a ConstructorGuard in a struct and set it via NewConstructorGuard in
// the constructor:
//
//	type RequestBypassCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewRequestBypassCommand(orderID kernel.UUID) (RequestBypassCommand, error) {
//	    ...
//	    return RequestBypassCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RequestBypassCommand) Validate() error {
//	    return c.guard.Validate(ErrRequestBypassCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// objects it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
