package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// no specific validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes entities built through their designated
// constructor from bare zero values. Embedding a guard and checking it in
// Validate keeps domain objects from being used in an unconstructed state.
//
// Example:
//
//	type Package struct {
//	    id    ID
//	    guard ConstructorGuard
//	}
//
//	func NewPackage(id ID) (*Package, error) {
//	    ...
//	    return &Package{id: id, guard: NewConstructorGuard()}, nil
//	}
//
//	func (p *Package) Validate() error {
//	    return p.guard.Validate(ErrPackageIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed object; otherwise it returns
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
