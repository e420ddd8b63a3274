// Package guard provides a tiny marker type that detects objects created by
// bypassing their constructor. Embedding a ConstructorGuard in a struct and
// setting it via NewConstructorGuard makes the zero value distinguishable from
// a properly constructed instance.
package guard

import "errors"

// ErrObjectIsNotConstructed is returned by Validate when no custom error is supplied
// and the guard belongs to a zero-value (non-constructed) object.
var ErrObjectIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value reports the object as not constructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was set via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrObjectIsNotConstructed when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrObjectIsNotConstructed
}
