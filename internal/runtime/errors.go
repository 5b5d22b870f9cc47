package runtime

import (
	"errors"
	"fmt"
)

// ErrMethodAreaInitialised is returned by InitMethodArea on every call after
// the first; the method area is a process-wide singleton (spec 5/9:
// "Model as global state with init-once semantics").
var ErrMethodAreaInitialised = errors.New("runtime: method area already initialised")

// ErrClassNotFound is returned when a class resolver can't locate a named
// class, wrapping whatever the resolver reported, per spec 6: "the core
// assumes this succeeds or returns a ClassNotFound-style error to be
// surfaced verbatim."
var ErrClassNotFound = errors.New("runtime: class not found")

// MethodNotFoundError names the class and signature that couldn't be
// resolved in Class.GetMethod.
type MethodNotFoundError struct {
	ClassName string
	Signature string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("runtime: method not found: %s.%s", e.ClassName, e.Signature)
}

// ErrMissingCodeContext is returned when execution is attempted against a
// Method with no Context (native or abstract methods).
var ErrMissingCodeContext = errors.New("runtime: method has no code context")

// InvalidObjectAccessError carries the class/field pair involved in a
// failed field access, per spec 7's InvalidObjectAccess{class, field}.
type InvalidObjectAccessError struct {
	Class string
	Field string
}

func (e *InvalidObjectAccessError) Error() string {
	return fmt.Sprintf("runtime: invalid object access: %s.%s", e.Class, e.Field)
}

// InvalidArrayAccessError carries the offending index.
type InvalidArrayAccessError struct {
	Index int32
}

func (e *InvalidArrayAccessError) Error() string {
	return fmt.Sprintf("runtime: invalid array access at index %d", e.Index)
}

// InvalidArrayEntrySizeError carries the offending element size.
type InvalidArrayEntrySizeError struct {
	Size int
}

func (e *InvalidArrayEntrySizeError) Error() string {
	return fmt.Sprintf("runtime: invalid array entry size %d", e.Size)
}
