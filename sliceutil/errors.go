package sliceutil

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument is reported when a required function or sequence is nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrInvalidTransformResult is reported by MapStrict when a transform yields nil.
	ErrInvalidTransformResult = errors.New("transform returned nil")
)

// nilArgument builds the error used for a nil function passed to op.
// The same value is returned by the Try variants and panicked by the plain ones.
func nilArgument(op string) error {
	return NilArgumentError("sliceutil", op)
}

// NilArgumentError is exported for sibling packages that share the error taxonomy.
func NilArgumentError(pkg, op string) error {
	return fmt.Errorf("%s.%s: %w", pkg, op, ErrNilArgument)
}

// InvalidTransformResultError reports a nil transform result at index.
func InvalidTransformResultError(pkg, op string, index int) error {
	return fmt.Errorf("%s.%s: element %d: %w", pkg, op, index, ErrInvalidTransformResult)
}
