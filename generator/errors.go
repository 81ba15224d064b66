package generator

import "github.com/notargets/fluidq/generator/generr"

// ErrorKind classifies why a generator operation failed. It is an alias of
// generr.Kind so callers never need to import the internal generr package
// themselves.
type ErrorKind = generr.Kind

const (
	ShapeMismatch   = generr.ShapeMismatch
	OutOfRange      = generr.OutOfRange
	InvalidBoundary = generr.InvalidBoundary
	Unsupported     = generr.Unsupported
	Domain          = generr.Domain
)

// Error is the single error type returned by every constructor and kernel
// entry point in this package. Its Kind plus the attached indices/sizes
// let a caller distinguish failure modes with errors.As, without parsing
// a message string.
type Error = generr.Error
