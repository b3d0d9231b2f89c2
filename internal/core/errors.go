package core

import "errors"

var (
	// ErrInvalidInput reports a non-finite coordinate, angle or time delta, or
	// a malformed construction argument. It is a caller error and is never
	// coerced into a usable value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateGeometry reports an axis-aligned ray angle whose slope is
	// undefined for one of the two grid-line searches.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
