package spectral

import "errors"

// Sentinel errors returned by spectral operations.
var (
	// ErrInvalidSize is returned when a requested size is not positive, or
	// when the transform requires a power of two and the size is not one.
	ErrInvalidSize = errors.New("spectral: size must be a positive power of two")

	// ErrEmptySignal is returned when a nil or empty signal is passed to the
	// transform.
	ErrEmptySignal = errors.New("spectral: empty signal")
)
