package game

import "errors"

var (
	// ErrInvalidDimensions reports construction parameters outside the
	// supported board bounds.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrMalformedSnapshot reports a snapshot that is empty or cannot be
	// parsed into the expected fields.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
