package bench

import "errors"

var (
	// ErrMalformedInput signals an input stream that does not follow the
	// benchmark format.
	ErrMalformedInput = errors.New("bench: malformed input")
	// ErrInvalidConfig signals unusable command line settings.
	ErrInvalidConfig = errors.New("bench: invalid configuration")
)
