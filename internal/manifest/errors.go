package manifest

import "errors"

// Sentinel errors for manifest operations.
var (
	// ErrInvalidRole indicates a role that is neither manifest nor skip.
	ErrInvalidRole = errors.New("invalid role")
	// ErrNotReadable indicates a source file that does not exist or cannot be read.
	ErrNotReadable = errors.New("file not readable")
	// ErrMalformedInput indicates input that is not a proper line sequence.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidPattern indicates a skip mask that does not compile as a regexp.
	ErrInvalidPattern = errors.New("invalid skip pattern")
)
