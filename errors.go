package lazyuuid

import "errors"

var (
	// ErrInvalidLength indicates that a byte slice is not exactly 16 bytes long
	ErrInvalidLength = errors.New("lazyuuid: invalid UUID length (expected 16 bytes)")

	// ErrTypeMismatch indicates that a non-textual value was given where text was required
	ErrTypeMismatch = errors.New("lazyuuid: argument is not text")

	// ErrInvalidFormat indicates that text did not match the UUID grammar.
	// Parse reports this as a false ok instead; the error is only returned
	// from interfaces that require one.
	ErrInvalidFormat = errors.New("lazyuuid: invalid UUID format")
)
