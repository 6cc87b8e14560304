// ABOUTME: Error taxonomy for the embedding subsystem
// ABOUTME: Sentinel errors matched with errors.Is after %w wrapping
package models

import "errors"

var (
	// ErrStorage means the persistence layer is unavailable or a write/read
	// failed. The operation aborted with no partial writes.
	ErrStorage = errors.New("storage error")

	// ErrEncoding means the encoder failed even past its deterministic
	// fallback. This should be unreachable and signals a defect.
	ErrEncoding = errors.New("encoding error")

	// ErrDimensionMismatch means a vector's length disagrees with the store's
	// stamped dimension, usually after an encoder/model change without a
	// store rebuild.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrValidation means the request itself is malformed.
	ErrValidation = errors.New("validation error")
)
