package internalerr

import "errors"

// Sentinel errors for common cases
var (
	// ErrBatchTooShort means a batch failed a size precondition, such as
	// the trend detector's 20-article minimum.
	ErrBatchTooShort = errors.New("batch too short")

	// ErrEmptyInput means a caller passed an empty term or keyword list
	// where at least one element is required.
	ErrEmptyInput = errors.New("empty input")

	// ErrMissingAsset means a required external asset (mask image, font
	// file) is absent. Not retryable.
	ErrMissingAsset = errors.New("missing asset")

	// ErrInvalidConfig means a configuration file could not be loaded or
	// failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrModelUnavailable means an inference backend could not be reached.
	ErrModelUnavailable = errors.New("model unavailable")
)
