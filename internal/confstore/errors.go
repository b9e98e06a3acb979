package confstore

import "errors"

var (
	// ErrNotFound is returned when a name is absent across the full
	// resolution order, or absent from the source a removal targets.
	ErrNotFound = errors.New("config entry not found")

	// ErrTypeMismatch is returned when a raw value cannot decode as the
	// requested type, including integers out of range for the target
	// width.
	ErrTypeMismatch = errors.New("config value type mismatch")

	// ErrInvalidEncoding is returned when a value is not valid UTF-8
	// and text was requested.
	ErrInvalidEncoding = errors.New("config value is not valid utf-8")

	// ErrNoWritableSource is returned when a write is attempted on a
	// store with zero sources.
	ErrNoWritableSource = errors.New("no writable config source")

	// ErrSourceExists is returned by AddSource when a source with the
	// same path and level is already present and force is false.
	ErrSourceExists = errors.New("config source already present")

	// ErrIteratorActive is returned by mutating operations while an
	// entry iterator over the store is still open.
	ErrIteratorActive = errors.New("config store has an active iterator")
)
