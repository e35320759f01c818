package core

import "errors"

// Common errors.
var (
	// ErrCorruptImport is returned when an imported archive cannot be decoded.
	// No collection is modified in that case.
	ErrCorruptImport = errors.New("archive is corrupt or invalid")
)
