package catalog

import "errors"

var (
	// ErrInvalidCatalog is returned when a descriptor list cannot form a catalog.
	ErrInvalidCatalog = errors.New("catalog: invalid")

	// ErrDuplicateDevice is returned when two descriptors share a device id.
	ErrDuplicateDevice = errors.New("catalog: duplicate device id")
)
