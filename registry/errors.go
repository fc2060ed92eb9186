package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrNotFound indicates that no resident matrix matched the request.
	ErrNotFound = errors.New("registry: matrix not found")

	// ErrDuplicateName indicates an insert would create a second live matrix
	// with the same name (only when unique names are enforced).
	ErrDuplicateName = errors.New("registry: duplicate live name")

	// ErrAlreadyResident indicates the exact same matrix already sits in another slot.
	ErrAlreadyResident = errors.New("registry: matrix already resident")

	// ErrSlotOutOfRange indicates a slot index outside [0, capacity).
	ErrSlotOutOfRange = errors.New("registry: slot out of range")

	// ErrInvalidCapacity indicates a capacity below one.
	ErrInvalidCapacity = errors.New("registry: capacity must be >= 1")

	// ErrReadOnly indicates a mutating call on a read-only transaction.
	ErrReadOnly = errors.New("registry: read-only transaction")
)
