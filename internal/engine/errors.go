package engine

import "errors"

// Contract violations. Expected data conditions (a product not fitting,
// overhang exceeded) are never errors; they come back as result values.
var (
	// ErrInvalidGeometry reports a non-positive dimension, compression
	// factor outside [0,1), or a wall thickness that leaves no interior.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrEmptyCatalog reports a search invoked with no products.
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrEmptySearchSpace reports a sweep range that generates no
	// candidates at all (before any fit evaluation).
	ErrEmptySearchSpace = errors.New("empty search space")
)
