package geograph

import "errors"

// Sentinel errors for geograph operations.
var (
	// ErrInvalidCoordinate indicates a lat/lon outside [-90,90]/[-180,180].
	ErrInvalidCoordinate = errors.New("geograph: coordinate out of range")

	// ErrMismatchedTable indicates NodeTable and Graph sizes disagree.
	ErrMismatchedTable = errors.New("geograph: node table size does not match graph size")

	// ErrNoCandidates indicates endpoint snapping found no existing node
	// to graft a synthetic endpoint onto (only possible on an empty
	// graph).
	ErrNoCandidates = errors.New("geograph: no candidate nodes to snap onto")

	// ErrUnknownAlgorithm indicates an Algorithm value this package does
	// not recognize.
	ErrUnknownAlgorithm = errors.New("geograph: unknown algorithm")

	// ErrUnknownNodeAdditionType indicates a NodeAdditionType this
	// package does not recognize.
	ErrUnknownNodeAdditionType = errors.New("geograph: unknown node addition type")
)
