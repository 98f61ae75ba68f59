package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimensions indicates NewGridGraph was given a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("gridgraph: width and height must be positive")

	// ErrOutOfBounds indicates a cell coordinate outside [0,X)×[0,Y).
	ErrOutOfBounds = errors.New("gridgraph: cell coordinates out of grid bounds")

	// ErrBlockedCell indicates a query's origin or destination is a
	// blocked cell.
	ErrBlockedCell = errors.New("gridgraph: cell is blocked")
)
