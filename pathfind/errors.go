package pathfind

import "errors"

// Sentinel errors returned by pathfind solvers.
var (
	// ErrInvalidNode indicates origin or destination is out of [0, N).
	ErrInvalidNode = errors.New("pathfind: node index out of range")

	// ErrUnreachableDestination indicates the queue emptied before
	// reaching destination.
	ErrUnreachableDestination = errors.New("pathfind: destination unreachable")

	// ErrCorruptState indicates path reconstruction walked off the
	// predecessor vector before reaching origin. This should never
	// surface on a well-formed predecessor vector produced by this
	// package; it exists as a guard against misuse of a
	// SpanningTreeResult computed elsewhere.
	ErrCorruptState = errors.New("pathfind: corrupt predecessor state")
)
