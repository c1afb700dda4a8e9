package embed

import "errors"

// Sentinel errors returned by the embed package. Always compare with
// errors.Is; errors wrapping I/O or YAML failures carry these sentinels
// as their prefix via fmt.Errorf("%w: ...").
var (
	// ErrBadShape - an Observations dimension is < 1.
	ErrBadShape = errors.New("embed: observation dimensions must be >= 1")
	// ErrBadIndex - a subject/task/encoding/edge index is out of range.
	ErrBadIndex = errors.New("embed: index out of range")
	// ErrBadSlice - a slice assignment does not match the tensor's
	// (encodings x edges) shape.
	ErrBadSlice = errors.New("embed: slice shape does not match tensor")
	// ErrBadCSV - a CSV cell failed to parse as a float or rows are ragged.
	ErrBadCSV = errors.New("embed: malformed observation CSV")
	// ErrConfigRead - the YAML configuration could not be read or parsed.
	ErrConfigRead = errors.New("embed: cannot read configuration")
	// ErrNotHyperbolic - Poincare projection requested for a Euclidean kind.
	ErrNotHyperbolic = errors.New("embed: model kind is not hyperbolic")
	// ErrTraceLength - a sampled trace length differs from the reference.
	ErrTraceLength = errors.New("embed: trace length does not match reference")
)
