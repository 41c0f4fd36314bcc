package track

import (
	"errors"
	"fmt"
)

// ErrInvalidDivisions is returned when a build is requested with fewer
// than one division.
var ErrInvalidDivisions = errors.New("track: divisions must be >= 1")

// DegenerateCurveError is returned when the curve produces a zero-length
// or non-finite point or tangent at a sampled parameter. Continuing would
// inject NaNs into world-space vertices, so the build aborts.
type DegenerateCurveError struct {
	T float32
}

func (e *DegenerateCurveError) Error() string {
	return fmt.Sprintf("track: degenerate curve sample at t=%v", e.T)
}
