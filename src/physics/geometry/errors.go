package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when points that must share a
	// dimension do not.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")
	ErrArity             = errors.New("geometry: wrong number of points")
	ErrUnknownShape      = errors.New("geometry: undefined shape")
)

func dimensionError(want, got int) error {
	return fmt.Errorf("%w: want %d coordinates, got %d", ErrDimensionMismatch, want, got)
}

// CheckDims reports an error if any of pts does not have exactly dim
// coordinates.
func CheckDims(dim int, pts ...Point) error {
	for _, p := range pts {
		if len(p) != dim {
			return dimensionError(dim, len(p))
		}
	}
	return nil
}
