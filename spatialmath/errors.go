package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrDegenerateBasis is returned when explicit box axes are not an orthonormal basis.
var ErrDegenerateBasis = errors.New("box axes must be mutually orthogonal unit vectors")

func newBadGeometryDimensionsError(dims r3.Vector) error {
	return errors.Errorf("box dimensions must be finite and non-negative, got (%v, %v, %v)", dims.X, dims.Y, dims.Z)
}

func newBadOrientationError(pitch, yaw float64) error {
	return errors.Errorf("box pitch and yaw must be finite, got pitch %v yaw %v", pitch, yaw)
}

func newRotationMatrixInputError(m []float64) error {
	return errors.Errorf("input slice has %d elements, need exactly 9", len(m))
}
