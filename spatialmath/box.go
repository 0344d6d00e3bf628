package spatialmath

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/bettercombat/hitbox/utils"
)

// Tolerance used to validate explicit box bases.
const basisEpsilon = 1e-6

// World unit axes.
var (
	unitX = r3.Vector{X: 1}
	unitY = r3.Vector{Y: 1}
	unitZ = r3.Vector{Z: 1}
)

// OrientedBox is the configured state of an oriented bounding box: a center, a half size along
// each local axis and an orthonormal basis. axisZ is forward, axisY is up and axisX is
// axisZ x axisY. An OrientedBox is immutable; repositioning returns a new box. Queries are made
// against the DerivedBox returned by Derive.
type OrientedBox struct {
	center r3.Vector
	extent r3.Vector
	axisX  r3.Vector
	axisY  r3.Vector
	axisZ  r3.Vector
	label  string

	// pitch and yaw the basis was built from, if any. Kept so configs round trip.
	polar      bool
	pitch, yaw float64
}

// NewOrientedBox instantiates a box of full size dims around center, facing along the look vector
// of pitch and yaw (degrees, see FromPolar).
func NewOrientedBox(center, dims r3.Vector, pitch, yaw float64) (*OrientedBox, error) {
	// Negative dimensions not allowed. Zero dimensions are allowed and collapse the box.
	if dims.X < 0 || dims.Y < 0 || dims.Z < 0 || !utils.IsFinite(dims.X, dims.Y, dims.Z) {
		return nil, newBadGeometryDimensionsError(dims)
	}
	if !utils.IsFinite(pitch, yaw) {
		return nil, newBadOrientationError(pitch, yaw)
	}
	axisZ := FromPolar(pitch, yaw).Normalize()
	axisY := FromPolar(pitch+90, yaw).Mul(-1).Normalize()
	return &OrientedBox{
		center: center,
		extent: dims.Mul(0.5),
		axisX:  axisZ.Cross(axisY),
		axisY:  axisY,
		axisZ:  axisZ,
		polar:  true,
		pitch:  pitch,
		yaw:    yaw,
	}, nil
}

// NewOrientedBoxFromDims is NewOrientedBox with the size given as width (X), height (Y) and
// depth (Z).
func NewOrientedBoxFromDims(center r3.Vector, width, height, depth, pitch, yaw float64) (*OrientedBox, error) {
	return NewOrientedBox(center, r3.Vector{X: width, Y: height, Z: depth}, pitch, yaw)
}

// NewOrientedBoxFromAABB wraps an axis-aligned box. The result uses the world axes as its basis.
func NewOrientedBoxFromAABB(b AxisAlignedBox) *OrientedBox {
	return &OrientedBox{
		center: b.Center(),
		extent: b.Extent(),
		axisX:  unitX,
		axisY:  unitY,
		axisZ:  unitZ,
	}
}

// NewOrientedBoxFromAxes instantiates a box from a center, half sizes and an explicit basis. The
// axes must be mutually orthogonal unit vectors.
func NewOrientedBoxFromAxes(center, extent, axisX, axisY, axisZ r3.Vector) (*OrientedBox, error) {
	if extent.X < 0 || extent.Y < 0 || extent.Z < 0 || !utils.IsFinite(extent.X, extent.Y, extent.Z) {
		return nil, newBadGeometryDimensionsError(extent.Mul(2))
	}
	det := newRotationMatrixFromRows(axisX, axisY, axisZ).Determinant()
	if !utils.Float64AlmostEqual(math.Abs(det), 1, basisEpsilon) ||
		!utils.Float64AlmostEqual(axisX.Norm(), 1, basisEpsilon) ||
		!utils.Float64AlmostEqual(axisY.Norm(), 1, basisEpsilon) ||
		!utils.Float64AlmostEqual(axisZ.Norm(), 1, basisEpsilon) {
		return nil, ErrDegenerateBasis
	}
	return &OrientedBox{center: center, extent: extent, axisX: axisX, axisY: axisY, axisZ: axisZ}, nil
}

// OffsetForward returns a copy of the box moved distance along its forward (Z) axis.
func (b *OrientedBox) OffsetForward(distance float64) *OrientedBox {
	return b.Offset(b.axisZ.Mul(distance))
}

// Offset returns a copy of the box translated by offset.
func (b *OrientedBox) Offset(offset r3.Vector) *OrientedBox {
	moved := *b
	moved.center = b.center.Add(offset)
	return &moved
}

// WithLabel returns a copy of the box with the given label.
func (b *OrientedBox) WithLabel(label string) *OrientedBox {
	labeled := *b
	labeled.label = label
	return &labeled
}

// Center returns the world-space centroid of the box.
func (b *OrientedBox) Center() r3.Vector {
	return b.center
}

// Extent returns the half size of the box along its local axes.
func (b *OrientedBox) Extent() r3.Vector {
	return b.extent
}

// Axes returns the local X, Y and Z axes of the box.
func (b *OrientedBox) Axes() (x, y, z r3.Vector) {
	return b.axisX, b.axisY, b.axisZ
}

// Label returns the label of this box.
func (b *OrientedBox) Label() string {
	return b.label
}

// AlmostEqual checks whether two boxes have the same center, extent and basis.
func (b *OrientedBox) AlmostEqual(other *OrientedBox) bool {
	const eps = 1e-8
	return vectorAlmostEqual(b.center, other.center, eps) &&
		vectorAlmostEqual(b.extent, other.extent, eps) &&
		vectorAlmostEqual(b.axisX, other.axisX, eps) &&
		vectorAlmostEqual(b.axisY, other.axisY, eps) &&
		vectorAlmostEqual(b.axisZ, other.axisZ, eps)
}

// String returns a human readable string that represents the box.
func (b *OrientedBox) String() string {
	return fmt.Sprintf("Type: OBB | Center: X:%.2f, Y:%.2f, Z:%.2f | Dims: X:%.2f, Y:%.2f, Z:%.2f | Forward: X:%.2f, Y:%.2f, Z:%.2f",
		b.center.X, b.center.Y, b.center.Z, 2*b.extent.X, 2*b.extent.Y, 2*b.extent.Z, b.axisZ.X, b.axisZ.Y, b.axisZ.Z)
}

// MarshalJSON encodes the box as a BoxConfig.
func (b *OrientedBox) MarshalJSON() ([]byte, error) {
	config, err := NewBoxConfig(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// Derive computes the rotation matrix and corner vertices of the box. The result is a pure
// function of the box, so deriving twice gives identical output.
func (b *OrientedBox) Derive() *DerivedBox {
	d := &DerivedBox{
		box:          *b,
		rotation:     *newRotationMatrixFromRows(b.axisX, b.axisY, b.axisZ),
		orientationX: b.axisX.Mul(b.extent.X),
		orientationY: b.axisY.Mul(b.extent.Y),
		orientationZ: b.axisZ.Mul(b.extent.Z),
		derived:      true,
	}
	for i, s := range boxVertexSigns {
		d.vertices[i] = b.center.
			Add(d.orientationZ.Mul(s.z)).
			Add(d.orientationX.Mul(s.x)).
			Add(d.orientationY.Mul(s.y))
	}
	return d
}

func vectorAlmostEqual(a, b r3.Vector, eps float64) bool {
	return utils.Float64AlmostEqual(a.X, b.X, eps) &&
		utils.Float64AlmostEqual(a.Y, b.Y, eps) &&
		utils.Float64AlmostEqual(a.Z, b.Z, eps)
}
