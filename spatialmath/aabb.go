package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// AxisAlignedBox is a box whose faces are parallel to the world axes, described by its minimum
// and maximum corners.
type AxisAlignedBox struct {
	Min r3.Vector `json:"min"`
	Max r3.Vector `json:"max"`
}

// NewAxisAlignedBox returns the box spanned by two opposite corners given in any order.
func NewAxisAlignedBox(a, b r3.Vector) AxisAlignedBox {
	return AxisAlignedBox{
		Min: r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		Max: r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// NewAxisAlignedBoxFromCenter returns the box of the given full size around center.
func NewAxisAlignedBoxFromCenter(center, dims r3.Vector) AxisAlignedBox {
	half := dims.Abs().Mul(0.5)
	return AxisAlignedBox{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b AxisAlignedBox) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Dims returns the absolute size of the box along each axis.
func (b AxisAlignedBox) Dims() r3.Vector {
	return b.Max.Sub(b.Min).Abs()
}

// Extent returns the half size of the box along each axis.
func (b AxisAlignedBox) Extent() r3.Vector {
	return b.Dims().Mul(0.5)
}

// Offset returns the box translated by v.
func (b AxisAlignedBox) Offset(v r3.Vector) AxisAlignedBox {
	return AxisAlignedBox{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Expand returns the box grown by d on every side. A negative d shrinks it.
func (b AxisAlignedBox) Expand(d float64) AxisAlignedBox {
	grow := r3.Vector{X: d, Y: d, Z: d}
	return NewAxisAlignedBox(b.Min.Sub(grow), b.Max.Add(grow))
}

// Overlaps reports whether the two boxes share any point, faces included.
func (b AxisAlignedBox) Overlaps(other AxisAlignedBox) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// String returns a human readable string that represents the box.
func (b AxisAlignedBox) String() string {
	return fmt.Sprintf("Type: AABB | Min: X:%.2f, Y:%.2f, Z:%.2f | Max: X:%.2f, Y:%.2f, Z:%.2f",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// boundingAABB returns the smallest axis-aligned box containing every point.
func boundingAABB(pts []r3.Vector) AxisAlignedBox {
	if len(pts) == 0 {
		return AxisAlignedBox{}
	}
	out := AxisAlignedBox{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		out.Min = r3.Vector{X: math.Min(out.Min.X, pt.X), Y: math.Min(out.Min.Y, pt.Y), Z: math.Min(out.Min.Z, pt.Z)}
		out.Max = r3.Vector{X: math.Max(out.Max.X, pt.X), Y: math.Max(out.Max.Y, pt.Y), Z: math.Max(out.Max.Z, pt.Z)}
	}
	return out
}
