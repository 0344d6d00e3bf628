package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

//   Y ^       8   +-------+   7     axisY   axisZ
//     |          /|      /|             | /
//     |     4   +-------+ | 3           |/
//     |  Z      | |     | |             +-- axisX
//     |   /   5 | +-----|-+  6       Center
//     |  /      |/      |/
//     | /   1   +-------+   2
//     |/
//     +--------------------> X

type vertexSign struct {
	z, x, y float64
}

// Signs of the Z, X and Y half extents added to the center for corners 1 through 8.
var boxVertexSigns = [8]vertexSign{
	{-1, -1, -1},
	{-1, 1, -1},
	{-1, 1, 1},
	{-1, -1, 1},
	{1, -1, -1},
	{1, 1, -1},
	{1, 1, 1},
	{1, -1, 1},
}

// DerivedBox is an OrientedBox together with its rotation matrix and eight corner vertices. It is
// only produced by OrientedBox.Derive and never changes afterwards, so it can be queried from
// many goroutines at once.
type DerivedBox struct {
	box          OrientedBox
	rotation     RotationMatrix
	orientationX r3.Vector
	orientationY r3.Vector
	orientationZ r3.Vector
	vertices     [8]r3.Vector
	derived      bool
}

// mustBeDerived panics if the box was not produced by Derive.
func (d *DerivedBox) mustBeDerived() {
	if d == nil || !d.derived {
		panic("spatialmath: query on a DerivedBox that was not produced by OrientedBox.Derive")
	}
}

// Box returns a copy of the configured box, for repositioning.
func (d *DerivedBox) Box() *OrientedBox {
	d.mustBeDerived()
	b := d.box
	return &b
}

// Center returns the world-space centroid of the box.
func (d *DerivedBox) Center() r3.Vector {
	d.mustBeDerived()
	return d.box.center
}

// Extent returns the half size of the box along its local axes.
func (d *DerivedBox) Extent() r3.Vector {
	d.mustBeDerived()
	return d.box.extent
}

// Axes returns the local X, Y and Z axes of the box.
func (d *DerivedBox) Axes() (x, y, z r3.Vector) {
	d.mustBeDerived()
	return d.box.Axes()
}

// RotationMatrix returns a copy of the matrix whose rows are the box axes.
func (d *DerivedBox) RotationMatrix() *RotationMatrix {
	d.mustBeDerived()
	rm := d.rotation
	return &rm
}

// Vertices returns the eight corners in topological order.
func (d *DerivedBox) Vertices() [8]r3.Vector {
	d.mustBeDerived()
	return d.vertices
}

// Vertex returns corner i, numbered 1 through 8.
func (d *DerivedBox) Vertex(i int) r3.Vector {
	d.mustBeDerived()
	return d.vertices[i-1]
}

// BoundingAABB returns the smallest axis-aligned box containing the box.
func (d *DerivedBox) BoundingAABB() AxisAlignedBox {
	d.mustBeDerived()
	return boundingAABB(d.vertices[:])
}

// Contains reports whether pt lies strictly inside the box. Points on a face are not contained.
func (d *DerivedBox) Contains(pt r3.Vector) bool {
	d.mustBeDerived()
	local := d.rotation.Transform(pt.Sub(d.box.center))
	return math.Abs(local.X) < d.box.extent.X &&
		math.Abs(local.Y) < d.box.extent.Y &&
		math.Abs(local.Z) < d.box.extent.Z
}

// Intersects reports whether the box overlaps the axis-aligned box. Touching counts as overlap.
func (d *DerivedBox) Intersects(aabb AxisAlignedBox) bool {
	return d.IntersectsBox(NewOrientedBoxFromAABB(aabb).Derive())
}

// IntersectsBox reports whether the two boxes overlap. Touching counts as overlap.
func (d *DerivedBox) IntersectsBox(other *DerivedBox) bool {
	d.mustBeDerived()
	other.mustBeDerived()
	return boxVsBoxIntersect(d, other)
}
