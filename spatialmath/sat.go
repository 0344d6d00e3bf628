package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	// Candidate axes with a squared length below this come from parallel edges and carry no
	// separation information.
	degenerateAxisEpsilon = 1e-12

	// Projected gaps up to this size, relative to the magnitude of the projections, still count as
	// touching.
	touchEpsilon = 1e-9
)

// boxVsBoxIntersect runs the separating axis test between two derived boxes: the three face
// normals of each box followed by the nine pairwise edge cross products. It returns false as soon
// as one axis separates the boxes.
// references:  https://gamedev.stackexchange.com/questions/44500/how-many-and-which-axes-to-use-for-3d-obb-collision-with-sat
//
//	https://www.geometrictools.com/Documentation/DynamicCollisionDetection.pdf
func boxVsBoxIntersect(a, b *DerivedBox) bool {
	axesA := [3]r3.Vector{a.box.axisX, a.box.axisY, a.box.axisZ}
	axesB := [3]r3.Vector{b.box.axisX, b.box.axisY, b.box.axisZ}

	for _, axis := range axesA {
		if separated(&a.vertices, &b.vertices, axis) {
			return false
		}
	}
	for _, axis := range axesB {
		if separated(&a.vertices, &b.vertices, axis) {
			return false
		}
	}
	for _, axisA := range axesA {
		for _, axisB := range axesB {
			if separated(&a.vertices, &b.vertices, axisA.Cross(axisB)) {
				return false
			}
		}
	}
	return true
}

// separated projects both vertex sets onto axis and reports whether the two intervals are disjoint.
// A zero or near-zero axis never separates.
func separated(vertsA, vertsB *[8]r3.Vector, axis r3.Vector) bool {
	if axis.Norm2() < degenerateAxisEpsilon {
		return false
	}
	axis = axis.Normalize()

	aMin, aMax := projectVertices(vertsA, axis)
	bMin, bMax := projectVertices(vertsB, axis)

	longSpan := math.Max(aMax, bMax) - math.Min(aMin, bMin)
	sumSpan := (aMax - aMin) + (bMax - bMin)
	return longSpan-sumSpan > touchTolerance(aMin, aMax, bMin, bMax)
}

// touchTolerance grows touchEpsilon with the largest projection, since rounding in the projections
// grows with distance from the origin.
func touchTolerance(projections ...float64) float64 {
	scale := 1.
	for _, p := range projections {
		scale = math.Max(scale, math.Abs(p))
	}
	return touchEpsilon * scale
}

// projectVertices returns the interval covered by the vertices along axis.
func projectVertices(verts *[8]r3.Vector, axis r3.Vector) (lo, hi float64) {
	lo = verts[0].Dot(axis)
	hi = lo
	for _, v := range verts[1:] {
		dist := v.Dot(axis)
		lo = math.Min(lo, dist)
		hi = math.Max(hi, dist)
	}
	return lo, hi
}
