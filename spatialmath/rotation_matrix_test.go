package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestNewRotationMatrix(t *testing.T) {
	rm, err := NewRotationMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.At(1, 2), test.ShouldEqual, 6.)
	test.That(t, rm.Row(2), test.ShouldResemble, r3.Vector{X: 7, Y: 8, Z: 9})
	test.That(t, rm.Col(0), test.ShouldResemble, r3.Vector{X: 1, Y: 4, Z: 7})
	test.That(t, rm.Transpose().Row(0), test.ShouldResemble, r3.Vector{X: 1, Y: 4, Z: 7})

	_, err = NewRotationMatrix([]float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "exactly 9")
}

func TestRotationMatrixTransform(t *testing.T) {
	// quarter turn about Z
	rm := newRotationMatrixFromRows(r3.Vector{Y: 1}, r3.Vector{X: -1}, r3.Vector{Z: 1})
	test.That(t, rm.Transform(r3.Vector{X: 1}), test.ShouldResemble, r3.Vector{X: 0, Y: -1, Z: 0})
	test.That(t, rm.Transform(r3.Vector{Y: 2}), test.ShouldResemble, r3.Vector{X: 2, Y: 0, Z: 0})
	test.That(t, rm.Determinant(), test.ShouldAlmostEqual, 1, testEps)

	// the transpose undoes the transform
	v := r3.Vector{X: 0.3, Y: -2, Z: 5}
	test.That(t, rm.Transpose().Transform(rm.Transform(v)), test.ShouldResemble, v)
}

func TestRotationMatrixQuaternion(t *testing.T) {
	identity := newRotationMatrixFromRows(unitX, unitY, unitZ)
	test.That(t, identity.Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

	quarter := newRotationMatrixFromRows(r3.Vector{Y: 1}, r3.Vector{X: -1}, r3.Vector{Z: 1})
	q := quarter.Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, math.Sqrt2/2, testEps)
	test.That(t, q.Imag, test.ShouldAlmostEqual, 0, testEps)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, 0, testEps)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, math.Sqrt2/2, testEps)

	// half turn about Y takes the trace negative
	half := newRotationMatrixFromRows(r3.Vector{X: -1}, unitY, r3.Vector{Z: -1})
	q = half.Quaternion()
	test.That(t, math.Abs(q.Jmag), test.ShouldAlmostEqual, 1, testEps)
	test.That(t, quat.Abs(q), test.ShouldAlmostEqual, 1, testEps)

	// a box basis built from look angles is a reflection; its quaternion still rotates the
	// world Z and Y axes onto the box forward and up axes
	b, err := NewOrientedBox(r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1}, 20, 60)
	test.That(t, err, test.ShouldBeNil)
	_, y, z := b.Axes()
	q = b.Derive().RotationMatrix().Quaternion()
	test.That(t, quat.Abs(q), test.ShouldAlmostEqual, 1, testEps)
	vectorShouldAlmostEqual(t, rotateByQuaternion(q, unitZ), z)
	vectorShouldAlmostEqual(t, rotateByQuaternion(q, unitY), y)
}

func rotateByQuaternion(q quat.Number, v r3.Vector) r3.Vector {
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vector{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}
