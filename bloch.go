package blochviz

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

/*
BlochPoint is the (⟨X⟩, ⟨Y⟩, ⟨Z⟩) image of a qubit state. It is always
recomputed from a QuantumState and never used as the source of truth.
*/
type BlochPoint r3.Vec

// Bloch maps the state onto the sphere via the Pauli expectation values.
func (qs QuantumState) Bloch() BlochPoint {
	qs = qs.Normalize()
	cross := cmplx.Conj(qs.Alpha) * qs.Beta
	a := cmplx.Abs(qs.Alpha)
	b := cmplx.Abs(qs.Beta)

	return BlochPoint{
		X: 2 * real(cross),
		Y: 2 * imag(cross),
		Z: a*a - b*b,
	}
}

// Vec returns the point as a gonum vector.
func (p BlochPoint) Vec() r3.Vec {
	return r3.Vec(p)
}

func (p BlochPoint) Dot(other BlochPoint) float64 {
	return r3.Dot(p.Vec(), other.Vec())
}

func (p BlochPoint) Length() float64 {
	return r3.Norm(p.Vec())
}

func (p BlochPoint) Scale(s float64) BlochPoint {
	return BlochPoint(r3.Scale(s, p.Vec()))
}

func (p BlochPoint) Add(other BlochPoint) BlochPoint {
	return BlochPoint(r3.Add(p.Vec(), other.Vec()))
}

// Normalize projects the point back onto the unit sphere. The origin is returned as-is.
func (p BlochPoint) Normalize() BlochPoint {
	if r3.Norm(p.Vec()) == 0 {
		return p
	}
	return BlochPoint(r3.Unit(p.Vec()))
}

// ApproxEqual compares component-wise within an absolute tolerance.
func (p BlochPoint) ApproxEqual(other BlochPoint, tolerance float64) bool {
	return scalar.EqualWithinAbs(p.X, other.X, tolerance) &&
		scalar.EqualWithinAbs(p.Y, other.Y, tolerance) &&
		scalar.EqualWithinAbs(p.Z, other.Z, tolerance)
}

func (p BlochPoint) String() string {
	return fmt.Sprintf("(%+.4f, %+.4f, %+.4f)", p.X, p.Y, p.Z)
}

/*
Slerp walks the great-circle arc from p to other. t is in [0, 1].
The point is rotated about the axis p × other by t times the angle between
them, so equal steps in t give equal arc lengths at any separation.
Parallel and antipodal inputs have no unique axis; p is returned for those.
*/
func (p BlochPoint) Slerp(other BlochPoint, t float64) BlochPoint {
	a := p.Normalize().Vec()
	b := other.Normalize().Vec()

	axis := r3.Cross(a, b)
	sinAngle := r3.Norm(axis)
	if sinAngle == 0 {
		return BlochPoint(a)
	}

	angle := math.Atan2(sinAngle, r3.Dot(a, b))
	return BlochPoint(rotate(a, r3.Unit(axis), t*angle))
}

// rotate turns v about the unit axis by alpha radians as q v q*.
func rotate(v, axis r3.Vec, alpha float64) r3.Vec {
	s := math.Sin(alpha / 2)
	q := quat.Number{
		Real: math.Cos(alpha / 2),
		Imag: axis.X * s,
		Jmag: axis.Y * s,
		Kmag: axis.Z * s,
	}

	raised := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	turned := quat.Mul(quat.Mul(q, raised), quat.Conj(q))

	return r3.Vec{X: turned.Imag, Y: turned.Jmag, Z: turned.Kmag}
}
