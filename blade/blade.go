// Package blade provides the raw coefficient storage and product
// formulas of 3D projective geometric algebra.
//
// Planes are grade-1 elements, lines grade-2 and points grade-3. The
// functions in this package perform no normalization and no tolerance
// checks. They are the building blocks used by package pga, which
// layers typing and degeneracy handling on top of them.
package blade

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vector is a grade-1 element representing the plane N·X + D = 0.
type Vector struct {
	N r3.Vector
	D float64
}

// Norm returns the Euclidean norm of all four coefficients.
func (a Vector) Norm() float64 {
	return math.Sqrt(a.N.Norm2() + a.D*a.D)
}

// Neg negates every coefficient, reversing the plane's orientation.
func (a Vector) Neg() Vector {
	return Vector{N: a.N.Mul(-1), D: -a.D}
}

// Trivector is a grade-3 element representing the homogeneous point
// (P, W). If W is zero, the point is ideal and P is its direction.
type Trivector struct {
	P r3.Vector
	W float64
}

// Norm returns the Euclidean norm of all four coefficients.
func (t Trivector) Norm() float64 {
	return math.Sqrt(t.P.Norm2() + t.W*t.W)
}

// Bivector is a grade-2 element representing a line by its direction,
// or weight, V and its moment, or bulk, M.
type Bivector struct {
	V r3.Vector
	M r3.Vector
}

// Norm returns the Euclidean norm of all six coefficients.
func (b Bivector) Norm() float64 {
	return math.Sqrt(b.V.Norm2() + b.M.Norm2())
}

// Neg negates every coefficient, reversing the line's orientation.
func (b Bivector) Neg() Bivector {
	return Bivector{V: b.V.Mul(-1), M: b.M.Mul(-1)}
}

// Plucker returns V·M, which is zero for every bivector that
// represents a line.
func (b Bivector) Plucker() float64 {
	return b.V.Dot(b.M)
}

// Wedge returns the outer product of two points, the line passing
// through both. It is anti-commutative.
func Wedge(p, q Trivector) Bivector {
	return Bivector{
		V: q.P.Mul(p.W).Sub(p.P.Mul(q.W)),
		M: p.P.Cross(q.P),
	}
}

// WedgeLine returns the outer product of a line and a point, the plane
// containing both.
func WedgeLine(l Bivector, q Trivector) Vector {
	return Vector{
		N: l.V.Cross(q.P).Add(l.M.Mul(q.W)),
		D: -l.M.Dot(q.P),
	}
}

// Antiwedge returns the regressive product of two planes, the line
// along which they intersect.
func Antiwedge(a, b Vector) Bivector {
	return Bivector{
		V: b.N.Cross(a.N),
		M: a.N.Mul(b.D).Sub(b.N.Mul(a.D)),
	}
}

// AntiwedgeLine returns the regressive product of a line and a plane,
// the homogeneous point at which the line pierces the plane.
func AntiwedgeLine(l Bivector, a Vector) Trivector {
	return Trivector{
		P: a.N.Cross(l.M).Sub(l.V.Mul(a.D)),
		W: a.N.Dot(l.V),
	}
}

// DualVector maps a plane to its dual point.
func DualVector(a Vector) Trivector {
	return Trivector{P: a.N, W: a.D}
}

// DualTrivector maps a point to its dual plane.
func DualTrivector(t Trivector) Vector {
	return Vector{N: t.P, D: t.W}
}

// DualBivector maps a line to its dual line, exchanging the roles of
// direction and moment. It is an involution.
func DualBivector(b Bivector) Bivector {
	return Bivector{V: b.M.Mul(-1), M: b.V.Mul(-1)}
}
