package pga

import (
	"fmt"
	"math"

	"deedles.dev/pga/blade"
	"github.com/golang/geo/r3"
)

// The coordinate axes, each directed towards positive values.
var (
	XAxis = Line{b: blade.Bivector{V: r3.Vector{X: 1}}}
	YAxis = Line{b: blade.Bivector{V: r3.Vector{Y: 1}}}
	ZAxis = Line{b: blade.Bivector{V: r3.Vector{Z: 1}}}
)

// Line is an oriented line in Plücker form: a direction V and a moment
// M, with V·M = 0. For a line through a point P, M = P × V. A line with
// a zero direction lies at infinity.
//
// Lines are kept in canonical form, scaled so that the direction has
// unit length, or the moment for a line at infinity. Scaling preserves
// orientation.
type Line struct {
	b blade.Bivector
}

// NewLine returns the line with the given direction and moment. They
// must not both be zero and must satisfy the Plücker relation.
func NewLine(direction, moment r3.Vector) (Line, error) {
	b := blade.Bivector{V: direction, M: moment}
	if b.Norm() == 0 {
		return Line{}, invalid("line", "direction and moment are zero")
	}
	if !nearZero(math.Abs(b.Plucker()), direction.Norm()*moment.Norm()) {
		return Line{}, invalid("line", "direction and moment are not orthogonal")
	}
	return lineOf(b), nil
}

// LineThroughOrigin returns the line through the origin with
// direction (dx, dy, dz).
func LineThroughOrigin(dx, dy, dz float64) (Line, error) {
	return NewLine(r3.Vector{X: dx, Y: dy, Z: dz}, r3.Vector{})
}

// lineOf canonicalizes b, which must not be zero.
func lineOf(b blade.Bivector) Line {
	n := b.V.Norm()
	if nearZero(n, b.Norm()) {
		n = b.M.Norm()
	}
	return Line{b: blade.Bivector{V: b.V.Mul(1 / n), M: b.M.Mul(1 / n)}}
}

// Direction returns the direction of l.
func (l Line) Direction() r3.Vector {
	return l.b.V
}

// Moment returns the moment of l about the origin.
func (l Line) Moment() r3.Vector {
	return l.b.M
}

// Coefficients returns (vx, vy, vz, mx, my, mz) in canonical form.
func (l Line) Coefficients() [6]float64 {
	return [6]float64{l.b.V.X, l.b.V.Y, l.b.V.Z, l.b.M.X, l.b.M.Y, l.b.M.Z}
}

// IsIdeal reports whether l lies at infinity.
func (l Line) IsIdeal() bool {
	return nearZero(l.b.V.Norm(), l.b.Norm())
}

// Neg returns the same line with the opposite orientation.
func (l Line) Neg() Line {
	return Line{b: l.b.Neg()}
}

// Contains reports whether p lies on l.
func (l Line) Contains(p Point) bool {
	return l.Join(p).IsZero()
}

// ApproxEqual reports whether the canonical coefficients of l and o
// are all within tol of each other.
func (l Line) ApproxEqual(o Line, tol float64) bool {
	return vecWithin(l.b.V, o.b.V, tol) && vecWithin(l.b.M, o.b.M, tol)
}

func (l Line) String() string {
	return fmt.Sprintf(
		"Line(%g, %g, %g; %g, %g, %g)",
		l.b.V.X, l.b.V.Y, l.b.V.Z,
		l.b.M.X, l.b.M.Y, l.b.M.Z,
	)
}
