package pga

import (
	"math"

	"deedles.dev/pga/blade"
)

// Join returns the line from p through q. It is Zero if the points
// coincide. Swapping the operands reverses the line's orientation.
func (p Point) Join(q Point) ZeroOr[Line] {
	return joinPoints(p.t, q.t)
}

// JoinDirection returns the line through p along d.
func (p Point) JoinDirection(d Direction) Line {
	return lineOf(blade.Wedge(p.t, d.blade()))
}

// JoinLine is the same as l.Join(p).
func (p Point) JoinLine(l Line) ZeroOr[Plane] {
	return l.Join(p)
}

// Join returns the line through pd and q. Two distinct directions
// join in a line at infinity. It is Zero if pd and q coincide.
func (pd PointOrDirection) Join(q PointOrDirection) ZeroOr[Line] {
	return joinPoints(pd.blade(), q.blade())
}

func joinPoints(p, q blade.Trivector) ZeroOr[Line] {
	b := blade.Wedge(p, q)
	pw, qw := math.Abs(p.W), math.Abs(q.W)
	pn, qn := p.P.Norm(), q.P.Norm()
	if nearZero(b.V.Norm(), max(pw*qn, qw*pn, pw*qw)) && nearZero(b.M.Norm(), pn*qn) {
		return Zero[Line]()
	}
	return Valid(lineOf(b))
}

// Join returns the plane containing l and p. It is Zero if p lies on
// l.
func (l Line) Join(p Point) ZeroOr[Plane] {
	return joinLine(l.b, p.t)
}

// JoinDirection returns the plane containing l and parallel to d. It
// is Zero if d is parallel to l.
func (l Line) JoinDirection(d Direction) ZeroOr[Plane] {
	return joinLine(l.b, d.blade())
}

func joinLine(l blade.Bivector, t blade.Trivector) ZeroOr[Plane] {
	v, m, w := l.V.Norm(), l.M.Norm(), math.Abs(t.W)
	return planeOf(blade.WedgeLine(l, t), max(v*t.P.Norm(), m*w, v*w))
}

// JoinPoints returns the plane through p0, p1 and p2, oriented so that
// the points wind counterclockwise when viewed from the side its
// normal points towards. It is Zero if the points are collinear.
func JoinPoints(p0, p1, p2 Point) ZeroOr[Plane] {
	return Then(p0.Join(p1), func(l Line) ZeroOr[Plane] {
		return l.Join(p2)
	})
}
