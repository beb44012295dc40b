package pga

import "deedles.dev/pga/blade"

// PerpendicularPlane returns the plane containing l that is
// perpendicular to pl. It is Zero if l is itself perpendicular to pl,
// in which case every plane containing l qualifies.
func (pl Plane) PerpendicularPlane(l Line) ZeroOr[Plane] {
	return l.JoinDirection(pl.NormalDirection())
}

// PerpendicularLine returns the line through p perpendicular to pl,
// directed along pl's normal.
func (pl Plane) PerpendicularLine(p Point) Line {
	return p.JoinDirection(pl.NormalDirection())
}

// PerpendicularPlane returns the plane through p perpendicular to l,
// with l's direction as its normal. It is Zero if l lies at infinity.
func (l Line) PerpendicularPlane(p Point) ZeroOr[Plane] {
	if l.IsIdeal() {
		return Zero[Plane]()
	}
	v := blade.Vector{N: l.b.V, D: -l.b.V.Dot(p.Vec())}
	return planeOf(v, v.Norm())
}

// Project returns the point of pl closest to p, the foot of
// pl.PerpendicularLine(p).
func (pl Plane) Project(p Point) Point {
	v := p.Vec().Sub(pl.v.N.Mul(pl.DistanceTo(p)))
	return Point{t: blade.Trivector{P: v, W: 1}}
}

// ProjectPlane returns the plane through p parallel to pl. The result
// is oriented opposite to pl, so that pl and the result face each
// other when p lies in front of pl.
func (p Point) ProjectPlane(pl Plane) Plane {
	n := pl.v.N.Mul(-1)
	return Plane{v: blade.Vector{N: n, D: -n.Dot(p.Vec())}}
}

// Polar returns the line at infinity shared by every plane
// perpendicular to l. Its moment is l's direction. It is Zero if l
// itself lies at infinity.
func (l Line) Polar() ZeroOr[Line] {
	if l.IsIdeal() {
		return Zero[Line]()
	}
	return Valid(lineOf(blade.Bivector{M: l.b.V}))
}
