package pga

import "deedles.dev/pga/blade"

// The dual maps (x, y, z, w) homogeneous point coordinates to the
// plane coefficients (x, y, z, w) and back, and swaps a line's
// direction and moment while negating both. Applying it twice yields
// the original entity up to a positive scale, which canonical forms
// remove. For any two planes a and b that are not parallel,
//
//	a.Meet(b) == Map(a.Dual().Join(b.Dual()), Line.Dual)
//
// within rounding error.

// Dual returns the plane dual to p. It is Zero for the origin, whose
// dual is the plane at infinity.
func (p Point) Dual() ZeroOr[Plane] {
	return planeOf(blade.DualTrivector(p.t), p.t.Norm())
}

// Dual returns the plane through the origin perpendicular to d.
func (d Direction) Dual() Plane {
	return Plane{v: blade.Vector{N: d.v.Normalize()}}
}

// Dual returns the point or direction dual to pl. A plane through the
// origin is dual to the direction of its normal.
func (pl Plane) Dual() PointOrDirection {
	return classify(blade.DualVector(pl.v))
}

// Dual returns the line dual to l.
func (l Line) Dual() Line {
	return lineOf(blade.DualBivector(l.b))
}

// Dual returns the plane dual to the held point or direction.
func (pd PointOrDirection) Dual() ZeroOr[Plane] {
	if pd.ideal {
		return Valid(pd.dir.Dual())
	}
	return pd.point.Dual()
}
