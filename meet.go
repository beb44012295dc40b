package pga

import (
	"math"

	"deedles.dev/pga/blade"
)

// Meet returns the line along which pl and o intersect. It is Zero if
// the planes are parallel, which includes the case of identical
// planes.
func (pl Plane) Meet(o Plane) ZeroOr[Line] {
	b := blade.Antiwedge(pl.v, o.v)
	if nearZero(b.V.Norm(), pl.v.N.Norm()*o.v.N.Norm()) {
		return Zero[Line]()
	}
	return Valid(lineOf(b))
}

// MeetLine is the same as l.Meet(pl).
func (pl Plane) MeetLine(l Line) ZeroOr[PointOrDirection] {
	return l.Meet(pl)
}

// Meet returns the point at which l pierces pl. If l is parallel to
// pl, the line meets it at infinity and the result is a [Direction].
// It is Zero if l lies in pl.
func (l Line) Meet(pl Plane) ZeroOr[PointOrDirection] {
	t := blade.AntiwedgeLine(l.b, pl.v)
	n, v := pl.v.N.Norm(), l.b.V.Norm()
	if nearZero(t.Norm(), max(n*l.b.M.Norm(), v*math.Abs(pl.v.D), n*v)) {
		return Zero[PointOrDirection]()
	}
	return Valid(classify(t))
}

// MeetPlanes returns the single finite point common to a, b and c. It
// is Zero if any two of the planes are parallel or if their normals
// are coplanar.
func MeetPlanes(a, b, c Plane) ZeroOr[Point] {
	return Then(a.Meet(b), func(l Line) ZeroOr[Point] {
		return Then(l.Meet(c), func(pd PointOrDirection) ZeroOr[Point] {
			p, ok := pd.Point()
			if !ok {
				return Zero[Point]()
			}
			return Valid(p)
		})
	})
}
