package pga

import (
	"fmt"
	"math"

	"deedles.dev/pga/blade"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// The coordinate planes.
var (
	XPlane = Plane{v: blade.Vector{N: r3.Vector{X: 1}}} // x = 0
	YPlane = Plane{v: blade.Vector{N: r3.Vector{Y: 1}}} // y = 0
	ZPlane = Plane{v: blade.Vector{N: r3.Vector{Z: 1}}} // z = 0
)

// Plane is the set of points X satisfying N·X + D = 0. Planes are kept
// in canonical form, with N of unit length, so D is the signed
// distance from the plane to the origin.
type Plane struct {
	v blade.Vector
}

// NewPlane returns the plane nx·x + ny·y + nz·z + d = 0. The normal
// (nx, ny, nz) must not be zero.
func NewPlane(nx, ny, nz, d float64) (Plane, error) {
	v := blade.Vector{N: r3.Vector{X: nx, Y: ny, Z: nz}, D: d}
	pl, ok := planeOf(v, v.Norm()).Get()
	if !ok {
		return Plane{}, invalid("plane", "zero normal")
	}
	return pl, nil
}

// PlaneFromNormalPoint returns the plane with normal n passing
// through p.
func PlaneFromNormalPoint(n r3.Vector, p Point) (Plane, error) {
	return NewPlane(n.X, n.Y, n.Z, -n.Dot(p.Vec()))
}

// planeOf canonicalizes v, or returns Zero if its normal is negligible
// compared to scale.
func planeOf(v blade.Vector, scale float64) ZeroOr[Plane] {
	n := v.N.Norm()
	if nearZero(n, scale) {
		return Zero[Plane]()
	}
	return Valid(Plane{v: blade.Vector{N: v.N.Mul(1 / n), D: v.D / n}})
}

// Normal returns the unit normal of pl.
func (pl Plane) Normal() r3.Vector {
	return pl.v.N
}

// Distance returns the constant term of pl's canonical equation.
func (pl Plane) Distance() float64 {
	return pl.v.D
}

// Coefficients returns (nx, ny, nz, d) in canonical form.
func (pl Plane) Coefficients() [4]float64 {
	return [4]float64{pl.v.N.X, pl.v.N.Y, pl.v.N.Z, pl.v.D}
}

// Neg returns the same plane with the opposite orientation.
func (pl Plane) Neg() Plane {
	return Plane{v: pl.v.Neg()}
}

// DistanceTo returns the signed distance from pl to p, positive on the
// side that the normal points towards.
func (pl Plane) DistanceTo(p Point) float64 {
	return pl.v.N.Dot(p.Vec()) + pl.v.D
}

// Contains reports whether p lies on pl.
func (pl Plane) Contains(p Point) bool {
	d := pl.v.N.Dot(p.t.P) + pl.v.D*p.t.W
	n, w := pl.v.N.Norm(), math.Abs(p.t.W)
	return nearZero(math.Abs(d), max(n*p.t.P.Norm(), math.Abs(pl.v.D)*w, n*w))
}

// ContainsLine reports whether l lies on pl.
func (pl Plane) ContainsLine(l Line) bool {
	return l.Meet(pl).IsZero()
}

// NormalDirection returns the direction perpendicular to pl.
func (pl Plane) NormalDirection() Direction {
	return Direction{v: pl.v.N}
}

// ApproxEqual reports whether the canonical coefficients of pl and o
// are all within tol of each other.
func (pl Plane) ApproxEqual(o Plane, tol float64) bool {
	return vecWithin(pl.v.N, o.v.N, tol) && scalar.EqualWithinAbs(pl.v.D, o.v.D, tol)
}

func (pl Plane) String() string {
	return fmt.Sprintf("Plane(%g, %g, %g, %g)", pl.v.N.X, pl.v.N.Y, pl.v.N.Z, pl.v.D)
}
