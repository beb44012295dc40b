package pga

import (
	"fmt"
	"math"

	"deedles.dev/pga/blade"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Origin is the point (0, 0, 0).
var Origin = Pt(0, 0, 0)

// Point is a finite point. It is stored in homogeneous coordinates
// with a non-zero weight, but its accessors return canonical
// coordinates with the weight divided out.
//
// The zero value is not a valid point. Use [Pt] or [NewPoint].
type Point struct {
	t blade.Trivector
}

// Pt is shorthand for a finite point at (x, y, z).
func Pt[T Scalar](x, y, z T) Point {
	return Point{t: blade.Trivector{
		P: r3.Vector{X: float64(x), Y: float64(y), Z: float64(z)},
		W: 1,
	}}
}

// NewPoint returns the point with homogeneous coordinates (x, y, z,
// w). A weight of zero describes a point at infinity, which must be
// represented with a [Direction] instead.
func NewPoint(x, y, z, w float64) (Point, error) {
	t := blade.Trivector{P: r3.Vector{X: x, Y: y, Z: z}, W: w}
	n := t.Norm()
	if n == 0 {
		return Point{}, invalid("point", "all coordinates are zero")
	}
	if nearZero(math.Abs(w), n) {
		return Point{}, invalid("point", "zero weight, use a Direction")
	}
	return Point{t: t}, nil
}

// XYZ returns the canonical coordinates of p.
func (p Point) XYZ() (x, y, z float64) {
	v := p.Vec()
	return v.X, v.Y, v.Z
}

// Vec returns the canonical coordinates of p as a vector.
func (p Point) Vec() r3.Vector {
	return p.t.P.Mul(1 / p.t.W)
}

// Homogeneous returns the coordinates of p as stored. They are a
// non-zero multiple of the canonical coordinates with a weight of 1.
func (p Point) Homogeneous() [4]float64 {
	return [4]float64{p.t.P.X, p.t.P.Y, p.t.P.Z, p.t.W}
}

// Canon returns p scaled so that its weight is 1.
func (p Point) Canon() Point {
	return Point{t: blade.Trivector{P: p.Vec(), W: 1}}
}

// ApproxEqual reports whether the canonical coordinates of p and q
// are all within tol of each other.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return vecWithin(p.Vec(), q.Vec(), tol)
}

func (p Point) String() string {
	x, y, z := p.XYZ()
	return fmt.Sprintf("Point(%g, %g, %g)", x, y, z)
}

// Direction is a point at infinity, the common point of all parallel
// lines along a direction. Its magnitude is not significant to
// incidence but is preserved.
//
// The zero value is not a valid direction. Use [NewDirection], or
// [Plane.NormalDirection]. Operations on it do not panic but their
// results are meaningless.
type Direction struct {
	v r3.Vector
}

// NewDirection returns the direction (x, y, z), which must not be
// zero.
func NewDirection(x, y, z float64) (Direction, error) {
	v := r3.Vector{X: x, Y: y, Z: z}
	if v.Norm2() == 0 {
		return Direction{}, invalid("direction", "all coordinates are zero")
	}
	return Direction{v: v}, nil
}

// Vec returns the coordinates of d.
func (d Direction) Vec() r3.Vector {
	return d.v
}

// Unit returns d scaled to unit length.
func (d Direction) Unit() Direction {
	return Direction{v: d.v.Normalize()}
}

// Neg returns the opposite direction.
func (d Direction) Neg() Direction {
	return Direction{v: d.v.Mul(-1)}
}

// ApproxEqual reports whether the coordinates of d and o are all
// within tol of each other.
func (d Direction) ApproxEqual(o Direction, tol float64) bool {
	return vecWithin(d.v, o.v, tol)
}

func (d Direction) String() string {
	return fmt.Sprintf("Direction(%g, %g, %g)", d.v.X, d.v.Y, d.v.Z)
}

func (d Direction) blade() blade.Trivector {
	return blade.Trivector{P: d.v}
}

// PointOrDirection holds either a finite [Point] or a [Direction]. It
// is produced by operations whose result may or may not lie at
// infinity depending on the values of their operands.
type PointOrDirection struct {
	point Point
	dir   Direction
	ideal bool
}

// FromPoint returns a PointOrDirection holding p.
func FromPoint(p Point) PointOrDirection {
	return PointOrDirection{point: p}
}

// FromDirection returns a PointOrDirection holding d.
func FromDirection(d Direction) PointOrDirection {
	return PointOrDirection{dir: d, ideal: true}
}

// FromHomogeneous classifies the homogeneous coordinates (x, y, z, w)
// as a finite point or a direction. A weight that is negligible
// compared to the other coordinates yields a direction. The result is
// Zero only if every coordinate is zero.
func FromHomogeneous(x, y, z, w float64) ZeroOr[PointOrDirection] {
	t := blade.Trivector{P: r3.Vector{X: x, Y: y, Z: z}, W: w}
	if t.Norm() == 0 {
		return Zero[PointOrDirection]()
	}
	return Valid(classify(t))
}

// classify assumes that t is not zero.
func classify(t blade.Trivector) PointOrDirection {
	if nearZero(math.Abs(t.W), t.Norm()) {
		return FromDirection(Direction{v: t.P})
	}
	return FromPoint(Point{t: t})
}

// IsPoint reports whether pd holds a finite point.
func (pd PointOrDirection) IsPoint() bool {
	return !pd.ideal
}

// IsDirection reports whether pd holds a direction.
func (pd PointOrDirection) IsDirection() bool {
	return pd.ideal
}

// Point returns the held point and true, or false if pd holds a
// direction.
func (pd PointOrDirection) Point() (Point, bool) {
	return pd.point, !pd.ideal
}

// Direction returns the held direction and true, or false if pd holds
// a finite point.
func (pd PointOrDirection) Direction() (Direction, bool) {
	return pd.dir, pd.ideal
}

// Homogeneous returns the homogeneous coordinates of the held value.
// For a direction the weight is 0.
func (pd PointOrDirection) Homogeneous() [4]float64 {
	t := pd.blade()
	return [4]float64{t.P.X, t.P.Y, t.P.Z, t.W}
}

func (pd PointOrDirection) String() string {
	if pd.ideal {
		return pd.dir.String()
	}
	return pd.point.String()
}

func (pd PointOrDirection) blade() blade.Trivector {
	if pd.ideal {
		return pd.dir.blade()
	}
	return pd.point.t
}

func vecWithin(a, b r3.Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}
