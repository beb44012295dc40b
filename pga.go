// Package pga implements the incidence algebra of 3D projective
// geometric algebra: points, directions, planes and lines combined by
// join (the outer product) and meet (the regressive product).
//
// Only geometrically meaningful combinations exist as methods, so an
// ill-typed combination, such as joining two planes, fails to
// compile. Results that can legitimately vanish, such as the line
// through two coincident points, are returned as a [ZeroOr].
//
// All types are small immutable values and every operation is a pure
// function of its operands, so they are safe for concurrent use.
package pga

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types accepted by [Pt].
type Scalar interface {
	constraints.Float | constraints.Integer
}

// Epsilon is the relative tolerance below which a computed magnitude
// is treated as zero. Each test scales it by the largest of the
// products that make up the tested quantity, so results do not depend
// on how far the operands are from the origin. A finite point
// contributes its weight as the unit of length.
const Epsilon = 1e-9

// nearZero reports whether v is negligible compared to scale.
func nearZero(v, scale float64) bool {
	return v <= Epsilon*scale
}
