package pga_test

import (
	"errors"
	"testing"

	"deedles.dev/pga"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestPoint(t *testing.T) {
	p := pga.Pt(1, 2, 3)
	x, y, z := p.XYZ()
	require.Equal(t, [3]float64{1, 2, 3}, [3]float64{x, y, z})
	require.Equal(t, [4]float64{1, 2, 3, 1}, p.Homogeneous())

	h := must(pga.NewPoint(2, 4, 6, 2))
	require.Equal(t, r3.Vector{X: 1, Y: 2, Z: 3}, h.Vec())
	require.True(t, h.ApproxEqual(p, tol))
	require.Equal(t, [4]float64{1, 2, 3, 1}, h.Canon().Homogeneous())
	require.Equal(t, "Point(1, 2, 3)", h.String())

	require.True(t, pga.Pt(0.5, 0, 0).ApproxEqual(must(pga.NewPoint(1, 0, 0, 2)), tol))
}

func TestInvalidConstruction(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"point", second(pga.NewPoint(0, 0, 0, 0))},
		{"ideal point", second(pga.NewPoint(1, 0, 0, 0))},
		{"direction", second(pga.NewDirection(0, 0, 0))},
		{"plane", second(pga.NewPlane(0, 0, 0, 0))},
		{"plane at infinity", second(pga.NewPlane(0, 0, 0, 1))},
		{"line", second(pga.NewLine(r3.Vector{}, r3.Vector{}))},
		{"plucker", second(pga.NewLine(r3.Vector{X: 1}, r3.Vector{X: 1}))},
		{"line through origin", second(pga.LineThroughOrigin(0, 0, 0))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.ErrorIs(t, test.err, pga.ErrInvalidEntity)

			var eerr *pga.EntityError
			require.True(t, errors.As(test.err, &eerr))
			require.NotEmpty(t, eerr.Entity)
			require.NotEmpty(t, eerr.Reason)
		})
	}
}

func second[T any](_ T, err error) error {
	return err
}

func TestDirection(t *testing.T) {
	d := must(pga.NewDirection(0, 3, 4))
	require.Equal(t, r3.Vector{Y: 3, Z: 4}, d.Vec())
	require.True(t, d.Unit().ApproxEqual(must(pga.NewDirection(0, 0.6, 0.8)), tol))
	require.Equal(t, r3.Vector{Y: -3, Z: -4}, d.Neg().Vec())

	var zero pga.Direction
	require.NotPanics(t, func() { zero.Dual() })
}

func TestPlane(t *testing.T) {
	pl := must(pga.NewPlane(1, 0, 0, 0))
	require.Equal(t, [4]float64{1, 0, 0, 0}, pl.Coefficients())
	require.Equal(t, r3.Vector{X: 1}, pl.Normal())
	require.Zero(t, pl.Distance())
	require.True(t, pl.ApproxEqual(pga.XPlane, tol))

	pl = must(pga.NewPlane(0, 0, 2, -4))
	require.Equal(t, [4]float64{0, 0, 1, -2}, pl.Coefficients())
	c := pl.Coefficients()
	require.True(t, pl.ApproxEqual(must(pga.NewPlane(c[0], c[1], c[2], c[3])), tol))
	require.InDelta(t, -2, pl.DistanceTo(pga.Origin), tol)
	require.InDelta(t, 1, pl.DistanceTo(pga.Pt(5, 5, 3)), tol)
	require.True(t, pl.Contains(pga.Pt(7, -1, 2)))
	require.False(t, pl.Contains(pga.Origin))

	neg := pl.Neg()
	require.Equal(t, [4]float64{0, 0, -1, 2}, neg.Coefficients())
	require.True(t, neg.Contains(pga.Pt(7, -1, 2)))

	fp := must(pga.PlaneFromNormalPoint(r3.Vector{Y: 3}, pga.Pt(1, 2, 3)))
	require.True(t, fp.ApproxEqual(must(pga.NewPlane(0, 1, 0, -2)), tol))
}

func TestLine(t *testing.T) {
	l := must(pga.LineThroughOrigin(0, 0, 2))
	require.True(t, l.ApproxEqual(pga.ZAxis, tol))
	require.False(t, l.IsIdeal())
	require.True(t, l.Contains(pga.Pt(0, 0, -7)))
	require.False(t, l.Contains(pga.Pt(1, 0, 0)))

	p := pga.Pt(0, 1, 0)
	v := r3.Vector{X: 2}
	l = must(pga.NewLine(v, p.Vec().Cross(v)))
	require.Equal(t, r3.Vector{X: 1}, l.Direction())
	require.Equal(t, r3.Vector{Z: -1}, l.Moment())
	require.Equal(t, [6]float64{1, 0, 0, 0, 0, -1}, l.Coefficients())
	require.True(t, l.Contains(pga.Pt(-3, 1, 0)))
	require.InDelta(t, 0, l.Direction().Dot(l.Moment()), tol)

	ideal := must(pga.NewLine(r3.Vector{}, r3.Vector{Z: 3}))
	require.True(t, ideal.IsIdeal())
	require.Equal(t, r3.Vector{Z: 1}, ideal.Moment())

	require.True(t, l.Neg().Neg().ApproxEqual(l, tol))
	require.False(t, l.Neg().ApproxEqual(l, tol))
}

func TestPointOrDirection(t *testing.T) {
	pd := pga.FromHomogeneous(2, 4, 6, 2).Must()
	require.True(t, pd.IsPoint())
	require.False(t, pd.IsDirection())
	p, ok := pd.Point()
	require.True(t, ok)
	require.True(t, p.ApproxEqual(pga.Pt(1, 2, 3), tol))
	_, ok = pd.Direction()
	require.False(t, ok)
	require.Equal(t, [4]float64{2, 4, 6, 2}, pd.Homogeneous())

	pd = pga.FromHomogeneous(1, 0, 0, 1e-15).Must()
	require.True(t, pd.IsDirection())
	d, ok := pd.Direction()
	require.True(t, ok)
	require.True(t, d.ApproxEqual(must(pga.NewDirection(1, 0, 0)), tol))
	_, ok = pd.Point()
	require.False(t, ok)
	require.Equal(t, "Direction(1, 0, 0)", pd.String())

	require.True(t, pga.FromHomogeneous(0, 0, 0, 0).IsZero())
	require.True(t, pga.FromHomogeneous(1e-8, 2e-8, 0, 1e-8).Must().IsPoint())
	require.True(t, pga.FromHomogeneous(1e6, 0, 0, 1e-6).Must().IsDirection())

	require.True(t, pga.FromPoint(pga.Origin).IsPoint())
	require.True(t, pga.FromDirection(must(pga.NewDirection(0, 1, 0))).IsDirection())
}

func TestCanonicalNormalization(t *testing.T) {
	pl := must(pga.NewPlane(3, 4, 0, 10))
	require.InDelta(t, 1, pl.Normal().Norm(), tol)
	require.InDelta(t, 2, pl.Distance(), tol)

	l := pga.Pt(1, 1, 1).Join(pga.Pt(4, 5, 1)).Must()
	require.InDelta(t, 1, l.Direction().Norm(), tol)
	require.InDelta(t, 0, l.Direction().Dot(l.Moment()), tol)
}
