package pga

import (
	"iter"

	"deedles.dev/xiter"
)

// Edges returns an iterator over the lines joining each pair of
// consecutive points yielded by points. A pair of coincident points
// yields Zero. In other words,
//
//	Edges(slices.Values([]Point{a, b, c}))
//
// yields a.Join(b) and then b.Join(c).
func Edges(points iter.Seq[Point]) iter.Seq[ZeroOr[Line]] {
	return func(yield func(ZeroOr[Line]) bool) {
		var prev Point
		first := true
		for p := range points {
			if first {
				prev, first = p, false
				continue
			}

			if !yield(prev.Join(p)) {
				return
			}
			prev = p
		}
	}
}

// JoinEdges is the same as [Edges] but inserts the lines into edges
// instead of yielding them. It stops when edges is full.
func JoinEdges(edges []ZeroOr[Line], points iter.Seq[Point]) {
	insertFromSeq(edges, Edges(points))
}

// Pierce returns an iterator over the results of meeting l with each
// plane yielded by planes.
func Pierce(l Line, planes iter.Seq[Plane]) iter.Seq[ZeroOr[PointOrDirection]] {
	return func(yield func(ZeroOr[PointOrDirection]) bool) {
		for pl := range planes {
			if !yield(l.Meet(pl)) {
				return
			}
		}
	}
}

// PierceAll is the same as [Pierce] but inserts the results into dst
// instead of yielding them. It stops when dst is full.
func PierceAll(dst []ZeroOr[PointOrDirection], l Line, planes iter.Seq[Plane]) {
	insertFromSeq(dst, Pierce(l, planes))
}

func insertFromSeq[T any](dst []T, s iter.Seq[T]) {
	for i, v := range xiter.Enumerate(s) {
		if i >= len(dst) {
			return
		}
		dst[i] = v
	}
}
