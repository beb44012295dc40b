package pga

import "fmt"

// ZeroOr holds either a valid value of type T or the zero element of
// the algebra, which is what join and meet produce when their operands
// are not independent. The zero value of a ZeroOr is Zero.
type ZeroOr[T any] struct {
	val   T
	valid bool
}

// Valid returns a ZeroOr holding v.
func Valid[T any](v T) ZeroOr[T] {
	return ZeroOr[T]{val: v, valid: true}
}

// Zero returns a degenerate ZeroOr.
func Zero[T any]() ZeroOr[T] {
	return ZeroOr[T]{}
}

// IsZero reports whether z is degenerate.
func (z ZeroOr[T]) IsZero() bool {
	return !z.valid
}

// Get returns the held value and true, or the zero value of T and
// false if z is degenerate.
func (z ZeroOr[T]) Get() (T, bool) {
	return z.val, z.valid
}

// Value returns the held value, or [ErrZero] if z is degenerate.
func (z ZeroOr[T]) Value() (T, error) {
	if !z.valid {
		var zero T
		return zero, ErrZero
	}
	return z.val, nil
}

// Must returns the held value. It panics with [ErrZero] if z is
// degenerate.
func (z ZeroOr[T]) Must() T {
	if !z.valid {
		panic(ErrZero)
	}
	return z.val
}

// Or returns the held value, or def if z is degenerate.
func (z ZeroOr[T]) Or(def T) T {
	if !z.valid {
		return def
	}
	return z.val
}

func (z ZeroOr[T]) String() string {
	if !z.valid {
		return "Zero"
	}
	return fmt.Sprint(z.val)
}

// Then applies f to the value held by z. If z is degenerate, so is
// the result and f is not called.
func Then[T, R any](z ZeroOr[T], f func(T) ZeroOr[R]) ZeroOr[R] {
	if !z.valid {
		return Zero[R]()
	}
	return f(z.val)
}

// Map is like [Then] but for functions that can not produce a
// degenerate result.
func Map[T, R any](z ZeroOr[T], f func(T) R) ZeroOr[R] {
	if !z.valid {
		return Zero[R]()
	}
	return Valid(f(z.val))
}

// Match calls valid with the held value, or zero if z is degenerate,
// and returns the result.
func Match[T, R any](z ZeroOr[T], valid func(T) R, zero func() R) R {
	if !z.valid {
		return zero()
	}
	return valid(z.val)
}
