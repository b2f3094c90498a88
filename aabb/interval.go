package aabb

import (
	"github.com/hupe1980/spatialgo/vec3"
)

// Interval is a closed interval [Lo, Hi] on a single axis. Construct it
// through NewInterval to guarantee Lo <= Hi; all interval operations
// preserve that ordering.
type Interval[T vec3.Scalar] struct {
	Lo, Hi T
}

// NewInterval orders two arbitrary endpoints into a canonical interval.
func NewInterval[T vec3.Scalar](a, b T) Interval[T] {
	if b < a {
		return Interval[T]{Lo: b, Hi: a}
	}
	return Interval[T]{Lo: a, Hi: b}
}

// Union returns the smallest interval containing both i and o, including
// any gap between them.
func (i Interval[T]) Union(o Interval[T]) Interval[T] {
	return Interval[T]{Lo: min(i.Lo, o.Lo), Hi: max(i.Hi, o.Hi)}
}

// Intersect returns the overlap of two closed intervals. The second result
// is false when they do not meet; an inverted interval is never produced.
// Touching endpoints count as an overlap of zero width.
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	if i.Hi < o.Lo || o.Hi < i.Lo {
		return Interval[T]{}, false
	}
	return Interval[T]{Lo: max(i.Lo, o.Lo), Hi: min(i.Hi, o.Hi)}, true
}

// Degenerate reports whether the interval has zero width.
func (i Interval[T]) Degenerate() bool {
	return i.Lo == i.Hi
}

// Contains reports whether o lies entirely within i.
func (i Interval[T]) Contains(o Interval[T]) bool {
	return i.Lo <= o.Lo && o.Hi <= i.Hi
}
