// Package aabb implements the axis-aligned bounding box algebra and the
// three-way query classification protocol used by the spatial index.
//
// A box is stored as one closed interval per axis, so box operations reduce
// to componentwise interval operations. Overlap deliberately requires shared
// volume: boxes that merely touch on a face, edge or corner are treated as
// disjoint, which keeps tiling boxes from matching each other's queries.
package aabb

import (
	"github.com/hupe1980/spatialgo/vec3"
)

// A box can serve as its own query body.
var _ Query[AABB3[int64]] = AABB3[int64]{}

// AABB3 is a three-dimensional axis-aligned bounding box. The zero value is
// a degenerate point box at the origin.
type AABB3[T vec3.Scalar] struct {
	axes vec3.Vec3[Interval[T]]
}

// New builds the canonical box spanned by two arbitrary corner points. The
// result does not depend on how the coordinates are distributed between p0
// and p1, only on the pair of values per axis.
func New[T vec3.Scalar](p0, p1 vec3.Vec3[T]) AABB3[T] {
	return AABB3[T]{axes: vec3.Zip(p0, p1, NewInterval[T])}
}

// FromAxes assembles a box from per-axis intervals.
func FromAxes[T vec3.Scalar](axes vec3.Vec3[Interval[T]]) AABB3[T] {
	lo, hi := vec3.Unzip(axes, func(iv Interval[T]) (T, T) { return iv.Lo, iv.Hi })
	return New(lo, hi)
}

// Axes returns the per-axis intervals of the box.
func (b AABB3[T]) Axes() vec3.Vec3[Interval[T]] {
	return b.axes
}

// Min returns the corner with the smallest coordinate on every axis.
func (b AABB3[T]) Min() vec3.Vec3[T] {
	return vec3.Map(b.axes, func(iv Interval[T]) T { return iv.Lo })
}

// Max returns the corner with the largest coordinate on every axis.
func (b AABB3[T]) Max() vec3.Vec3[T] {
	return vec3.Map(b.axes, func(iv Interval[T]) T { return iv.Hi })
}

// Extend returns the smallest box containing both b and o.
func (b AABB3[T]) Extend(o AABB3[T]) AABB3[T] {
	return AABB3[T]{axes: vec3.Zip(b.axes, o.axes, Interval[T].Union)}
}

// Intersect returns the box shared by b and o. The second result is false
// when the boxes do not meet on some axis; a box with inverted intervals is
// never produced. The shared box may be degenerate when the boxes only
// touch.
func (b AABB3[T]) Intersect(o AABB3[T]) (AABB3[T], bool) {
	axes, ok := vec3.TryZip(b.axes, o.axes, Interval[T].Intersect)
	if !ok {
		return AABB3[T]{}, false
	}
	return AABB3[T]{axes: axes}, true
}

// HasVolume reports whether the box has strictly positive extent on every
// axis. A box that is flat on any axis bounds a face, an edge or a point,
// not a volume.
func (b AABB3[T]) HasVolume() bool {
	return !b.axes.X.Degenerate() && !b.axes.Y.Degenerate() && !b.axes.Z.Degenerate()
}

// Overlaps reports whether b and o share positive volume. Boxes that touch
// on a face, edge or corner do not overlap.
func (b AABB3[T]) Overlaps(o AABB3[T]) bool {
	shared, ok := b.Intersect(o)
	return ok && shared.HasVolume()
}

// Contains reports whether o lies entirely within b, boundary included.
func (b AABB3[T]) Contains(o AABB3[T]) bool {
	return b.axes.X.Contains(o.axes.X) &&
		b.axes.Y.Contains(o.axes.Y) &&
		b.axes.Z.Contains(o.axes.Z)
}

// Check classifies bound against b, making a box usable as a query body for
// volume range queries: bounds inside b are FullyContained, bounds sharing
// volume with b are Partial, everything else is Disjoint. A flat bound lying
// exactly in b's boundary is the one exception to the Query nesting
// contract: it classifies FullyContained while an enclosing bound touching b
// only at that boundary classifies Disjoint, so a pruned traversal may skip
// it where a linear scan yields it.
func (b AABB3[T]) Check(bound AABB3[T]) Relation {
	switch {
	case b.Contains(bound):
		return FullyContained
	case b.Overlaps(bound):
		return Partial
	default:
		return Disjoint
	}
}

// SelectBySign picks, per axis, the interval endpoint facing along the
// direction described by s and the endpoint facing against it. The two
// returned corners span a body diagonal of the box: outgoing is the corner
// farthest along the direction, incoming the corner farthest against it.
// Along any fixed direction the signed extents of all eight corners lie
// between these two, so a half-space test never needs the other six. A
// Zero sign leaves the axis in (Lo, Hi) order.
func (b AABB3[T]) SelectBySign(s vec3.SignVec) (outgoing, incoming vec3.Vec3[T]) {
	diagonal := vec3.Zip(b.axes, s, func(iv Interval[T], sg vec3.Sign) [2]T {
		if sg == vec3.Positive {
			return [2]T{iv.Hi, iv.Lo}
		}
		return [2]T{iv.Lo, iv.Hi}
	})
	return vec3.Unzip(diagonal, func(p [2]T) (T, T) { return p[0], p[1] })
}

// Corners enumerates the eight corner points of the box.
func (b AABB3[T]) Corners() [8]vec3.Vec3[T] {
	lo, hi := b.Min(), b.Max()
	return [8]vec3.Vec3[T]{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
	}
}
