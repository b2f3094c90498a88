// Package plane implements a half-space query body over axis-aligned
// bounding boxes.
//
// A plane, given by a point on it and a normal vector, splits space in two.
// The half against the normal counts as the inside of an unbounded solid
// whose surface is the plane; classifying a box asks how the box relates to
// that solid. Plane3 answers from the two extremal corners, Naive3 from all
// eight; the two always agree, and Naive3 stays exported as the reference
// classifier for tests and for readers tracing the semantics.
package plane

import (
	"github.com/hupe1980/spatialgo/aabb"
	"github.com/hupe1980/spatialgo/vec3"
)

var (
	_ aabb.Query[aabb.AABB3[int64]] = Plane3[int64]{}
	_ aabb.Query[aabb.AABB3[int64]] = Naive3[int64]{}
)

// Plane3 is a half-space query body. Construction precomputes the sign
// vector of the normal and the plane offset, expecting one plane to be
// checked against many bounds.
type Plane3[T vec3.Scalar] struct {
	normal vec3.Vec3[T]
	sign   vec3.SignVec
	offset T
}

// New creates a half-space query from a point on the plane and the plane
// normal. Points strictly below the plane with respect to the normal are
// inside. The normal needs no normalizing; a zero normal classifies every
// box as Partial and is the caller's bug to avoid.
func New[T vec3.Scalar](point, normal vec3.Vec3[T]) Plane3[T] {
	return Plane3[T]{
		normal: normal,
		sign:   vec3.SignOf(normal),
		offset: vec3.Dot(point, normal),
	}
}

// Normal returns the plane normal as given to New.
func (p Plane3[T]) Normal() vec3.Vec3[T] {
	return p.normal
}

// Check classifies bound against the half-space using only the two corners
// of bound extremal along the normal. Every corner's signed extent lies
// between theirs, so the pair decides the classification:
//
//   - the incoming corner above the plane puts the whole box above it,
//   - the outgoing corner below the plane puts the whole box inside,
//   - a box lying exactly in the plane touches without being swallowed.
func (p Plane3[T]) Check(bound aabb.AABB3[T]) aabb.Relation {
	outgoing, incoming := bound.SelectBySign(p.sign)
	farthest := vec3.Dot(outgoing, p.normal)
	nearest := vec3.Dot(incoming, p.normal)

	if farthest > p.offset {
		if nearest >= p.offset {
			return aabb.Disjoint
		}
		return aabb.Partial
	}
	if nearest < p.offset {
		return aabb.FullyContained
	}
	return aabb.Partial
}

// Naive3 classifies a box against the same half-space by evaluating the
// signed extent of all eight corners. It is the reference semantics for
// Plane3; prefer Plane3 everywhere performance matters.
type Naive3[T vec3.Scalar] struct {
	point  vec3.Vec3[T]
	normal vec3.Vec3[T]
}

// NewNaive creates the brute-force reference classifier.
func NewNaive[T vec3.Scalar](point, normal vec3.Vec3[T]) Naive3[T] {
	return Naive3[T]{point: point, normal: normal}
}

// Check classifies bound corner by corner. Corners on both strict sides of
// the plane force Partial immediately; otherwise the strict side that was
// seen decides, and a box whose corners all lie in the plane stays Partial.
func (n Naive3[T]) Check(bound aabb.AABB3[T]) aabb.Relation {
	var zero T
	var below, above bool
	for _, c := range bound.Corners() {
		d := vec3.Dot(vec3.Sub(c, n.point), n.normal)
		switch {
		case d > zero:
			if below {
				return aabb.Partial
			}
			above = true
		case d < zero:
			if above {
				return aabb.Partial
			}
			below = true
		}
	}
	switch {
	case above:
		return aabb.Disjoint
	case below:
		return aabb.FullyContained
	default:
		return aabb.Partial
	}
}
