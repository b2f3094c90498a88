package bvh

import (
	"fmt"
	"sort"

	"github.com/hupe1980/spatialgo/aabb"
	"github.com/hupe1980/spatialgo/vec3"
)

// BuildAABB assembles a tree over axis-aligned boxes by recursive median
// splits: each subtree sorts its boxes by center along the axis of widest
// extent and halves the slice, so the result is balanced with height
// ceil(log2 n). bounds[i] bounds values[i]; the input order does not
// survive into the leaf order.
//
// Building is single-threaded and meant to happen once, ahead of queries.
// Zero items produce the empty tree.
func BuildAABB[T vec3.Scalar, V any](bounds []aabb.AABB3[T], values []V) (*BVH[aabb.AABB3[T], V], error) {
	if len(bounds) != len(values) {
		return nil, fmt.Errorf("%w: %d bounds, %d values", ErrLengthMismatch, len(bounds), len(values))
	}
	if len(bounds) == 0 {
		return Empty[aabb.AABB3[T], V](), nil
	}

	items := make([]buildItem[T, V], len(bounds))
	for i := range bounds {
		items[i] = buildItem[T, V]{bound: bounds[i], value: values[i]}
	}

	b := &builder[T, V]{
		branches: make([]Branch[aabb.AABB3[T]], 0, len(bounds)-1),
		leaves:   make([]Leaf[aabb.AABB3[T], V], 0, len(bounds)),
	}
	root := b.split(items)

	return &BVH[aabb.AABB3[T], V]{root: root, branches: b.branches, leaves: b.leaves}, nil
}

type buildItem[T vec3.Scalar, V any] struct {
	bound aabb.AABB3[T]
	value V
}

type builder[T vec3.Scalar, V any] struct {
	branches []Branch[aabb.AABB3[T]]
	leaves   []Leaf[aabb.AABB3[T], V]
}

// split builds the subtree over items and returns its reference. Leaves are
// appended in left-to-right tree order; branches may land in any order
// since only references address them.
func (b *builder[T, V]) split(items []buildItem[T, V]) NodeRef {
	if len(items) == 1 {
		b.leaves = append(b.leaves, Leaf[aabb.AABB3[T], V]{Bound: items[0].bound, Value: items[0].value})
		return LeafRef(len(b.leaves) - 1)
	}

	enclosing := items[0].bound
	for _, it := range items[1:] {
		enclosing = enclosing.Extend(it.bound)
	}

	axis := widestAxis(enclosing)
	sort.SliceStable(items, func(i, j int) bool {
		return center(items[i].bound, axis) < center(items[j].bound, axis)
	})

	mid := len(items) / 2
	left := b.split(items[:mid])
	right := b.split(items[mid:])

	b.branches = append(b.branches, Branch[aabb.AABB3[T]]{Bound: enclosing, Left: left, Right: right})
	return BranchRef(len(b.branches) - 1)
}

// widestAxis picks the axis (0, 1 or 2) on which the box extends farthest.
// Extents are compared in float64; this only steers splits and never
// touches tree correctness, so the loss of integer precision on huge
// coordinates is acceptable.
func widestAxis[T vec3.Scalar](b aabb.AABB3[T]) int {
	axes := b.Axes()
	axis, widest := 0, width(axes.X)
	if w := width(axes.Y); w > widest {
		axis, widest = 1, w
	}
	if w := width(axes.Z); w > widest {
		axis = 2
	}
	return axis
}

func width[T vec3.Scalar](iv aabb.Interval[T]) float64 {
	return float64(iv.Hi) - float64(iv.Lo)
}

// center returns the midpoint of the box on the given axis, again only as a
// sort key.
func center[T vec3.Scalar](b aabb.AABB3[T], axis int) float64 {
	axes := b.Axes()
	var iv aabb.Interval[T]
	switch axis {
	case 0:
		iv = axes.X
	case 1:
		iv = axes.Y
	default:
		iv = axes.Z
	}
	return (float64(iv.Lo) + float64(iv.Hi)) / 2
}
