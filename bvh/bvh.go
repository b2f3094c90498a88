// Package bvh implements an immutable bounding volume hierarchy with a
// lazy, pruned, strictly ordered traversal.
//
// The hierarchy is a strict binary tree: every branch has exactly two
// children. A tree holding n payloads therefore has exactly n-1 branches,
// which lets branches and leaves live in two flat arrays addressed by
// tagged NodeRef values instead of pointers. The leaf array is kept in the
// left-to-right order of the tree, and that order defines the enumeration
// order of every query result.
//
// Assembly is left to builders such as BuildAABB or to callers with domain
// knowledge; granularity, depth and balance are the assembler's trade-offs.
// A finished tree is never mutated, so any number of goroutines may query
// it concurrently without locks.
package bvh

import (
	"errors"
	"iter"
	"slices"

	"github.com/hupe1980/spatialgo/aabb"
)

// ErrLengthMismatch is returned by builders when the bounds and payloads
// differ in length.
var ErrLengthMismatch = errors.New("bvh: bounds and values differ in length")

// Branch is an interior node: a bound enclosing everything below both
// children.
type Branch[B any] struct {
	Bound B
	Left  NodeRef
	Right NodeRef
}

// Leaf pairs a bound with a stored payload.
type Leaf[B, V any] struct {
	Bound B
	Value V
}

// BVH is an immutable bounding volume hierarchy over bound type B and
// payload type V. The zero value is the empty tree.
type BVH[B, V any] struct {
	root     NodeRef
	branches []Branch[B]
	leaves   []Leaf[B, V]
}

// Stats describes the shape of a tree.
type Stats struct {
	// Leaves is the number of stored payloads.
	Leaves int
	// Branches is the number of interior nodes, always Leaves-1 on a
	// non-empty tree.
	Branches int
	// Height is the number of edges on the longest root-to-leaf path.
	Height int
}

// New assembles a tree from a root reference and prebuilt node arrays. The
// arrays are copied.
//
// New trusts the assembler's structure and does not walk the tree: child
// references must be in range and acyclic, a tree with n leaves must carry
// exactly n-1 branches, every branch must be referenced exactly once, and
// the leaf array must be in left-to-right tree order. A violated reference
// surfaces as an out-of-range panic during traversal. The empty tree is
// LeafRef(0) with no nodes, more conveniently had from Empty.
func New[B, V any](root NodeRef, branches []Branch[B], leaves []Leaf[B, V]) *BVH[B, V] {
	return &BVH[B, V]{
		root:     root,
		branches: slices.Clone(branches),
		leaves:   slices.Clone(leaves),
	}
}

// Empty returns a tree with no nodes.
func Empty[B, V any]() *BVH[B, V] {
	return &BVH[B, V]{root: LeafRef(0)}
}

// Len returns the number of stored payloads.
func (t *BVH[B, V]) Len() int {
	return len(t.leaves)
}

// Root returns the reference to the root node. On the empty tree it is
// LeafRef(0) with no leaf behind it.
func (t *BVH[B, V]) Root() NodeRef {
	return t.root
}

// At returns a pointer to the payload of leaf i, counted in leaf order.
// The pointer stays valid for the lifetime of the tree.
func (t *BVH[B, V]) At(i int) *V {
	return &t.leaves[i].Value
}

// LeafBound returns the bound of leaf i.
func (t *BVH[B, V]) LeafBound(i int) B {
	return t.leaves[i].Bound
}

// Branch returns the branch at index i, for tools that inspect or rebuild
// trees.
func (t *BVH[B, V]) Branch(i int) Branch[B] {
	return t.branches[i]
}

// Bound returns the bound enclosing the whole tree. ok is false on the
// empty tree.
func (t *BVH[B, V]) Bound() (bound B, ok bool) {
	if t.empty() {
		var zero B
		return zero, false
	}
	i, isBranch := t.root.Split()
	if isBranch {
		return t.branches[i].Bound, true
	}
	return t.leaves[i].Bound, true
}

// Stats walks the tree and reports its shape. The empty tree has all-zero
// stats.
func (t *BVH[B, V]) Stats() Stats {
	s := Stats{Leaves: len(t.leaves), Branches: len(t.branches)}
	if t.empty() {
		return s
	}
	type frame struct {
		ref   NodeRef
		depth int
	}
	stack := []frame{{ref: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, isBranch := f.ref.Split()
		if !isBranch {
			s.Height = max(s.Height, f.depth)
			continue
		}
		stack = append(stack,
			frame{ref: t.branches[i].Left, depth: f.depth + 1},
			frame{ref: t.branches[i].Right, depth: f.depth + 1},
		)
	}
	return s
}

func (t *BVH[B, V]) empty() bool {
	return len(t.leaves) == 0
}

// leftmost returns the index of the first leaf in the subtree under the
// given branch, following left children all the way down.
func (t *BVH[B, V]) leftmost(branch int) int {
	node := &t.branches[branch]
	for {
		i, isBranch := node.Left.Split()
		if !isBranch {
			return i
		}
		node = &t.branches[i]
	}
}

// rightmost returns the index of the last leaf in the subtree under the
// given branch, following right children all the way down.
func (t *BVH[B, V]) rightmost(branch int) int {
	node := &t.branches[branch]
	for {
		i, isBranch := node.Right.Split()
		if !isBranch {
			return i
		}
		node = &t.branches[i]
	}
}

// QueryIndices returns a lazy sequence of the leaf indices matched by q, in
// ascending leaf order. Every range over the sequence runs an independent
// traversal whose only state is a stack bounded by the tree height, so the
// sequence may be ranged repeatedly; breaking out abandons the traversal
// with no further classification work.
//
// The traversal prunes Disjoint subtrees, descends into Partial ones and
// short-circuits FullyContained ones by emitting their contiguous leaf
// range without testing any node below.
func (t *BVH[B, V]) QueryIndices(q aabb.Query[B]) iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.empty() {
			return
		}
		var stack []NodeRef
		stack = append(stack, t.root)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			idx, isBranch := top.Split()
			if isBranch {
				branch := &t.branches[idx]
				switch q.Check(branch.Bound) {
				case aabb.Partial:
					// Descend left; the matching right child is pushed later,
					// when backtracking ascends through this branch.
					stack = append(stack, branch.Left)
					continue
				case aabb.FullyContained:
					for i, last := t.leftmost(idx), t.rightmost(idx); i <= last; i++ {
						if !yield(i) {
							return
						}
					}
				}
			} else if q.Check(t.leaves[idx].Bound) != aabb.Disjoint {
				if !yield(idx) {
					return
				}
			}
			stack = t.backtrack(stack)
		}
	}
}

// backtrack pops the finished top of the stack and ascends: as long as the
// finished node was a right child its parent is finished too, and the first
// time it was a left child the traversal switches to the right sibling.
// Interior stack entries are parents of the node above them, so they are
// branches without exception.
func (t *BVH[B, V]) backtrack(stack []NodeRef) []NodeRef {
	child := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	for len(stack) > 0 {
		i, isBranch := stack[len(stack)-1].Split()
		if !isBranch {
			panic("bvh: leaf on the interior of the traversal stack")
		}
		parent := &t.branches[i]
		if child == parent.Left {
			return append(stack, parent.Right)
		}
		child = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	return stack
}

// Query returns a lazy sequence of pointers to the payloads matched by q,
// in leaf order. The pointers stay valid for the lifetime of the tree;
// queries never mutate it. The sequence is restartable and stops cleanly
// when the consumer breaks early.
func (t *BVH[B, V]) Query(q aabb.Query[B]) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for i := range t.QueryIndices(q) {
			if !yield(&t.leaves[i].Value) {
				return
			}
		}
	}
}

// Scan returns the payloads matched by q from a plain linear pass over the
// leaf array, ignoring the hierarchy. For query bodies honoring the nesting
// contract on aabb.Query it yields exactly what Query yields, in the same
// order. Where that contract breaks down, as with a flat leaf bound in exact
// boundary contact with the body, Scan still yields the leaf while Query
// prunes it together with its Disjoint ancestors. Scan is the ground truth
// the pruned traversal is tested against as well as a reasonable choice for
// very small trees.
func (t *BVH[B, V]) Scan(q aabb.Query[B]) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for i := range t.leaves {
			if q.Check(t.leaves[i].Bound) == aabb.Disjoint {
				continue
			}
			if !yield(&t.leaves[i].Value) {
				return
			}
		}
	}
}
