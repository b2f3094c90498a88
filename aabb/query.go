package aabb

import "fmt"

// Relation classifies a bound against a query body. The three cases drive
// pruning in hierarchical indexes: Disjoint cuts a subtree off, Partial
// descends into it, FullyContained accepts it wholesale.
type Relation int

const (
	// Disjoint means the query body and the bound do not share volume;
	// nothing inside the bound can match.
	Disjoint Relation = iota

	// Partial means the query body reaches into the bound without covering
	// it; contents must be tested individually.
	Partial

	// FullyContained means the query body covers the bound completely;
	// everything inside matches with no further tests.
	FullyContained
)

// String returns the name of the relation.
func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case Partial:
		return "Partial"
	case FullyContained:
		return "FullyContained"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Query is a query body that classifies bounds of type B.
//
// Implementations must classify consistently with respect to nesting: any
// bound inside a Disjoint bound must itself be Disjoint, and any bound
// inside a FullyContained bound must itself be FullyContained. Index
// traversals rely on this to prune and to shortcut whole subtrees; an
// implementation that violates it silently corrupts result sets.
type Query[B any] interface {
	// Check classifies the given bound against the query body.
	Check(bound B) Relation
}

// QueryFunc adapts an ordinary function to the Query interface.
type QueryFunc[B any] func(bound B) Relation

// Check calls f(bound).
func (f QueryFunc[B]) Check(bound B) Relation { return f(bound) }
