package bvh

// NodeRef is a compact reference to a node in a BVH: the low bit tags the
// node kind (1 for branch, 0 for leaf) and the remaining bits hold the
// index into the corresponding node array. One integer type for both kinds
// keeps branches storing two child references without boxing or an extra
// tag byte.
type NodeRef uint

// BranchRef encodes a reference to the branch at index i.
func BranchRef(i int) NodeRef {
	return NodeRef(i)<<1 | 1
}

// LeafRef encodes a reference to the leaf at index i.
func LeafRef(i int) NodeRef {
	return NodeRef(i) << 1
}

// Split decodes the reference into its array index and node kind.
func (r NodeRef) Split() (index int, isBranch bool) {
	return int(r >> 1), r&1 != 0
}
