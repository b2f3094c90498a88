// Package spatialgo provides an embedded spatial index for Go.
//
// Spatialgo indexes axis-aligned bounding boxes in a static bounding volume
// hierarchy (BVH) and answers volume queries with lazy, ordered, pruned
// traversals. Build once, query from as many goroutines as you like: the
// index is immutable and queries never allocate shared state.
//
// # Quick Start
//
//	bounds := []aabb.AABB3[int64]{
//	    aabb.New(vec3.New[int64](0, 0, 0), vec3.New[int64](10, 10, 10)),
//	    aabb.New(vec3.New[int64](20, 20, 20), vec3.New[int64](30, 30, 30)),
//	}
//	ix, _ := spatialgo.New(bounds, []string{"a", "b"})
//
//	halfspace := plane.New(vec3.New[int64](15, 0, 0), vec3.New[int64](1, 0, 0))
//	for v := range ix.Query(halfspace) {
//	    fmt.Println(*v) // payloads below the plane, in leaf order
//	}
//
// # Query Bodies
//
// Anything implementing aabb.Query can drive a traversal. The repository
// ships two bodies: plane.Plane3, a half-space that classifies a box from
// its two extremal corners, and aabb.AABB3 itself, a volume range query. Bodies
// classify bounds as Disjoint, Partial or FullyContained; traversal prunes
// Disjoint subtrees and accepts FullyContained ones wholesale without
// descending further.
//
// # Laziness and Ordering
//
// Query returns an iter.Seq: no work happens until ranged, breaking out
// stops the traversal, and ranging again restarts it from scratch. Results
// always arrive in leaf order, the left-to-right order of the tree, so two
// queries over the same index enumerate common matches in a common order.
//
// # Result Sets as Bitmaps
//
// QueryBitmap materializes matched leaf indices as a roaring bitmap, which
// turns composed conditions into set algebra:
//
//	in := ix.QueryBitmap(region)
//	in.AndNot(ix.QueryBitmap(excluded))
//	for v := range ix.Payloads(in) {
//	    // region minus excluded
//	}
//
// # Key Features
//
//   - Strict binary BVH with tagged integer node references, no pointers
//   - Non-recursive traversal, explicit stack bounded by tree height
//   - FullyContained shortcut emits whole leaf ranges without re-testing
//   - Exact integer half-space classification, two corners instead of eight
//   - Concurrent batch queries over one shared tree (errgroup, bounded)
//   - Structured logging (slog) and pluggable metrics, both off by default
package spatialgo
