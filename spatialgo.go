package spatialgo

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/spatialgo/aabb"
	"github.com/hupe1980/spatialgo/bvh"
	"github.com/hupe1980/spatialgo/vec3"
)

// Index is an immutable spatial index over axis-aligned boxes. It wraps a
// bounding volume hierarchy with the operational concerns a library
// embedding it wants switched on: structured logging, metrics and bounded
// batch concurrency. The tree itself stays in the bvh package and can be
// used without any of this.
//
// An Index is safe for concurrent queries from any number of goroutines.
type Index[T vec3.Scalar, V any] struct {
	tree        *bvh.BVH[aabb.AABB3[T], V]
	logger      *Logger
	metrics     MetricsCollector
	concurrency int
}

// New builds an index over the given boxes and their payloads. bounds[i]
// bounds values[i]; the two must have equal length. Zero items make a valid
// empty index.
func New[T vec3.Scalar, V any](bounds []aabb.AABB3[T], values []V, optFns ...Option) (*Index[T, V], error) {
	o := applyOptions(optFns)

	start := time.Now()
	tree, err := bvh.BuildAABB(bounds, values)
	o.metricsCollector.RecordBuild(len(bounds), time.Since(start), err)
	o.logger.LogBuild(len(bounds), err)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	return newIndex(tree, o)
}

// FromTree wraps an already assembled tree, for callers that build their
// hierarchy with domain knowledge instead of the default median splits.
func FromTree[T vec3.Scalar, V any](tree *bvh.BVH[aabb.AABB3[T], V], optFns ...Option) (*Index[T, V], error) {
	return newIndex(tree, applyOptions(optFns))
}

func newIndex[T vec3.Scalar, V any](tree *bvh.BVH[aabb.AABB3[T], V], o options) (*Index[T, V], error) {
	if o.concurrency < 0 {
		return nil, &ErrInvalidConcurrency{Concurrency: o.concurrency}
	}
	return &Index[T, V]{
		tree: tree,
		// Query and batch log lines carry the index size.
		logger:      o.logger.WithCount(tree.Len()),
		metrics:     o.metricsCollector,
		concurrency: o.concurrency,
	}, nil
}

// Len returns the number of indexed payloads.
func (ix *Index[T, V]) Len() int {
	return ix.tree.Len()
}

// Bound returns the box enclosing everything in the index. ok is false on
// an empty index.
func (ix *Index[T, V]) Bound() (bound aabb.AABB3[T], ok bool) {
	return ix.tree.Bound()
}

// Stats reports the shape of the underlying tree.
func (ix *Index[T, V]) Stats() bvh.Stats {
	return ix.tree.Stats()
}

// Tree exposes the underlying hierarchy for callers that need its lower
// level surface, such as leaf bounds or raw index sequences.
func (ix *Index[T, V]) Tree() *bvh.BVH[aabb.AABB3[T], V] {
	return ix.tree
}

// Query returns a lazy sequence of pointers to the payloads matched by q,
// in leaf order. The sequence may be ranged repeatedly; each range is an
// independent traversal, and breaking out stops all remaining work. Metrics
// and logging record every iteration when it ends, drained or not.
func (ix *Index[T, V]) Query(q aabb.Query[aabb.AABB3[T]]) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		start := time.Now()
		matched := 0
		drained := false
		defer func() {
			ix.metrics.RecordQuery(matched, time.Since(start), drained)
			ix.logger.LogQuery(matched, drained)
		}()

		for v := range ix.tree.Query(q) {
			matched++
			if !yield(v) {
				return
			}
		}
		drained = true
	}
}

// QueryBitmap materializes the set of leaf indices matched by q as a
// roaring bitmap. Bitmaps from several queries over the same index compose
// with set algebra (And, Or, AndNot) before Payloads resolves the survivors,
// which keeps intersection and difference of query results off the payload
// path entirely.
func (ix *Index[T, V]) QueryBitmap(q aabb.Query[aabb.AABB3[T]]) *roaring.Bitmap {
	start := time.Now()
	bm := roaring.New()
	for i := range ix.tree.QueryIndices(q) {
		bm.Add(uint32(i))
	}
	ix.metrics.RecordQuery(int(bm.GetCardinality()), time.Since(start), true)
	ix.logger.LogQuery(int(bm.GetCardinality()), true)
	return bm
}

// Payloads resolves a bitmap of leaf indices, typically composed from
// QueryBitmap results, back to payload pointers in leaf order.
func (ix *Index[T, V]) Payloads(bm *roaring.Bitmap) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(ix.tree.At(int(it.Next()))) {
				return
			}
		}
	}
}

// BatchQuery drains many independent queries concurrently and returns one
// result slice per query, in query order. The tree is immutable, so the
// traversals share it without locks; each individual traversal stays
// single-threaded. The concurrency limit comes from WithConcurrency and
// defaults to GOMAXPROCS. Cancelling ctx abandons queries that have not
// started; running traversals finish their drain.
func (ix *Index[T, V]) BatchQuery(ctx context.Context, queries []aabb.Query[aabb.AABB3[T]]) ([][]*V, error) {
	start := time.Now()

	run := func() ([][]*V, error) {
		for _, q := range queries {
			if q == nil {
				return nil, ErrNilQuery
			}
		}

		results := make([][]*V, len(queries))
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(ix.batchLimit())
		for i, q := range queries {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				for v := range ix.tree.Query(q) {
					results[i] = append(results[i], v)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}

	results, err := run()
	ix.metrics.RecordBatchQuery(len(queries), time.Since(start), err)
	ix.logger.LogBatchQuery(ctx, len(queries), err)
	return results, err
}

func (ix *Index[T, V]) batchLimit() int {
	if ix.concurrency > 0 {
		return ix.concurrency
	}
	return runtime.GOMAXPROCS(0)
}
