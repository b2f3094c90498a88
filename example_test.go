package spatialgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/spatialgo"
	"github.com/hupe1980/spatialgo/aabb"
	"github.com/hupe1980/spatialgo/plane"
	"github.com/hupe1980/spatialgo/vec3"
)

// Example_query demonstrates building an index and draining a half-space
// query.
func Example_query() {
	bounds := []aabb.AABB3[int64]{
		aabb.New(vec3.New[int64](0, 0, 0), vec3.New[int64](10, 10, 10)),
		aabb.New(vec3.New[int64](20, 0, 0), vec3.New[int64](30, 10, 10)),
		aabb.New(vec3.New[int64](40, 0, 0), vec3.New[int64](50, 10, 10)),
	}
	ix, err := spatialgo.New(bounds, []string{"crate", "barrel", "cart"})
	if err != nil {
		log.Fatal(err)
	}

	// Everything below the plane x = 35.
	halfspace := plane.New(vec3.New[int64](35, 0, 0), vec3.New[int64](1, 0, 0))
	for v := range ix.Query(halfspace) {
		fmt.Println(*v)
	}
	// Output:
	// crate
	// barrel
}

// Example_rangeQuery demonstrates a box acting as its own query body.
func Example_rangeQuery() {
	bounds := []aabb.AABB3[int64]{
		aabb.New(vec3.New[int64](0, 0, 0), vec3.New[int64](10, 10, 10)),
		aabb.New(vec3.New[int64](20, 0, 0), vec3.New[int64](30, 10, 10)),
		aabb.New(vec3.New[int64](40, 0, 0), vec3.New[int64](50, 10, 10)),
	}
	ix, err := spatialgo.New(bounds, []string{"crate", "barrel", "cart"})
	if err != nil {
		log.Fatal(err)
	}

	region := aabb.New(vec3.New[int64](15, -5, -5), vec3.New[int64](55, 15, 15))
	for v := range ix.Query(region) {
		fmt.Println(*v)
	}
	// Output:
	// barrel
	// cart
}

// Example_queryBitmap demonstrates composing two query results with bitmap
// set algebra before resolving payloads.
func Example_queryBitmap() {
	bounds := []aabb.AABB3[int64]{
		aabb.New(vec3.New[int64](0, 0, 0), vec3.New[int64](10, 10, 10)),
		aabb.New(vec3.New[int64](20, 0, 0), vec3.New[int64](30, 10, 10)),
		aabb.New(vec3.New[int64](40, 0, 0), vec3.New[int64](50, 10, 10)),
	}
	ix, err := spatialgo.New(bounds, []string{"crate", "barrel", "cart"})
	if err != nil {
		log.Fatal(err)
	}

	west := ix.QueryBitmap(aabb.New(vec3.New[int64](-5, -5, -5), vec3.New[int64](35, 15, 15)))
	east := ix.QueryBitmap(aabb.New(vec3.New[int64](15, -5, -5), vec3.New[int64](55, 15, 15)))

	west.And(east)
	for v := range ix.Payloads(west) {
		fmt.Println(*v)
	}
	// Output: barrel
}

// Example_batchQuery demonstrates draining several queries concurrently.
func Example_batchQuery() {
	bounds := []aabb.AABB3[int64]{
		aabb.New(vec3.New[int64](0, 0, 0), vec3.New[int64](10, 10, 10)),
		aabb.New(vec3.New[int64](20, 0, 0), vec3.New[int64](30, 10, 10)),
		aabb.New(vec3.New[int64](40, 0, 0), vec3.New[int64](50, 10, 10)),
	}
	ix, err := spatialgo.New(bounds, []string{"crate", "barrel", "cart"},
		spatialgo.WithConcurrency(2),
	)
	if err != nil {
		log.Fatal(err)
	}

	results, err := ix.BatchQuery(context.Background(), []aabb.Query[aabb.AABB3[int64]]{
		plane.New(vec3.New[int64](15, 0, 0), vec3.New[int64](1, 0, 0)),
		plane.New(vec3.New[int64](35, 0, 0), vec3.New[int64](1, 0, 0)),
	})
	if err != nil {
		log.Fatal(err)
	}

	for i, matches := range results {
		fmt.Printf("query %d matched %d\n", i, len(matches))
	}
	// Output:
	// query 0 matched 1
	// query 1 matched 2
}

// Example_metrics demonstrates collecting basic operational metrics.
func Example_metrics() {
	metrics := &spatialgo.BasicMetricsCollector{}

	bounds := []aabb.AABB3[int64]{
		aabb.New(vec3.New[int64](0, 0, 0), vec3.New[int64](10, 10, 10)),
		aabb.New(vec3.New[int64](20, 0, 0), vec3.New[int64](30, 10, 10)),
	}
	ix, err := spatialgo.New(bounds, []string{"crate", "barrel"},
		spatialgo.WithMetricsCollector(metrics),
	)
	if err != nil {
		log.Fatal(err)
	}

	halfspace := plane.New(vec3.New[int64](15, 0, 0), vec3.New[int64](1, 0, 0))
	for range ix.Query(halfspace) {
	}

	stats := metrics.GetStats()
	fmt.Printf("builds=%d queries=%d matched=%d\n", stats.BuildCount, stats.QueryCount, stats.QueryMatched)
	// Output: builds=1 queries=1 matched=1
}
