package testutil

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"

	"github.com/hupe1980/spatialgo/aabb"
	"github.com/hupe1980/spatialgo/bvh"
	"github.com/hupe1980/spatialgo/vec3"
)

// SeedEnv names the environment variable that overrides the test seed.
const SeedEnv = "SPATIAL_TEST_SEED"

// DefaultSeed seeds randomized tests when SPATIAL_TEST_SEED is unset.
const DefaultSeed int64 = 1

// SeedFromEnv returns the seed for randomized tests: the value of
// SPATIAL_TEST_SEED when set, DefaultSeed otherwise. A set but unparsable
// value panics rather than silently running with different data.
func SeedFromEnv() int64 {
	s, ok := os.LookupEnv(SeedEnv)
	if !ok {
		return DefaultSeed
	}
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("testutil: %s=%q is not an int64: %v", SeedEnv, s, err))
	}
	return seed
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// FromEnv creates a new RNG seeded by SeedFromEnv.
func FromEnv() *RNG {
	return NewRNG(SeedFromEnv())
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed, for failure messages.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// coord returns a uniform coordinate in half the int32 range.
func (r *RNG) coord() int64 {
	return int64(int32(r.rand.Uint32())) / 2
}

// Vec3i returns a vector with uniform coordinates in half the int32 range.
func (r *RNG) Vec3i() vec3.Vec3[int64] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vec3.New(r.coord(), r.coord(), r.coord())
}

// Box returns the canonical box spanned by two random points.
func (r *RNG) Box() aabb.AABB3[int64] {
	return aabb.New(r.Vec3i(), r.Vec3i())
}

// Boxes returns n random boxes.
func (r *RNG) Boxes(n int) []aabb.AABB3[int64] {
	boxes := make([]aabb.AABB3[int64], n)
	for i := range boxes {
		boxes[i] = r.Box()
	}
	return boxes
}

// PointNormal returns a random plane support point and a nonzero normal.
func (r *RNG) PointNormal() (point, normal vec3.Vec3[int64]) {
	point = r.Vec3i()
	zero := vec3.Vec3[int64]{}
	for normal = r.Vec3i(); normal == zero; normal = r.Vec3i() {
	}
	return point, normal
}

// Tree builds a tree over n random boxes whose payloads are the values 0
// through n-1 in input order.
func (r *RNG) Tree(n int) *bvh.BVH[aabb.AABB3[int64], int] {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	tree, err := bvh.BuildAABB(r.Boxes(n), values)
	if err != nil {
		panic(err)
	}
	return tree
}
