package aabb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialgo/aabb"
	"github.com/hupe1980/spatialgo/testutil"
	"github.com/hupe1980/spatialgo/vec3"
)

func box(x0, y0, z0, x1, y1, z1 int64) aabb.AABB3[int64] {
	return aabb.New(vec3.New(x0, y0, z0), vec3.New(x1, y1, z1))
}

func TestNew(t *testing.T) {
	t.Run("CornerPairIrrelevant", func(t *testing.T) {
		lo := vec3.New[int64](-1, -2, -3)
		hi := vec3.New[int64](4, 5, 6)

		expected := aabb.New(lo, hi)
		assert.Equal(t, expected, aabb.New(hi, lo))

		// Any pair of opposite corners spans the same box.
		assert.Equal(t, expected, aabb.New(
			vec3.New[int64](-1, 5, -3),
			vec3.New[int64](4, -2, 6),
		))
		assert.Equal(t, expected, aabb.New(
			vec3.New[int64](4, -2, -3),
			vec3.New[int64](-1, 5, 6),
		))
	})

	t.Run("MinMax", func(t *testing.T) {
		b := box(4, -2, 6, -1, 5, -3)
		assert.Equal(t, vec3.New[int64](-1, -2, -3), b.Min())
		assert.Equal(t, vec3.New[int64](4, 5, 6), b.Max())
	})

	t.Run("FromAxesRoundTrip", func(t *testing.T) {
		b := box(0, 1, 2, 10, 11, 12)
		assert.Equal(t, b, aabb.FromAxes(b.Axes()))
	})
}

func TestExtend(t *testing.T) {
	t.Run("SmallestContaining", func(t *testing.T) {
		a := box(0, 0, 0, 5, 5, 5)
		b := box(10, -3, 2, 12, 4, 3)

		got := a.Extend(b)
		assert.Equal(t, box(0, -3, 0, 12, 5, 5), got)
		assert.True(t, got.Contains(a))
		assert.True(t, got.Contains(b))
	})

	t.Run("Commutative", func(t *testing.T) {
		rng := testutil.FromEnv()
		for range 10000 {
			a, b := rng.Box(), rng.Box()
			require.Equalf(t, a.Extend(b), b.Extend(a), "seed %d, a=%+v b=%+v", rng.Seed(), a, b)
		}
	})

	t.Run("Associative", func(t *testing.T) {
		rng := testutil.FromEnv()
		for range 10000 {
			a, b, c := rng.Box(), rng.Box(), rng.Box()
			require.Equalf(t, a.Extend(b).Extend(c), a.Extend(b.Extend(c)), "seed %d, a=%+v b=%+v c=%+v", rng.Seed(), a, b, c)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		rng := testutil.FromEnv()
		for range 10000 {
			a := rng.Box()
			require.Equalf(t, a, a.Extend(a), "seed %d, a=%+v", rng.Seed(), a)
		}
	})
}

func TestIntersect(t *testing.T) {
	t.Run("Overlapping", func(t *testing.T) {
		shared, ok := box(0, 0, 0, 10, 10, 10).Intersect(box(5, 5, 5, 15, 15, 15))
		require.True(t, ok)
		assert.Equal(t, box(5, 5, 5, 10, 10, 10), shared)
		assert.True(t, shared.HasVolume())
	})

	t.Run("Nested", func(t *testing.T) {
		inner := box(2, 2, 2, 3, 3, 3)
		shared, ok := box(0, 0, 0, 10, 10, 10).Intersect(inner)
		require.True(t, ok)
		assert.Equal(t, inner, shared)
	})

	t.Run("FaceContact", func(t *testing.T) {
		// Sharing the x=10 face: the intersection exists but is flat.
		shared, ok := box(0, 0, 0, 10, 10, 10).Intersect(box(10, 0, 0, 20, 10, 10))
		require.True(t, ok)
		assert.False(t, shared.HasVolume())
	})

	t.Run("Disjoint", func(t *testing.T) {
		_, ok := box(0, 0, 0, 1, 1, 1).Intersect(box(5, 5, 5, 6, 6, 6))
		assert.False(t, ok)
	})

	t.Run("SelfIdentity", func(t *testing.T) {
		rng := testutil.FromEnv()
		for range 10000 {
			a := rng.Box()
			shared, ok := a.Intersect(a)
			require.Truef(t, ok, "seed %d, a=%+v", rng.Seed(), a)
			require.Equalf(t, a, shared, "seed %d, a=%+v", rng.Seed(), a)
		}
	})

	t.Run("Commutative", func(t *testing.T) {
		rng := testutil.FromEnv()
		for range 10000 {
			a, b := rng.Box(), rng.Box()
			ab, okAB := a.Intersect(b)
			ba, okBA := b.Intersect(a)
			require.Equalf(t, okAB, okBA, "seed %d, a=%+v b=%+v", rng.Seed(), a, b)
			require.Equalf(t, ab, ba, "seed %d, a=%+v b=%+v", rng.Seed(), a, b)
		}
	})
}

func TestHasVolume(t *testing.T) {
	assert.True(t, box(0, 0, 0, 1, 1, 1).HasVolume())
	assert.False(t, box(0, 0, 0, 0, 1, 1).HasVolume(), "flat on x")
	assert.False(t, box(0, 0, 0, 1, 1, 0).HasVolume(), "flat on z")
	assert.False(t, box(2, 2, 2, 2, 2, 2).HasVolume(), "point")
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     aabb.AABB3[int64]
		expected bool
	}{
		{"SharedVolume", box(0, 0, 0, 10, 10, 10), box(5, 5, 5, 15, 15, 15), true},
		{"Nested", box(0, 0, 0, 10, 10, 10), box(2, 2, 2, 3, 3, 3), true},
		{"FaceContact", box(0, 0, 0, 10, 10, 10), box(10, 0, 0, 20, 10, 10), false},
		{"EdgeContact", box(0, 0, 0, 10, 10, 10), box(10, 10, 0, 20, 20, 10), false},
		{"CornerContact", box(0, 0, 0, 10, 10, 10), box(10, 10, 10, 20, 20, 20), false},
		{"Separated", box(0, 0, 0, 1, 1, 1), box(5, 5, 5, 6, 6, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}

	t.Run("Randomized", func(t *testing.T) {
		rng := testutil.FromEnv()
		for range 10000 {
			a, b := rng.Box(), rng.Box()
			shared, ok := a.Intersect(b)
			expected := ok && shared.HasVolume()
			require.Equalf(t, expected, a.Overlaps(b), "seed %d, a=%+v b=%+v", rng.Seed(), a, b)
			require.Equalf(t, expected, b.Overlaps(a), "seed %d, a=%+v b=%+v", rng.Seed(), a, b)
		}
	})
}

func TestContains(t *testing.T) {
	outer := box(0, 0, 0, 10, 10, 10)
	assert.True(t, outer.Contains(box(2, 2, 2, 3, 3, 3)))
	assert.True(t, outer.Contains(outer))
	assert.True(t, outer.Contains(box(0, 0, 0, 10, 10, 0)), "flat box on the boundary")
	assert.False(t, outer.Contains(box(2, 2, 2, 11, 3, 3)))
	assert.False(t, outer.Contains(box(20, 20, 20, 30, 30, 30)))
}

func TestCheck(t *testing.T) {
	q := box(0, 0, 0, 10, 10, 10)

	tests := []struct {
		name     string
		bound    aabb.AABB3[int64]
		expected aabb.Relation
	}{
		{"Inside", box(2, 2, 2, 3, 3, 3), aabb.FullyContained},
		{"Exact", q, aabb.FullyContained},
		{"Straddling", box(5, 5, 5, 15, 15, 15), aabb.Partial},
		{"Surrounding", box(-5, -5, -5, 15, 15, 15), aabb.Partial},
		{"FaceContact", box(10, 0, 0, 20, 10, 10), aabb.Disjoint},
		{"Separated", box(20, 20, 20, 30, 30, 30), aabb.Disjoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, q.Check(tt.bound))
		})
	}
}

func TestSelectBySign(t *testing.T) {
	b := box(0, 10, 20, 1, 11, 21)

	tests := []struct {
		name     string
		sign     vec3.SignVec
		outgoing vec3.Vec3[int64]
		incoming vec3.Vec3[int64]
	}{
		{"AllPositive", vec3.New(vec3.Positive, vec3.Positive, vec3.Positive), vec3.New[int64](1, 11, 21), vec3.New[int64](0, 10, 20)},
		{"AllNegative", vec3.New(vec3.Negative, vec3.Negative, vec3.Negative), vec3.New[int64](0, 10, 20), vec3.New[int64](1, 11, 21)},
		{"Mixed", vec3.New(vec3.Positive, vec3.Negative, vec3.Zero), vec3.New[int64](1, 10, 20), vec3.New[int64](0, 11, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outgoing, incoming := b.SelectBySign(tt.sign)
			assert.Equal(t, tt.outgoing, outgoing)
			assert.Equal(t, tt.incoming, incoming)
		})
	}

	t.Run("ExtremalAmongCorners", func(t *testing.T) {
		// The selected pair must bracket the dot products of all eight
		// corners along the direction.
		rng := testutil.FromEnv()
		for range 10000 {
			b := rng.Box()
			_, dir := rng.PointNormal()

			outgoing, incoming := b.SelectBySign(vec3.SignOf(dir))
			far, near := vec3.Dot(outgoing, dir), vec3.Dot(incoming, dir)

			for _, c := range b.Corners() {
				d := vec3.Dot(c, dir)
				require.LessOrEqualf(t, d, far, "seed %d, box=%+v dir=%+v", rng.Seed(), b, dir)
				require.GreaterOrEqualf(t, d, near, "seed %d, box=%+v dir=%+v", rng.Seed(), b, dir)
			}
		}
	})
}

func TestCorners(t *testing.T) {
	corners := box(0, 0, 0, 1, 1, 1).Corners()

	seen := make(map[vec3.Vec3[int64]]struct{}, 8)
	for _, c := range corners {
		for _, coord := range []int64{c.X, c.Y, c.Z} {
			assert.Contains(t, []int64{0, 1}, coord)
		}
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, 8)
}

func TestRelationString(t *testing.T) {
	assert.Equal(t, "Disjoint", aabb.Disjoint.String())
	assert.Equal(t, "Partial", aabb.Partial.String())
	assert.Equal(t, "FullyContained", aabb.FullyContained.String())
	assert.Equal(t, "Relation(42)", aabb.Relation(42).String())
}

func TestQueryFunc(t *testing.T) {
	var q aabb.Query[aabb.AABB3[int64]] = aabb.QueryFunc[aabb.AABB3[int64]](func(aabb.AABB3[int64]) aabb.Relation {
		return aabb.Partial
	})
	assert.Equal(t, aabb.Partial, q.Check(box(0, 0, 0, 1, 1, 1)))
}
