// Package testutil provides seeded random generation of the geometric data
// used in tests and benchmarks across the repository.
//
// This package is intended for use in tests and benchmarks only.
//
// # Reproducibility
//
// Every generator draws from an explicit RNG, so a failing randomized test
// is replayed by pinning the seed:
//
//	SPATIAL_TEST_SEED=1337 go test ./...
//
// FromEnv reads the variable and falls back to DefaultSeed, which keeps CI
// runs deterministic by default.
//
// # Value Ranges
//
// Coordinates are uniform over half the int32 range. Classifying a box
// against a plane multiplies coordinate differences by normal components
// and sums three products, and this range keeps the worst case inside
// int64.
package testutil
