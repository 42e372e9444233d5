// Package testutil provides testing utilities for multregt.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG and helpers for building region fixtures and random
// directive streams.
//
// # Region Fixtures
//
//	rng := testutil.NewRNG(seed)
//	props := testutil.Properties(t, 10, 10, 1, map[multregt.RegionArray][]int{
//	    multregt.Multnum: rng.RegionValues(100, 4),
//	})
//
// # Random Directives
//
//	directives := rng.Directives(50, 4)
package testutil
