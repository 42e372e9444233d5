package testutil

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/multregt"
	"github.com/hupe1980/multregt/region"
)

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

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// RegionValues returns cells random region ids in [1, maxID].
// Locks only once per call.
func (r *RNG) RegionValues(cells, maxID int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	values := make([]int, cells)
	for i := range values {
		values[i] = 1 + r.rand.Intn(maxID)
	}
	return values
}

var directionCodes = []string{"X", "Y", "Z", "XY", "XZ", "YZ", "XYZ"}

// Directives returns n random MULTNUM directives between distinct explicit
// regions in [1, maxID]. maxID must be at least 2.
func (r *RNG) Directives(n, maxID int) []multregt.Directive {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]multregt.Directive, n)
	for i := range out {
		src := 1 + r.rand.Intn(maxID)
		dst := 1 + r.rand.Intn(maxID-1)
		if dst >= src {
			dst++
		}
		out[i] = multregt.Directive{
			Source:     multregt.Region(src),
			Target:     multregt.Region(dst),
			Multiplier: float64(1+r.rand.Intn(1000)) / 100,
			Directions: directionCodes[r.rand.Intn(len(directionCodes))],
			RegionCode: "M",
			NNC:        "ALL",
		}
	}
	return out
}

// Properties builds region properties for an nx*ny*nz grid holding the given
// arrays, failing the test on any error.
func Properties(tb testing.TB, nx, ny, nz int, arrays map[multregt.RegionArray][]int) *region.Properties {
	tb.Helper()
	p, err := region.New(nx, ny, nz)
	require.NoError(tb, err)
	for name, values := range arrays {
		require.NoError(tb, p.Set(name, values))
	}
	return p
}

// Columns returns region values for an nx*ny*nz grid where every cell in
// column i takes the id ids[i % len(ids)].
func Columns(nx, ny, nz int, ids ...int) []int {
	values := make([]int, nx*ny*nz)
	for cell := range values {
		values[cell] = ids[(cell%nx)%len(ids)]
	}
	return values
}
