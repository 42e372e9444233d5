package region

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/multregt"
)

var (
	// ErrInvalidExtents is returned for a grid with a non-positive dimension.
	ErrInvalidExtents = errors.New("invalid grid extents")

	// ErrLengthMismatch is returned when a region array does not cover every cell.
	ErrLengthMismatch = errors.New("region array length mismatch")

	// ErrInvalidRegionID is returned for region ids outside [0, MaxInt32].
	ErrInvalidRegionID = errors.New("invalid region id")
)

type array struct {
	values   []int
	distinct *roaring.Bitmap
}

// Properties is a set of region arrays over a grid of NX*NY*NZ cells.
//
// Properties is not safe for concurrent mutation; once populated it is safe for
// concurrent reads.
type Properties struct {
	nx, ny, nz int
	arrays     map[multregt.RegionArray]*array
}

var _ multregt.RegionProvider = (*Properties)(nil)

// New creates an empty set of region arrays for the given grid.
func New(nx, ny, nz int) (*Properties, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidExtents, nx, ny, nz)
	}
	return &Properties{
		nx:     nx,
		ny:     ny,
		nz:     nz,
		arrays: make(map[multregt.RegionArray]*array),
	}, nil
}

// Cells returns the number of grid cells.
func (p *Properties) Cells() int {
	return p.nx * p.ny * p.nz
}

// Set installs values as the named region array, replacing any previous one.
// values must hold one non-negative id per cell; the slice is copied.
func (p *Properties) Set(name multregt.RegionArray, values []int) error {
	if !name.Valid() {
		return fmt.Errorf("%w: %s", multregt.ErrUnknownRegionArray, name)
	}
	if len(values) != p.Cells() {
		return fmt.Errorf("%w: %s has %d values, grid has %d cells", ErrLengthMismatch, name, len(values), p.Cells())
	}

	distinct := roaring.New()
	for cell, v := range values {
		if v < 0 || v > math.MaxInt32 {
			return fmt.Errorf("%w: %s[%d] = %d", ErrInvalidRegionID, name, cell, v)
		}
		distinct.Add(uint32(v))
	}
	distinct.RunOptimize()

	p.arrays[name] = &array{
		values:   slices.Clone(values),
		distinct: distinct,
	}
	return nil
}

// Fill installs a region array that assigns id to every cell.
func (p *Properties) Fill(name multregt.RegionArray, id int) error {
	values := make([]int, p.Cells())
	for i := range values {
		values[i] = id
	}
	return p.Set(name, values)
}

// HasRegionArray implements multregt.RegionProvider.
func (p *Properties) HasRegionArray(name multregt.RegionArray) bool {
	_, ok := p.arrays[name]
	return ok
}

// RegionID implements multregt.RegionProvider. It returns 0 for an unknown
// array or an out-of-range cell.
func (p *Properties) RegionID(name multregt.RegionArray, cell int) int {
	a, ok := p.arrays[name]
	if !ok || cell < 0 || cell >= len(a.values) {
		return 0
	}
	return a.values[cell]
}

// DistinctRegionIDs implements multregt.RegionProvider.
func (p *Properties) DistinctRegionIDs(name multregt.RegionArray) []int {
	a, ok := p.arrays[name]
	if !ok {
		return nil
	}
	ids := make([]int, 0, a.distinct.GetCardinality())
	it := a.distinct.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}

// GridExtents implements multregt.RegionProvider.
func (p *Properties) GridExtents() (nx, ny, nz int) {
	return p.nx, p.ny, p.nz
}

// Index returns the linear index of cell (i, j, k).
func (p *Properties) Index(i, j, k int) int {
	return i + p.nx*(j+p.ny*k)
}

// Coordinates returns the (i, j, k) coordinates of a linear cell index.
func (p *Properties) Coordinates(cell int) (i, j, k int) {
	return cell % p.nx, cell / p.nx % p.ny, cell / (p.nx * p.ny)
}
