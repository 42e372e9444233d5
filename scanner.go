package multregt

import (
	"fmt"
	"slices"
	"time"
)

// pairKey is an ordered (region a, region b) pair. The order is the
// source/target order of the directive, so storage is never normalized.
type pairKey struct {
	a, b int
}

// pairTable maps directed region pairs of one region array to the record that
// won for that pair.
type pairTable map[pairKey]Record

// Scanner answers MULTREGT multiplier queries for pairs of grid cells.
//
// A Scanner is immutable once built. Queries are safe for concurrent use as
// long as the RegionProvider is safe for concurrent reads.
type Scanner struct {
	provider RegionProvider
	nx, ny   int

	// names holds the region arrays present in tables, sorted by name.
	names   []RegionArray
	tables  map[RegionArray]pairTable
	records []Record
	indexed int

	logger  *Logger
	metrics MetricsCollector
}

// New expands the directive stream and builds a Scanner from the result.
func New(directives []Directive, p RegionProvider, optFns ...Option) (*Scanner, error) {
	o := applyOptions(optFns)

	records, err := ExpandAll(directives, p, o.defaultRegion)
	o.logger.LogExpand(len(directives), len(records), err)
	if err != nil {
		return nil, err
	}

	return build(records, p, o)
}

// Build indexes normalized records. Among records with the same region array
// and (source, target) pair the last one wins; records from a region to
// itself are not indexed.
func Build(records []Record, p RegionProvider, optFns ...Option) (*Scanner, error) {
	return build(records, p, applyOptions(optFns))
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

func build(records []Record, p RegionProvider, o options) (*Scanner, error) {
	start := time.Now()

	s, err := newScanner(records, p, o)

	var indexed int
	if s != nil {
		indexed = s.indexed
	}
	took := time.Since(start)
	o.metricsCollector.RecordBuild(len(records), indexed, took, err)
	o.logger.LogBuild(len(records), indexed, took, err)

	if err != nil {
		return nil, err
	}
	return s, nil
}

func newScanner(records []Record, p RegionProvider, o options) (*Scanner, error) {
	nx, ny, nz := p.GridExtents()
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("%w: grid extents %dx%dx%d", ErrInvalidInput, nx, ny, nz)
	}

	s := &Scanner{
		provider: p,
		nx:       nx,
		ny:       ny,
		tables:   make(map[RegionArray]pairTable),
		records:  slices.Clone(records),
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}

	for i, r := range records {
		if !p.HasRegionArray(r.RegionArray) {
			return nil, fmt.Errorf("record %d: %w", i, &UnknownRegionArrayError{Name: r.RegionArray})
		}
		if r.NNC == NNCNoAquifer {
			return nil, fmt.Errorf("record %d: %w", i, &UnsupportedError{Reason: "NNC behaviour NOAQUNNC"})
		}
		if r.SourceRegion == r.TargetRegion {
			o.logger.WithRegionArray(r.RegionArray).Debug("skipping MULTREGT record within a single region",
				"record", i,
				"region", r.SourceRegion,
			)
			continue
		}

		t, ok := s.tables[r.RegionArray]
		if !ok {
			t = make(pairTable)
			s.tables[r.RegionArray] = t
			s.names = append(s.names, r.RegionArray)
		}
		t[pairKey{r.SourceRegion, r.TargetRegion}] = r
	}

	slices.Sort(s.names)
	for _, t := range s.tables {
		s.indexed += len(t)
	}

	return s, nil
}

// Records returns the normalized records the scanner was built from, in input
// order, including the ones that were overwritten or skipped.
func (s *Scanner) Records() []Record {
	return slices.Clone(s.records)
}

// RegionArrays returns the region arrays that hold at least one indexed pair,
// in the order queries consult them.
func (s *Scanner) RegionArrays() []RegionArray {
	return slices.Clone(s.names)
}

// Len returns the number of indexed region pairs across all region arrays.
func (s *Scanner) Len() int {
	return s.indexed
}
