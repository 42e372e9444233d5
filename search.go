package multregt

import (
	"github.com/hupe1980/multregt/facedir"
)

// Multiplier returns the transmissibility multiplier for the connection
// between cells a and b (linear indices) across face, or 1 when no record
// applies.
//
// Region arrays are consulted in lexicographic order and the first applicable
// record wins; multipliers from several region arrays are never combined.
func (s *Scanner) Multiplier(a, b int, face facedir.Dir) float64 {
	r, ok := s.Lookup(a, b, face)
	if !ok {
		return 1
	}
	return r.Multiplier
}

// Lookup returns the record Multiplier would apply, if any.
func (s *Scanner) Lookup(a, b int, face facedir.Dir) (Record, bool) {
	r, ok := s.lookup(a, b, face)
	s.metrics.RecordQuery(ok)
	return r, ok
}

func (s *Scanner) lookup(a, b int, face facedir.Dir) (Record, bool) {
	for _, name := range s.names {
		regionA := s.provider.RegionID(name, a)
		regionB := s.provider.RegionID(name, b)

		r, ok := s.tables[name].match(regionA, regionB, face)
		if !ok {
			continue
		}
		if r.NNC.applies(s.neighbours(a, b)) {
			return r, true
		}
	}
	return Record{}, false
}

// match tries the (a, b) pair first and falls back to (b, a). A record whose
// directions exclude face does not match.
func (t pairTable) match(a, b int, face facedir.Dir) (Record, bool) {
	if r, ok := t[pairKey{a, b}]; ok && r.Directions.Has(face) {
		return r, true
	}
	if r, ok := t[pairKey{b, a}]; ok && r.Directions.Has(face) {
		return r, true
	}
	return Record{}, false
}

// neighbours reports whether two cells are ordinary neighbours: one step apart
// along exactly one of the i and j axes. The k coordinate is not considered.
func (s *Scanner) neighbours(a, b int) bool {
	i1, j1 := a%s.nx, a/s.nx%s.ny
	i2, j2 := b%s.nx, b/s.nx%s.ny
	return abs(i1-i2)+abs(j1-j2) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
