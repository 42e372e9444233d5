package multregt

import (
	"github.com/hupe1980/multregt/facedir"
)

// Record is a MULTREGT directive resolved to one concrete pair of region ids.
type Record struct {
	SourceRegion int
	TargetRegion int
	Multiplier   float64
	Directions   facedir.Set
	NNC          NNCBehaviour
	RegionArray  RegionArray
}

// Validate rejects directives the scanner does not support: an explicit
// directive from a region to itself, and the NOAQUNNC behaviour.
func Validate(d Directive) error {
	nnc, err := d.nncBehaviour()
	if err != nil {
		return err
	}

	if d.Source.Set && d.Target.Set && d.Source.Value == d.Target.Value {
		return &UnsupportedError{Reason: "MULTREGT applied internally to a region"}
	}

	if nnc == NNCNoAquifer {
		return &UnsupportedError{Reason: "NNC behaviour NOAQUNNC"}
	}

	return nil
}

// Expand resolves a directive into records, one per (source, target) region
// pair. prev is the region array resolved for the preceding directive; the
// region array resolved for d is returned so it can be threaded into the next
// call.
func Expand(d Directive, p RegionProvider, prev RegionArray) ([]Record, RegionArray, error) {
	name := prev
	if d.RegionCode != "" {
		var err error
		if name, err = ParseRegionCode(d.RegionCode); err != nil {
			return nil, prev, err
		}
	} else if !name.Valid() {
		return nil, prev, &TokenError{
			Field:    "region array",
			Value:    string(name),
			Expected: []string{"OPERNUM", "FLUXNUM", "MULTNUM"},
			kind:     ErrInvalidRegionCode,
		}
	}

	sources, err := resolveRegions(d.Source, p, name)
	if err != nil {
		return nil, prev, err
	}
	targets, err := resolveRegions(d.Target, p, name)
	if err != nil {
		return nil, prev, err
	}

	dirs, err := d.directions()
	if err != nil {
		return nil, prev, err
	}
	nnc, err := d.nncBehaviour()
	if err != nil {
		return nil, prev, err
	}

	records := make([]Record, 0, len(sources)*len(targets))
	for _, src := range sources {
		for _, dst := range targets {
			records = append(records, Record{
				SourceRegion: src,
				TargetRegion: dst,
				Multiplier:   d.Multiplier,
				Directions:   dirs,
				NNC:          nnc,
				RegionArray:  name,
			})
		}
	}

	return records, name, nil
}

// ExpandAll validates the whole directive stream and then expands it in order.
// initial is the region array used when the first directive defaults its
// region selector.
func ExpandAll(directives []Directive, p RegionProvider, initial RegionArray) ([]Record, error) {
	for i, d := range directives {
		if err := Validate(d); err != nil {
			return nil, directiveError(i, err)
		}
	}

	var (
		records []Record
		prev    = initial
	)
	for i, d := range directives {
		expanded, name, err := Expand(d, p, prev)
		if err != nil {
			return nil, directiveError(i, err)
		}
		records = append(records, expanded...)
		prev = name
	}

	return records, nil
}

func resolveRegions(s Selector, p RegionProvider, name RegionArray) ([]int, error) {
	if !s.wildcard() {
		return []int{s.Value}, nil
	}
	if !p.HasRegionArray(name) {
		return nil, &UnknownRegionArrayError{Name: name}
	}
	return p.DistinctRegionIDs(name), nil
}
