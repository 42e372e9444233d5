// Package multregt resolves MULTREGT region-pair transmissibility multipliers.
//
// A MULTREGT directive assigns a multiplier to the interface between two
// regions of one of the grid's region arrays (MULTNUM, FLUXNUM or OPERNUM).
// The package expands directives into concrete region pairs, indexes them and
// answers, for a pair of cells and a face direction, which multiplier applies
// to the connection between them.
//
// # Quick Start
//
//	props, _ := region.New(10, 10, 1)
//	_ = props.Set(multregt.Multnum, multnum)
//
//	scanner, err := multregt.New(directives, props,
//	    multregt.WithLogger(multregt.NewTextLogger(os.Stderr, slog.LevelInfo)),
//	)
//	if err != nil {
//	    return err
//	}
//	m := scanner.Multiplier(cellA, cellB, facedir.XPlus)
//
// # Semantics
//
//   - Directives sharing a region array and (source, target) pair overwrite
//     each other; the last one wins.
//   - A pair is looked up as given and then swapped, so a (1, 2) directive also
//     covers the 2 -> 1 interface.
//   - Directives from a region to itself are never indexed.
//   - NNC restricts a directive to non-neighbour connections, NONNC to ordinary
//     neighbours (one i or j step apart).
//   - Region arrays are consulted in lexicographic order; the first applicable
//     record wins and multipliers are never combined.
//
// A Scanner is immutable after construction and safe for concurrent queries.
package multregt
