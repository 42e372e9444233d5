package multregt

// NNCBehaviour controls whether a MULTREGT multiplier applies to ordinary
// neighbour connections, to non-neighbour connections, or to both.
type NNCBehaviour int

const (
	// NNCAll applies the multiplier to every matching connection.
	NNCAll NNCBehaviour = iota
	// NNCOnly applies the multiplier to non-neighbour connections only.
	NNCOnly
	// NNCNone applies the multiplier to ordinary neighbour connections only.
	NNCNone
	// NNCNoAquifer excludes aquifer connections. Not supported.
	NNCNoAquifer
)

func (b NNCBehaviour) String() string {
	switch b {
	case NNCAll:
		return "ALL"
	case NNCOnly:
		return "NNC"
	case NNCNone:
		return "NONNC"
	case NNCNoAquifer:
		return "NOAQUNNC"
	default:
		return "UNKNOWN"
	}
}

// ParseNNCBehaviour decodes the NNC item of a MULTREGT record.
func ParseNNCBehaviour(s string) (NNCBehaviour, error) {
	switch s {
	case "ALL":
		return NNCAll, nil
	case "NNC":
		return NNCOnly, nil
	case "NONNC":
		return NNCNone, nil
	case "NOAQUNNC":
		return NNCNoAquifer, nil
	default:
		return 0, &TokenError{
			Field:    "nnc behaviour",
			Value:    s,
			Expected: []string{"ALL", "NNC", "NONNC", "NOAQUNNC"},
		}
	}
}

// applies reports whether a record with behaviour b is used for a connection
// that is (or is not) an ordinary neighbour connection.
func (b NNCBehaviour) applies(neighbour bool) bool {
	switch b {
	case NNCOnly:
		return !neighbour
	case NNCNone:
		return neighbour
	default:
		return true
	}
}
