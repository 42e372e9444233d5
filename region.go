package multregt

// RegionArray names one of the per-cell region classifications a MULTREGT
// directive can refer to.
type RegionArray string

const (
	Multnum RegionArray = "MULTNUM"
	Fluxnum RegionArray = "FLUXNUM"
	Opernum RegionArray = "OPERNUM"
)

// RegionArrays lists the supported region arrays in lexicographic order.
var RegionArrays = []RegionArray{Fluxnum, Multnum, Opernum}

// Valid reports whether a is one of the supported region arrays.
func (a RegionArray) Valid() bool {
	switch a {
	case Multnum, Fluxnum, Opernum:
		return true
	default:
		return false
	}
}

func (a RegionArray) String() string { return string(a) }

// ParseRegionCode maps the one-letter region selector of a MULTREGT record
// to its region array.
func ParseRegionCode(code string) (RegionArray, error) {
	switch code {
	case "O":
		return Opernum, nil
	case "F":
		return Fluxnum, nil
	case "M":
		return Multnum, nil
	default:
		return "", &TokenError{
			Field:    "region code",
			Value:    code,
			Expected: []string{"O", "F", "M"},
			kind:     ErrInvalidRegionCode,
		}
	}
}

// ParseRegionArray maps a full region array name to its RegionArray.
func ParseRegionArray(name string) (RegionArray, error) {
	switch name {
	case "OPERNUM":
		return Opernum, nil
	case "FLUXNUM":
		return Fluxnum, nil
	case "MULTNUM":
		return Multnum, nil
	default:
		return "", &TokenError{
			Field:    "region array",
			Value:    name,
			Expected: []string{"OPERNUM", "FLUXNUM", "MULTNUM"},
			kind:     ErrInvalidRegionCode,
		}
	}
}

// RegionProvider resolves per-cell region ids.
//
// Implementations must be safe for concurrent reads once a Scanner has been
// built on top of them.
type RegionProvider interface {
	// HasRegionArray reports whether the named array exists in the current input.
	HasRegionArray(name RegionArray) bool

	// RegionID returns the region id of the cell with the given linear index.
	RegionID(name RegionArray, cell int) int

	// DistinctRegionIDs returns the distinct region ids present in the named
	// array, in ascending order.
	DistinctRegionIDs(name RegionArray) []int

	// GridExtents returns the cell counts along the three grid axes.
	GridExtents() (nx, ny, nz int)
}
