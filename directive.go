package multregt

import (
	"fmt"

	"github.com/hupe1980/multregt/facedir"
)

// Selector is an optional region id item of a directive.
//
// The zero value is a defaulted selector, which stands for every region id
// present in the directive's region array. So does any negative id.
type Selector struct {
	Value int
	Set   bool
}

// Region returns an explicit selector for region id.
func Region(id int) Selector {
	return Selector{Value: id, Set: true}
}

// Defaulted reports whether the selector was left out of the directive.
func (s Selector) Defaulted() bool { return !s.Set }

func (s Selector) wildcard() bool { return !s.Set || s.Value < 0 }

func (s Selector) String() string {
	if !s.Set {
		return "*"
	}
	return fmt.Sprintf("%d", s.Value)
}

// Directive is one already-parsed MULTREGT record.
type Directive struct {
	Source     Selector
	Target     Selector
	Multiplier float64

	// Directions is the MULTREGT direction code (X, Y, Z, XY, XZ, YZ, XYZ).
	// Empty means XYZ.
	Directions string

	// RegionCode is O, F or M. Empty inherits the region array of the
	// previous directive in the stream.
	RegionCode string

	// NNC is ALL, NNC, NONNC or NOAQUNNC. Empty means ALL.
	NNC string
}

func (d Directive) directions() (facedir.Set, error) {
	code := d.Directions
	if code == "" {
		code = "XYZ"
	}
	set, err := facedir.ParseMULTREGT(code)
	if err != nil {
		return facedir.Set{}, &TokenError{
			Field:    "direction code",
			Value:    code,
			Expected: []string{"X", "Y", "Z", "XY", "XZ", "YZ", "XYZ"},
		}
	}
	return set, nil
}

func (d Directive) nncBehaviour() (NNCBehaviour, error) {
	if d.NNC == "" {
		return NNCAll, nil
	}
	return ParseNNCBehaviour(d.NNC)
}
