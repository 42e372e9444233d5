package facedir

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrInvalid is returned when a direction or direction code is not recognized.
var ErrInvalid = errors.New("invalid face direction")

// Dir is one face of a grid cell.
type Dir int

const (
	XMinus Dir = iota
	XPlus
	YMinus
	YPlus
	ZMinus
	ZPlus

	numDirs = 6
)

// Dirs lists every face direction in declaration order.
var Dirs = [numDirs]Dir{XMinus, XPlus, YMinus, YPlus, ZMinus, ZPlus}

// Valid reports whether d is one of the six named directions.
func (d Dir) Valid() bool {
	return d >= XMinus && d <= ZPlus
}

// Opposite returns the face on the other side of the same axis.
func (d Dir) Opposite() Dir {
	switch d {
	case XMinus:
		return XPlus
	case XPlus:
		return XMinus
	case YMinus:
		return YPlus
	case YPlus:
		return YMinus
	case ZMinus:
		return ZPlus
	case ZPlus:
		return ZMinus
	default:
		return d
	}
}

// Offset returns the (i, j, k) step from a cell to the neighbour behind face d.
func (d Dir) Offset() (di, dj, dk int) {
	switch d {
	case XMinus:
		return -1, 0, 0
	case XPlus:
		return 1, 0, 0
	case YMinus:
		return 0, -1, 0
	case YPlus:
		return 0, 1, 0
	case ZMinus:
		return 0, 0, -1
	case ZPlus:
		return 0, 0, 1
	default:
		return 0, 0, 0
	}
}

func (d Dir) String() string {
	switch d {
	case XMinus:
		return "X-"
	case XPlus:
		return "X+"
	case YMinus:
		return "Y-"
	case YPlus:
		return "Y+"
	case ZMinus:
		return "Z-"
	case ZPlus:
		return "Z+"
	default:
		return fmt.Sprintf("Dir(%d)", int(d))
	}
}

// Parse decodes a single face direction. Both the X/Y/Z and the I/J/K spelling
// are accepted; a bare axis letter means the positive face.
func Parse(s string) (Dir, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X", "X+", "I", "I+":
		return XPlus, nil
	case "X-", "I-":
		return XMinus, nil
	case "Y", "Y+", "J", "J+":
		return YPlus, nil
	case "Y-", "J-":
		return YMinus, nil
	case "Z", "Z+", "K", "K+":
		return ZPlus, nil
	case "Z-", "K-":
		return ZMinus, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
}

// Set is a set of face directions.
//
// The zero value is the empty set. Sets are comparable values.
type Set struct {
	members [numDirs]bool
}

// NewSet returns a set holding the given directions.
func NewSet(dirs ...Dir) Set {
	return Set{}.With(dirs...)
}

// All returns the set of all six directions.
func All() Set {
	return NewSet(Dirs[:]...)
}

// With returns a copy of s with dirs added. Invalid directions are ignored.
func (s Set) With(dirs ...Dir) Set {
	for _, d := range dirs {
		if d.Valid() {
			s.members[d] = true
		}
	}
	return s
}

// Has reports whether d is a member of s.
func (s Set) Has(d Dir) bool {
	return d.Valid() && s.members[d]
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s == Set{}
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for _, ok := range s.members {
		if ok {
			n++
		}
	}
	return n
}

// All iterates over the members of s in declaration order.
func (s Set) All() iter.Seq[Dir] {
	return func(yield func(Dir) bool) {
		for _, d := range Dirs {
			if s.members[d] && !yield(d) {
				return
			}
		}
	}
}

// String renders s as a MULTREGT direction code when every selected axis has
// both faces, and as a list of faces otherwise.
func (s Set) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	var code strings.Builder
	for axis, letter := range "XYZ" {
		minus, plus := s.members[2*axis], s.members[2*axis+1]
		if minus != plus {
			return s.faces()
		}
		if plus {
			code.WriteRune(letter)
		}
	}
	return code.String()
}

func (s Set) faces() string {
	parts := make([]string, 0, numDirs)
	for d := range s.All() {
		parts = append(parts, d.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ParseMULTREGT decodes a MULTREGT direction code: one of X, Y, Z, XY, XZ, YZ
// or XYZ. Each letter selects both faces of its axis.
func ParseMULTREGT(code string) (Set, error) {
	switch code {
	case "X":
		return NewSet(XMinus, XPlus), nil
	case "Y":
		return NewSet(YMinus, YPlus), nil
	case "Z":
		return NewSet(ZMinus, ZPlus), nil
	case "XY":
		return NewSet(XMinus, XPlus, YMinus, YPlus), nil
	case "XZ":
		return NewSet(XMinus, XPlus, ZMinus, ZPlus), nil
	case "YZ":
		return NewSet(YMinus, YPlus, ZMinus, ZPlus), nil
	case "XYZ":
		return All(), nil
	default:
		return Set{}, fmt.Errorf("%w: direction code %q, expected X/Y/Z/XY/XZ/YZ/XYZ", ErrInvalid, code)
	}
}
