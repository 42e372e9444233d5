package multregt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned when an enum-like directive field holds an
	// unrecognized token.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRegionCode is returned for a region selector other than O, F or M.
	// It always wraps ErrInvalidInput.
	ErrInvalidRegionCode = fmt.Errorf("%w: region code", ErrInvalidInput)

	// ErrUnsupportedConfiguration is returned for directives the scanner
	// recognizes but does not implement.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrUnknownRegionArray is returned when a record refers to a region array
	// the region provider does not hold.
	ErrUnknownRegionArray = errors.New("unknown region array")
)

// TokenError indicates an unrecognized token in a directive field.
//
// It matches ErrInvalidInput (and ErrInvalidRegionCode for region selectors)
// via errors.Is.
type TokenError struct {
	Field    string
	Value    string
	Expected []string
	kind     error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid %s %q, expected %s", e.Field, e.Value, strings.Join(e.Expected, "/"))
}

func (e *TokenError) Unwrap() []error {
	if e.kind != nil {
		return []error{e.kind}
	}
	return []error{ErrInvalidInput}
}

// UnsupportedError indicates a directive the scanner refuses to expand.
type UnsupportedError struct {
	Reason string
}

func (e *UnsupportedError) Error() string {
	return "unsupported MULTREGT configuration: " + e.Reason
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupportedConfiguration }

// UnknownRegionArrayError indicates a record based on a region array that is
// not present in the current input.
type UnknownRegionArrayError struct {
	Name RegionArray
}

func (e *UnknownRegionArrayError) Error() string {
	return fmt.Sprintf("MULTREGT record is based on region array %s which is not in the input", e.Name)
}

func (e *UnknownRegionArrayError) Unwrap() error { return ErrUnknownRegionArray }

// directiveError tags err with the zero-based position of the directive in the stream.
func directiveError(pos int, err error) error {
	return fmt.Errorf("directive %d: %w", pos, err)
}
