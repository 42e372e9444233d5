package deck

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/multregt"
	"github.com/hupe1980/multregt/region"
)

// ErrInvalidDeck is returned for decks that decode but do not describe a
// usable grid.
var ErrInvalidDeck = errors.New("invalid deck")

// Deck is a decoded deck: the grid's region arrays and the directive stream.
type Deck struct {
	Properties *region.Properties
	Directives []multregt.Directive
}

// Scanner expands the deck's directives and builds a scanner over its region
// arrays.
func (d *Deck) Scanner(optFns ...multregt.Option) (*multregt.Scanner, error) {
	return multregt.New(d.Directives, d.Properties, optFns...)
}

// hclDeck represents the top-level structure of a deck file for decoding.
type hclDeck struct {
	Grid       hclGrid        `hcl:"grid,block"`
	Regions    []hclRegion    `hcl:"region,block"`
	Directives []hclDirective `hcl:"multregt,block"`
}

type hclGrid struct {
	NX int `hcl:"nx"`
	NY int `hcl:"ny"`
	NZ int `hcl:"nz"`
}

type hclRegion struct {
	Name   string `hcl:"name,label"`
	Fill   *int   `hcl:"fill,optional"`
	Values []int  `hcl:"values,optional"`
}

type hclDirective struct {
	Source     *int    `hcl:"source,optional"`
	Target     *int    `hcl:"target,optional"`
	Multiplier float64 `hcl:"multiplier"`
	Directions *string `hcl:"directions,optional"`
	NNC        *string `hcl:"nnc,optional"`
	Region     *string `hcl:"region,optional"`
}

// Load reads and decodes the deck at path. A .zst suffix marks a
// zstd-compressed deck.
func Load(path string) (*Deck, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}

	filename := path
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		if src, err = dec.DecodeAll(src, nil); err != nil {
			return nil, fmt.Errorf("failed to decompress deck %s: %w", path, err)
		}
		filename = strings.TrimSuffix(path, ".zst")
	}

	return Parse(src, filename)
}

// Parse decodes deck source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Deck, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse deck %s: %w", filename, diags)
	}

	var raw hclDeck
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode deck %s: %w", filename, diags)
	}

	props, err := region.New(raw.Grid.NX, raw.Grid.NY, raw.Grid.NZ)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidDeck, filename, err)
	}

	for _, r := range raw.Regions {
		if err := setRegion(props, r); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidDeck, filename, err)
		}
	}

	directives := make([]multregt.Directive, 0, len(raw.Directives))
	for _, d := range raw.Directives {
		directives = append(directives, d.directive())
	}

	return &Deck{
		Properties: props,
		Directives: directives,
	}, nil
}

func setRegion(props *region.Properties, r hclRegion) error {
	name, err := multregt.ParseRegionArray(r.Name)
	if err != nil {
		return err
	}

	switch {
	case r.Fill != nil && r.Values != nil:
		return fmt.Errorf("region %s: fill and values are mutually exclusive", name)
	case r.Values != nil:
		return props.Set(name, r.Values)
	case r.Fill != nil:
		return props.Fill(name, *r.Fill)
	default:
		return fmt.Errorf("region %s: one of fill or values is required", name)
	}
}

func (d hclDirective) directive() multregt.Directive {
	out := multregt.Directive{
		Multiplier: d.Multiplier,
	}
	if d.Source != nil {
		out.Source = multregt.Region(*d.Source)
	}
	if d.Target != nil {
		out.Target = multregt.Region(*d.Target)
	}
	if d.Directions != nil {
		out.Directions = *d.Directions
	}
	if d.NNC != nil {
		out.NNC = *d.NNC
	}
	if d.Region != nil {
		out.RegionCode = *d.Region
	}
	return out
}
