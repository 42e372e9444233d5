package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hupe1980/multregt"
	"github.com/hupe1980/multregt/deck"
	"github.com/hupe1980/multregt/facedir"
	"github.com/hupe1980/multregt/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := multregt.NewTextLogger(logW, cfg.LogLevel)
	if cfg.LogFormat == "json" {
		logger = multregt.NewJSONLogger(logW, cfg.LogLevel)
	}

	d, err := deck.Load(cfg.DeckPath)
	if err != nil {
		return err
	}

	scanner, err := d.Scanner(multregt.WithLogger(logger))
	if err != nil {
		return err
	}

	switch {
	case cfg.Query():
		return query(outW, d, scanner, cfg)
	case cfg.Field:
		return field(ctx, outW, d, scanner, cfg.Workers)
	default:
		fmt.Fprintf(outW, "records: %d\nindexed pairs: %d\n", len(scanner.Records()), scanner.Len())
		for _, name := range scanner.RegionArrays() {
			fmt.Fprintf(outW, "region array: %s\n", name)
		}
		return nil
	}
}

func query(outW io.Writer, d *deck.Deck, scanner *multregt.Scanner, cfg *cli.Config) error {
	cells := d.Properties.Cells()
	if cfg.CellA >= cells || cfg.CellB >= cells {
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("cell index out of range: grid has %d cells", cells)}
	}

	r, ok := scanner.Lookup(cfg.CellA, cfg.CellB, cfg.Face)
	if !ok {
		fmt.Fprintf(outW, "%g\n", 1.0)
		return nil
	}
	fmt.Fprintf(outW, "%g (%s %d -> %d, %s, %s)\n",
		r.Multiplier, r.RegionArray, r.SourceRegion, r.TargetRegion, r.Directions, r.NNC)
	return nil
}

func field(ctx context.Context, outW io.Writer, d *deck.Deck, scanner *multregt.Scanner, workers int) error {
	f, err := scanner.FaceMultipliers(ctx, workers)
	if err != nil {
		return err
	}

	for cell := range d.Properties.Cells() {
		i, j, k := d.Properties.Coordinates(cell)
		for _, face := range []facedir.Dir{facedir.XPlus, facedir.YPlus, facedir.ZPlus} {
			if m := f.At(cell, face); m != 1 {
				fmt.Fprintf(outW, "%d %d %d %s %g\n", i, j, k, face, m)
			}
		}
	}
	fmt.Fprintf(outW, "modified faces: %d\n", f.Modified())
	return nil
}
