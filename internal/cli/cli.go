package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/multregt/facedir"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	DeckPath string

	// CellA and CellB are the linear cell indices of a single query; both are
	// negative when no query was requested.
	CellA, CellB int
	Face         facedir.Dir

	Field   bool
	Workers int

	LogFormat string
	LogLevel  slog.Level
}

// Query reports whether a single multiplier query was requested.
func (c *Config) Query() bool {
	return c.CellA >= 0 && c.CellB >= 0
}

// Parse processes command-line arguments. It returns the Config, a boolean
// reporting whether the program should exit cleanly, or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("multregt", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
multregt - MULTREGT transmissibility multiplier scanner.

Usage:
  multregt [options] [DECK]

Arguments:
  DECK
    Path to an HCL deck (.hcl or .hcl.zst).

Options:
`)
		flagSet.PrintDefaults()
	}

	deckFlag := flagSet.String("deck", "", "Path to the deck file.")
	aFlag := flagSet.Int("a", -1, "Linear index of the first cell of a query.")
	bFlag := flagSet.Int("b", -1, "Linear index of the second cell of a query.")
	faceFlag := flagSet.String("face", "X+", "Face direction of the query (X+, X-, Y+, Y-, Z+, Z-).")
	fieldFlag := flagSet.Bool("field", false, "Print the multiplier of every modified cell face.")
	workersFlag := flagSet.Int("workers", 0, "Workers for -field. 0 uses GOMAXPROCS.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *deckFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	if (*aFlag < 0) != (*bFlag < 0) {
		return nil, false, &ExitError{Code: 2, Message: "-a and -b must be given together"}
	}

	face, err := facedir.Parse(*faceFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		DeckPath:  path,
		CellA:     *aFlag,
		CellB:     *bFlag,
		Face:      face,
		Field:     *fieldFlag,
		Workers:   *workersFlag,
		LogFormat: logFormat,
		LogLevel:  level,
	}, false, nil
}
