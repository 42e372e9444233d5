package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/multregt/facedir"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-a", "5", "-b", "6", "-face", "z-", "-log-level", "debug", "deck.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "deck.hcl", cfg.DeckPath)
	assert.True(t, cfg.Query())
	assert.Equal(t, 5, cfg.CellA)
	assert.Equal(t, 6, cfg.CellB)
	assert.Equal(t, facedir.ZMinus, cfg.Face)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := Parse([]string{"-deck", "d.hcl", "-field"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.False(t, cfg.Query())
	assert.True(t, cfg.Field)
	assert.Equal(t, facedir.XPlus, cfg.Face)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestParse_Exit(t *testing.T) {
	var out bytes.Buffer
	_, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Contains(t, out.String(), "Usage:")

	_, exit, err = Parse([]string{"-h"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":   {"-nope", "d.hcl"},
		"lonely a":       {"-a", "1", "d.hcl"},
		"bad face":       {"-face", "W", "d.hcl"},
		"bad log format": {"-log-format", "xml", "d.hcl"},
		"bad log level":  {"-log-level", "loud", "d.hcl"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
