package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/multregt"
	"github.com/hupe1980/multregt/facedir"
)

func TestLoad(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "split.hcl"))
	require.NoError(t, err)

	nx, ny, nz := d.Properties.GridExtents()
	assert.Equal(t, [3]int{4, 2, 1}, [3]int{nx, ny, nz})
	assert.Equal(t, []int{1, 2}, d.Properties.DistinctRegionIDs(multregt.Multnum))
	assert.Equal(t, []int{3}, d.Properties.DistinctRegionIDs(multregt.Fluxnum))
	assert.False(t, d.Properties.HasRegionArray(multregt.Opernum))

	require.Len(t, d.Directives, 3)
	assert.Equal(t, multregt.Directive{
		Source:     multregt.Region(1),
		Target:     multregt.Region(2),
		Multiplier: 0.75,
		Directions: "Z",
		RegionCode: "M",
	}, d.Directives[0])
	assert.Equal(t, "", d.Directives[1].RegionCode)
	assert.True(t, d.Directives[2].Source.Defaulted())
	assert.Equal(t, multregt.Region(1), d.Directives[2].Target)

	s, err := d.Scanner()
	require.NoError(t, err)

	// Cells 1 and 2 are ordinary neighbours across the region boundary.
	assert.Equal(t, 0.5, s.Multiplier(1, 2, facedir.XPlus))
	assert.Equal(t, 1.0, s.Multiplier(1, 2, facedir.ZPlus))
	// Cells 1 and 6 are a non-neighbour connection. Across Z only the 2 -> 1
	// NNC record matches; across X the NONNC record matches and is skipped.
	assert.Equal(t, 0.1, s.Multiplier(1, 6, facedir.ZPlus))
	assert.Equal(t, 1.0, s.Multiplier(1, 6, facedir.XPlus))
}

func TestLoad_Zstd(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "split.hcl"))
	require.NoError(t, err)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(src, nil)
	require.NoError(t, enc.Close())

	path := filepath.Join(t.TempDir(), "split.hcl.zst")
	require.NoError(t, os.WriteFile(path, compressed, 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, d.Directives, 3)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		msg     string
	}{
		{
			name: "syntax",
			src:  `grid {`,
			msg:  "failed to parse deck",
		},
		{
			name: "missing grid",
			src:  `region "MULTNUM" { fill = 1 }`,
			msg:  "failed to decode deck",
		},
		{
			name: "missing multiplier",
			src: `grid {
  nx = 1
  ny = 1
  nz = 1
}
multregt {
  source = 1
}`,
			msg: "failed to decode deck",
		},
		{
			name:    "bad extents",
			src:     "grid {\n  nx = 0\n  ny = 1\n  nz = 1\n}\n",
			wantErr: ErrInvalidDeck,
		},
		{
			name:    "unknown region array",
			src:     "grid {\n  nx = 1\n  ny = 1\n  nz = 1\n}\nregion \"SATNUM\" {\n  fill = 1\n}\n",
			wantErr: multregt.ErrInvalidInput,
		},
		{
			name:    "fill and values",
			src:     "grid {\n  nx = 1\n  ny = 1\n  nz = 1\n}\nregion \"MULTNUM\" {\n  fill = 1\n  values = [1]\n}\n",
			wantErr: ErrInvalidDeck,
			msg:     "mutually exclusive",
		},
		{
			name:    "neither fill nor values",
			src:     "grid {\n  nx = 1\n  ny = 1\n  nz = 1\n}\nregion \"MULTNUM\" {\n}\n",
			wantErr: ErrInvalidDeck,
			msg:     "one of fill or values",
		},
		{
			name:    "short values",
			src:     "grid {\n  nx = 2\n  ny = 1\n  nz = 1\n}\nregion \"MULTNUM\" {\n  values = [1]\n}\n",
			wantErr: ErrInvalidDeck,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src), "test.hcl")
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}
