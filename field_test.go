package multregt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/multregt"
	"github.com/hupe1980/multregt/facedir"
	"github.com/hupe1980/multregt/testutil"
)

func TestScanner_FaceMultipliers(t *testing.T) {
	const nx, ny, nz = 3, 2, 2

	layers := make([]int, nx*ny*nz)
	for cell := range layers {
		layers[cell] = 1 + cell/(nx*ny)
	}
	props := testutil.Properties(t, nx, ny, nz, map[multregt.RegionArray][]int{
		multregt.Multnum: testutil.Columns(nx, ny, nz, 1, 2, 2),
		multregt.Opernum: layers,
	})

	s, err := multregt.New([]multregt.Directive{
		directive(1, 2, 0.5, "X", "ALL", "M"),
		directive(1, 2, 0.25, "Z", "ALL", "O"),
	}, props)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 4} {
		f, err := s.FaceMultipliers(context.Background(), workers)
		require.NoError(t, err)

		assert.Equal(t, 10, f.Modified())
		for cell := range props.Cells() {
			i, _, k := props.Coordinates(cell)

			wantX := 1.0
			if i == 0 {
				wantX = 0.5
			}
			wantZ := 1.0
			if k == 0 {
				wantZ = 0.25
			}

			assert.Equal(t, wantX, f.At(cell, facedir.XPlus), "cell %d", cell)
			assert.Equal(t, 1.0, f.At(cell, facedir.YPlus), "cell %d", cell)
			assert.Equal(t, wantZ, f.At(cell, facedir.ZPlus), "cell %d", cell)
		}

		// Minus faces read the plus face of the neighbour behind them.
		assert.Equal(t, 0.5, f.At(props.Index(1, 1, 0), facedir.XMinus))
		assert.Equal(t, 1.0, f.At(props.Index(0, 1, 0), facedir.XMinus))
		assert.Equal(t, 0.25, f.At(props.Index(2, 0, 1), facedir.ZMinus))
		assert.Equal(t, 1.0, f.At(props.Index(2, 0, 0), facedir.ZMinus))
	}
}

func TestScanner_FaceMultipliersCanceled(t *testing.T) {
	props := splitGrid(t)
	s, err := multregt.New([]multregt.Directive{
		directive(1, 2, 0.5, "X", "ALL", "M"),
	}, props)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.FaceMultipliers(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
