package multregt

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/multregt/facedir"
)

// FaceField holds the MULTREGT multiplier of the X+, Y+ and Z+ face of every
// cell, indexed by linear cell index. Faces on the upper grid boundary are 1.
type FaceField struct {
	NX, NY, NZ int
	X, Y, Z    []float64
}

// At returns the multiplier of the given face of cell. A minus face shares the
// value of the plus face of the neighbour behind it.
func (f *FaceField) At(cell int, face facedir.Dir) float64 {
	switch face {
	case facedir.XPlus:
		return f.X[cell]
	case facedir.YPlus:
		return f.Y[cell]
	case facedir.ZPlus:
		return f.Z[cell]
	}

	i, j, k := cell%f.NX, cell/f.NX%f.NY, cell/(f.NX*f.NY)
	di, dj, dk := face.Offset()
	i, j, k = i+di, j+dj, k+dk
	if i < 0 || j < 0 || k < 0 || (di == 0 && dj == 0 && dk == 0) {
		return 1
	}
	return f.At(i+f.NX*(j+f.NY*k), face.Opposite())
}

// Modified returns the number of faces whose multiplier differs from 1.
func (f *FaceField) Modified() int {
	n := 0
	for _, values := range [][]float64{f.X, f.Y, f.Z} {
		for _, v := range values {
			if v != 1 {
				n++
			}
		}
	}
	return n
}

// FaceMultipliers evaluates Multiplier for every cell against its X+, Y+ and
// Z+ neighbour. The grid is split by k-layer across at most workers goroutines;
// workers <= 0 uses GOMAXPROCS.
func (s *Scanner) FaceMultipliers(ctx context.Context, workers int) (*FaceField, error) {
	nx, ny, nz := s.provider.GridExtents()
	n := nx * ny * nz

	f := &FaceField{
		NX: nx, NY: ny, NZ: nz,
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for k := range nz {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.fillLayer(f, k)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("MULTREGT face multipliers computed",
		"cells", n,
		"modified", f.Modified(),
	)

	return f, nil
}

func (s *Scanner) fillLayer(f *FaceField, k int) {
	nx, ny, nz := f.NX, f.NY, f.NZ
	for j := range ny {
		for i := range nx {
			cell := i + nx*(j+ny*k)

			f.X[cell], f.Y[cell], f.Z[cell] = 1, 1, 1
			if i+1 < nx {
				f.X[cell] = s.Multiplier(cell, cell+1, facedir.XPlus)
			}
			if j+1 < ny {
				f.Y[cell] = s.Multiplier(cell, cell+nx, facedir.YPlus)
			}
			if k+1 < nz {
				f.Z[cell] = s.Multiplier(cell, cell+nx*ny, facedir.ZPlus)
			}
		}
	}
}
