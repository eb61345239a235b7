// Package eliashberg provides the starting gap functions the power
// iteration of the linearized gap equation is seeded with. The eigensolver
// itself lives in the external solver; the ansatz determines which pairing
// symmetry sector the iteration converges into.
package eliashberg

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/viennacmp/dga/bz"
	"github.com/viennacmp/dga/config"
)

// StartingGap returns the initial gap function on the full k-grid in flat
// order. The random ansatz is reproducible for a fixed seed; the other
// ansatzes ignore it.
func StartingGap(g *bz.KGrid, symmetry config.GapSymmetry, seed int64) ([]float64, error) {
	gap := make([]float64, g.NkTot())
	switch symmetry {
	case config.GapDWave:
		for i := range gap {
			k := g.Point(i)
			gap[i] = math.Cos(k[0]) - math.Cos(k[1])
		}
	case config.GapPWaveX:
		for i := range gap {
			gap[i] = math.Sin(g.Point(i)[0])
		}
	case config.GapPWaveY:
		for i := range gap {
			gap[i] = math.Sin(g.Point(i)[1])
		}
	case config.GapRandom:
		rng := rand.New(rand.NewSource(seed))
		for i := range gap {
			gap[i] = 2*rng.Float64() - 1
		}
	default:
		return nil, fmt.Errorf("unknown gap symmetry: %q", symmetry)
	}
	return gap, nil
}
