package eliashberg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viennacmp/dga/bz"
	"github.com/viennacmp/dga/config"
)

func testGrid(t *testing.T) *bz.KGrid {
	t.Helper()
	g, err := bz.NewKGrid([3]int{4, 4, 1}, nil)
	require.NoError(t, err)
	return g
}

func TestStartingGapDWave(t *testing.T) {
	g := testGrid(t)
	gap, err := StartingGap(g, config.GapDWave, 0)
	require.NoError(t, err)
	require.Len(t, gap, g.NkTot())

	for i := range gap {
		k := g.Point(i)
		assert.InDelta(t, math.Cos(k[0])-math.Cos(k[1]), gap[i], 1e-15)
	}
	// The d-wave gap vanishes on the zone diagonal and at Gamma.
	assert.InDelta(t, 0, gap[g.FlatIndex(0, 0, 0)], 1e-15)
	assert.InDelta(t, 0, gap[g.FlatIndex(1, 1, 0)], 1e-15)
	// It changes sign between (π, 0) and (0, π).
	assert.InDelta(t, -2, gap[g.FlatIndex(2, 0, 0)], 1e-15)
	assert.InDelta(t, 2, gap[g.FlatIndex(0, 2, 0)], 1e-15)
}

func TestStartingGapPWave(t *testing.T) {
	g := testGrid(t)

	gapX, err := StartingGap(g, config.GapPWaveX, 0)
	require.NoError(t, err)
	gapY, err := StartingGap(g, config.GapPWaveY, 0)
	require.NoError(t, err)

	for i := range gapX {
		k := g.Point(i)
		assert.InDelta(t, math.Sin(k[0]), gapX[i], 1e-15)
		assert.InDelta(t, math.Sin(k[1]), gapY[i], 1e-15)
	}
}

func TestStartingGapRandom(t *testing.T) {
	g := testGrid(t)

	gap1, err := StartingGap(g, config.GapRandom, 42)
	require.NoError(t, err)
	gap2, err := StartingGap(g, config.GapRandom, 42)
	require.NoError(t, err)
	assert.Equal(t, gap1, gap2)

	gap3, err := StartingGap(g, config.GapRandom, 7)
	require.NoError(t, err)
	assert.NotEqual(t, gap1, gap3)

	for _, v := range gap1 {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestStartingGapUnknownSymmetry(t *testing.T) {
	g := testGrid(t)
	_, err := StartingGap(g, config.GapSymmetry("s-wave"), 0)
	require.Error(t, err)
}
