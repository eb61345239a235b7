package hamiltonian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viennacmp/dga/bz"
)

func TestKineticOneBand2DTTpTpp(t *testing.T) {
	h := New()
	require.NoError(t, h.KineticOneBand2DTTpTpp(1.0, -0.2, 0.1))
	assert.Equal(t, 1, h.NBands())

	g, err := bz.NewKGrid([3]int{4, 4, 1}, nil)
	require.NoError(t, err)
	ek, err := h.Ek(g)
	require.NoError(t, err)
	require.Len(t, ek, g.NkTot())

	t0, tp, tpp := 1.0, -0.2, 0.1
	for ik := 0; ik < g.NkTot(); ik++ {
		k := g.Point(ik)
		want := -2*t0*(math.Cos(k[0])+math.Cos(k[1])) -
			4*tp*math.Cos(k[0])*math.Cos(k[1]) -
			2*tpp*(math.Cos(2*k[0])+math.Cos(2*k[1]))
		assert.InDelta(t, want, real(ek[ik]), 1e-12, "k-point %d", ik)
		assert.InDelta(t, 0, imag(ek[ik]), 1e-12, "k-point %d", ik)
	}
}

func TestEkCachedForGrid(t *testing.T) {
	h := New()
	require.NoError(t, h.KineticOneBand2DTTpTpp(1.0, 0, 0))

	g4, err := bz.NewKGrid([3]int{4, 4, 1}, nil)
	require.NoError(t, err)
	_, err = h.Ek(g4)
	require.NoError(t, err)

	g8, err := bz.NewKGrid([3]int{8, 8, 1}, nil)
	require.NoError(t, err)
	_, err = h.Ek(g8)
	require.Error(t, err)
}

func TestEkWithoutKineticTerm(t *testing.T) {
	g, err := bz.NewKGrid([3]int{2, 2, 1}, nil)
	require.NoError(t, err)
	_, err = New().Ek(g)
	require.Error(t, err)
}

func TestAddKineticTermRejectsLocalHopping(t *testing.T) {
	err := New().AddKineticTerm([]HoppingElement{
		{R: [3]int{0, 0, 0}, Orbs: [2]int{1, 1}, Value: 1},
	})
	require.Error(t, err)
}

func TestAddKineticTermRejectsZeroBasedOrbitals(t *testing.T) {
	err := New().AddKineticTerm([]HoppingElement{
		{R: [3]int{1, 0, 0}, Orbs: [2]int{0, 1}, Value: 1},
	})
	require.Error(t, err)
}

func TestSingleBandInteraction(t *testing.T) {
	h := New()
	require.NoError(t, h.SingleBandInteraction(8.0))
	assert.Equal(t, 1, h.NBands())
	assert.Equal(t, []float64{8.0}, h.LocalU())
	assert.False(t, h.HasNonlocalU())
}

func TestSingleBandInteractionAsMultiband(t *testing.T) {
	h := New()
	require.NoError(t, h.SingleBandInteractionAsMultiband(8.0, 2))
	assert.Equal(t, 2, h.NBands())

	u := h.LocalU()
	require.Len(t, u, 16)
	assert.Equal(t, 8.0, u[UIndex(2, 1, 1, 1, 1)])
	assert.Equal(t, 0.0, u[UIndex(2, 2, 2, 2, 2)])
	assert.Equal(t, 0.0, u[UIndex(2, 1, 2, 2, 1)])
}

func TestKanamoriInteraction(t *testing.T) {
	h := New()
	require.NoError(t, h.KanamoriInteraction(2, 8.0, 0.5, 7.0))

	u := h.LocalU()
	require.Len(t, u, 16)
	// Intra-orbital Hubbard term.
	assert.Equal(t, 8.0, u[UIndex(2, 1, 1, 1, 1)])
	assert.Equal(t, 8.0, u[UIndex(2, 2, 2, 2, 2)])
	// Exchange and pair hopping.
	assert.Equal(t, 0.5, u[UIndex(2, 1, 2, 2, 1)])
	assert.Equal(t, 0.5, u[UIndex(2, 1, 2, 1, 2)])
	assert.Equal(t, 0.5, u[UIndex(2, 2, 1, 1, 2)])
	// Inter-orbital density-density.
	assert.Equal(t, 7.0, u[UIndex(2, 1, 1, 2, 2)])
	assert.Equal(t, 7.0, u[UIndex(2, 2, 2, 1, 1)])
	// Everything else vanishes.
	assert.Equal(t, 0.0, u[UIndex(2, 1, 2, 2, 2)])
}

func TestNonlocalInteraction(t *testing.T) {
	h := New()
	err := h.AddInteractionTerm([]InteractionElement{
		{R: [3]int{0, 0, 0}, Orbs: [4]int{1, 1, 1, 1}, Value: 8.0},
		{R: [3]int{1, 0, 0}, Orbs: [4]int{1, 1, 1, 1}, Value: 1.0},
		{R: [3]int{-1, 0, 0}, Orbs: [4]int{1, 1, 1, 1}, Value: 1.0},
	})
	require.NoError(t, err)
	require.True(t, h.HasNonlocalU())
	assert.Equal(t, []float64{8.0}, h.LocalU())

	g, err := bz.NewKGrid([3]int{4, 1, 1}, nil)
	require.NoError(t, err)
	uq, err := h.Uq(g)
	require.NoError(t, err)
	require.Len(t, uq, 4)

	// V(q) = 2 cos(qx) for nearest-neighbor repulsion V = 1.
	for iq := 0; iq < 4; iq++ {
		q := g.Point(iq)
		assert.InDelta(t, 2*math.Cos(q[0]), real(uq[iq]), 1e-12, "q-point %d", iq)
		assert.InDelta(t, 0, imag(uq[iq]), 1e-12, "q-point %d", iq)
	}
}

func TestUIndex(t *testing.T) {
	assert.Equal(t, 0, UIndex(2, 1, 1, 1, 1))
	assert.Equal(t, 15, UIndex(2, 2, 2, 2, 2))
	assert.Equal(t, 6, UIndex(2, 1, 2, 2, 1))
}
