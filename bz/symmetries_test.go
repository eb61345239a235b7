package bz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymmetries(t *testing.T) {
	syms, err := ParseSymmetries("two_dimensional_square")
	require.NoError(t, err)
	assert.Equal(t, []Symmetry{SymmetryXInv, SymmetryYInv, SymmetryXYSym}, syms)

	syms, err = ParseSymmetries("quasi_two_dimensional_square")
	require.NoError(t, err)
	assert.Equal(t, []Symmetry{SymmetryXInv, SymmetryYInv, SymmetryZInv, SymmetryXYSym}, syms)

	syms, err = ParseSymmetries("simultaneous_x_y_inversion")
	require.NoError(t, err)
	assert.Equal(t, []Symmetry{SymmetryXYInv}, syms)

	syms, err = ParseSymmetries("none")
	require.NoError(t, err)
	assert.Empty(t, syms)

	syms, err = ParseSymmetries("")
	require.NoError(t, err)
	assert.Empty(t, syms)

	_, err = ParseSymmetries("hexagonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown symmetry set")
}

func TestParseSymmetryList(t *testing.T) {
	syms, err := ParseSymmetryList([]string{"x-inv", "y-inv"})
	require.NoError(t, err)
	assert.Equal(t, []Symmetry{SymmetryXInv, SymmetryYInv}, syms)

	_, err = ParseSymmetryList([]string{"x-inv", "w-inv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"w-inv"`)
}

func TestSymmetryIsValid(t *testing.T) {
	for _, sym := range []Symmetry{SymmetryXInv, SymmetryYInv, SymmetryZInv, SymmetryXYSym, SymmetryXYInv} {
		assert.True(t, sym.IsValid(), string(sym))
	}
	assert.False(t, Symmetry("t-inv").IsValid())
}
