package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viennacmp/dga/slogger"
)

func TestResolvePaths(t *testing.T) {
	cfg := validTestConfig()
	cfg.Lattice.Type = LatticeFromWannier90
	cfg.Lattice.HrInput = PathOrFloats{Path: "wannier_hr.dat"}
	cfg.DMFTInput.InputPath = "dmft"
	cfg.SelfConsistency.PreviousSCPath = "run1"
	cfg.Output.OutputPath = "out"

	resolved, err := cfg.Resolve("/data/calc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/calc", "wannier_hr.dat"), resolved.Lattice.HrInput.Path)
	assert.Equal(t, filepath.Join("/data/calc", "dmft"), resolved.DMFTInput.InputPath)
	assert.Equal(t, filepath.Join("/data/calc", "run1"), resolved.SelfConsistency.PreviousSCPath)
	assert.Equal(t, filepath.Join("/data/calc", "out"), resolved.Output.OutputPath)

	// The original is untouched.
	assert.Equal(t, "dmft", cfg.DMFTInput.InputPath)
}

func TestResolveKeepsAbsolutePaths(t *testing.T) {
	cfg := validTestConfig()
	cfg.DMFTInput.InputPath = "/abs/dmft"

	resolved, err := cfg.Resolve("/data/calc")
	require.NoError(t, err)
	assert.Equal(t, "/abs/dmft", resolved.DMFTInput.InputPath)
}

func TestResolveEmptyPreviousSCPathStaysEmpty(t *testing.T) {
	cfg := validTestConfig()
	resolved, err := cfg.Resolve("/data/calc")
	require.NoError(t, err)
	assert.Equal(t, "", resolved.SelfConsistency.PreviousSCPath)
}

func TestResolveQGridDefaultsToKGrid(t *testing.T) {
	cfg := validTestConfig()
	cfg.Lattice.Nk = []int{8, 8, 1}

	resolved, err := cfg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8, 1}, resolved.Lattice.Nq)

	// An explicit q-grid survives.
	cfg.Lattice.Nq = []int{4, 4, 1}
	resolved, err = cfg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 1}, resolved.Lattice.Nq)
}

func TestResolveCompletesKanamoriList(t *testing.T) {
	cfg := validTestConfig()
	cfg.Lattice.InteractionType = InteractionKanamori
	cfg.Lattice.InteractionInput = PathOrFloats{Values: []float64{2, 8.0, 0.5}}
	cfg.LambdaCorrection.PerformLambdaCorrection = false

	resolved, err := cfg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 8.0, 0.5, 7.0}, resolved.Lattice.InteractionInput.Values)
	// The original keeps the 3-element form.
	assert.Equal(t, []float64{2, 8.0, 0.5}, cfg.Lattice.InteractionInput.Values)
}

func TestResolveRejectsBadKanamoriList(t *testing.T) {
	cfg := validTestConfig()
	cfg.Lattice.InteractionType = InteractionKanamori
	cfg.Lattice.InteractionInput = PathOrFloats{Values: []float64{8.0}}
	_, err := cfg.Resolve("")
	require.Error(t, err)
}

func TestFrequencyBoxesSentinels(t *testing.T) {
	cfg := validTestConfig()
	cfg.BoxSizes.NiwCore = -1
	cfg.BoxSizes.NivCore = -1
	cfg.BoxSizes.NivShell = 50

	boxes, err := cfg.FrequencyBoxes(120, 60, nil)
	require.NoError(t, err)
	assert.Equal(t, 120, boxes.NiwCore)
	assert.Equal(t, 60, boxes.NivCore)
	assert.Equal(t, 50, boxes.NivShell)
	assert.Equal(t, 110, boxes.NivFull)
}

func TestFrequencyBoxesClamping(t *testing.T) {
	cfg := validTestConfig()
	cfg.BoxSizes.NiwCore = 200
	cfg.BoxSizes.NivCore = 30

	boxes, err := cfg.FrequencyBoxes(120, 60, slogger.NewDevNullLogger())
	require.NoError(t, err)
	// Requests beyond the available data are clamped, explicit ones kept.
	assert.Equal(t, 120, boxes.NiwCore)
	assert.Equal(t, 30, boxes.NivCore)
	assert.Equal(t, 30, boxes.NivFull)
}

func TestFrequencyBoxesNoData(t *testing.T) {
	cfg := validTestConfig()
	_, err := cfg.FrequencyBoxes(0, 60, nil)
	require.Error(t, err)
	_, err = cfg.FrequencyBoxes(120, 0, nil)
	require.Error(t, err)
}

func TestFitRange(t *testing.T) {
	cfg := validTestConfig()
	boxes := Boxes{NivCore: 60}

	cfg.PolyFitting.NFit = -1
	assert.Equal(t, 100, cfg.FitRange(boxes))

	cfg.PolyFitting.NFit = 25
	assert.Equal(t, 25, cfg.FitRange(boxes))
}
