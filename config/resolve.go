package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/viennacmp/dga/slogger"
)

// Resolve returns a copy of the configuration with every derived value
// filled in: relative paths are joined with baseDir (usually the directory
// of the manifest file), the q-grid defaults to the k-grid, and an omitted
// Kanamori U' is set to U - 2J.
func (c *Config) Resolve(baseDir string) (*Config, error) {
	r := c.clone()

	if r.Lattice.HrInput.IsPath() {
		r.Lattice.HrInput.Path = resolvePath(baseDir, r.Lattice.HrInput.Path)
	}
	if r.Lattice.InteractionInput.IsPath() {
		r.Lattice.InteractionInput.Path = resolvePath(baseDir, r.Lattice.InteractionInput.Path)
	}
	r.DMFTInput.InputPath = resolvePath(baseDir, r.DMFTInput.InputPath)
	r.SelfConsistency.PreviousSCPath = resolvePath(baseDir, r.SelfConsistency.PreviousSCPath)
	r.Output.OutputPath = resolvePath(baseDir, r.Output.OutputPath)

	if len(r.Lattice.Nq) == 0 {
		r.Lattice.Nq = slices.Clone(r.Lattice.Nk)
	}

	if r.Lattice.InteractionType == InteractionKanamori {
		nBands, u, j, uprime, err := r.Lattice.KanamoriParams()
		if err != nil {
			return nil, err
		}
		r.Lattice.InteractionInput.Values = []float64{float64(nBands), u, j, uprime}
	}

	return r, nil
}

// clone returns a copy of the configuration that shares no slices with the
// original.
func (c *Config) clone() *Config {
	r := *c
	r.Lattice.Nk = slices.Clone(c.Lattice.Nk)
	r.Lattice.Nq = slices.Clone(c.Lattice.Nq)
	r.Lattice.HrInput.Values = slices.Clone(c.Lattice.HrInput.Values)
	r.Lattice.InteractionInput.Values = slices.Clone(c.Lattice.InteractionInput.Values)
	r.Lattice.Symmetries.List = slices.Clone(c.Lattice.Symmetries.List)
	return &r
}

func resolvePath(baseDir, path string) string {
	if path == "" || baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Boxes holds the resolved Matsubara frequency box sizes.
type Boxes struct {
	NiwCore  int
	NivCore  int
	NivShell int
	NivFull  int
}

// FrequencyBoxes resolves the -1 sentinels of the box sizes against the
// frequency counts available in the DMFT two-particle data, clamping
// requests that exceed them. The full fermionic box is the core box plus
// the asymptotic shell.
func (c *Config) FrequencyBoxes(niwAvail, nivAvail int, log slogger.Logger) (Boxes, error) {
	if log == nil {
		log = slogger.DefaultLogger
	}
	if niwAvail < 1 || nivAvail < 1 {
		return Boxes{}, fmt.Errorf("dmft input provides no frequencies: niw=%d, niv=%d", niwAvail, nivAvail)
	}

	niw := c.BoxSizes.NiwCore
	switch {
	case niw == -1:
		niw = niwAvail
	case niw > niwAvail:
		log.Warn("requested bosonic core box exceeds the dmft input, clamping",
			"niw_core", niw, "available", niwAvail)
		niw = niwAvail
	}

	niv := c.BoxSizes.NivCore
	switch {
	case niv == -1:
		niv = nivAvail
	case niv > nivAvail:
		log.Warn("requested fermionic core box exceeds the dmft input, clamping",
			"niv_core", niv, "available", nivAvail)
		niv = nivAvail
	}

	return Boxes{
		NiwCore:  niw,
		NivCore:  niv,
		NivShell: c.BoxSizes.NivShell,
		NivFull:  niv + c.BoxSizes.NivShell,
	}, nil
}

// FitRange resolves the polynomial fit range: n_fit = -1 derives it from
// the fermionic core box.
func (c *Config) FitRange(boxes Boxes) int {
	if c.PolyFitting.NFit == -1 {
		return boxes.NivCore + 40
	}
	return c.PolyFitting.NFit
}
