package config

import (
	"fmt"

	"github.com/viennacmp/dga/bz"
	"github.com/viennacmp/dga/hamiltonian"
	"github.com/viennacmp/dga/slogger"
)

// LatticeModel bundles the momentum grids and the Hamiltonian built from a
// validated, resolved configuration.
type LatticeModel struct {
	KGrid       *bz.KGrid
	QGrid       *bz.KGrid
	Hamiltonian *hamiltonian.Hamiltonian
}

// BuildOptions carries the values only the DMFT input can provide.
type BuildOptions struct {
	// UDMFT and JDMFT are the interaction parameters read from the DMFT
	// input. They feed the local_from_dmft and kanamori_from_dmft
	// interaction types.
	UDMFT float64
	JDMFT float64
	// NBandsDMFT is the band count of the DMFT input. Zero means one band.
	NBandsDMFT int

	Logger slogger.Logger
}

// BuildLattice assembles the momentum grids and the Hamiltonian the
// configuration describes. The configuration should be validated and
// resolved first.
func (c *Config) BuildLattice(opts BuildOptions) (*LatticeModel, error) {
	log := opts.Logger
	if log == nil {
		log = slogger.DefaultLogger
	}
	nBandsDMFT := opts.NBandsDMFT
	if nBandsDMFT == 0 {
		nBandsDMFT = 1
	}

	symmetries, err := c.Lattice.Symmetries.Resolve()
	if err != nil {
		return nil, fmt.Errorf("lattice.symmetries: %w", err)
	}
	nk, err := gridDims(c.Lattice.Nk, "lattice.nk")
	if err != nil {
		return nil, err
	}
	kGrid, err := bz.NewKGrid(nk, symmetries)
	if err != nil {
		return nil, fmt.Errorf("lattice.nk: %w", err)
	}
	nq := nk
	if len(c.Lattice.Nq) > 0 {
		if nq, err = gridDims(c.Lattice.Nq, "lattice.nq"); err != nil {
			return nil, err
		}
	}
	qGrid, err := bz.NewKGrid(nq, symmetries)
	if err != nil {
		return nil, fmt.Errorf("lattice.nq: %w", err)
	}

	ham, err := c.buildKinetic(kGrid)
	if err != nil {
		return nil, err
	}
	if err := c.buildInteraction(ham, nBandsDMFT, opts); err != nil {
		return nil, err
	}

	// The static check in Validate only sees the band count the manifest
	// implies; re-check against the matrix that was actually built.
	if c.LambdaCorrection.PerformLambdaCorrection && ham.NBands() > 1 {
		return nil, fmt.Errorf("lambda_correction: only supported for single-orbital systems, but the lattice model has %d bands", ham.NBands())
	}

	log.Debug("lattice model built",
		"type", c.Lattice.Type,
		"interaction", c.Lattice.InteractionType,
		"n_bands", ham.NBands(),
		"nk_tot", kGrid.NkTot(),
		"nk_irr", kGrid.NkIrr(),
		"nq_irr", qGrid.NkIrr())

	return &LatticeModel{KGrid: kGrid, QGrid: qGrid, Hamiltonian: ham}, nil
}

func (c *Config) buildKinetic(kGrid *bz.KGrid) (*hamiltonian.Hamiltonian, error) {
	switch c.Lattice.Type {
	case LatticeTTpTpp:
		vals := c.Lattice.HrInput.Values
		if len(vals) != 3 {
			return nil, fmt.Errorf("lattice.hr_input: type %q requires a 3-element [t, tp, tpp] list", c.Lattice.Type)
		}
		ham := hamiltonian.New()
		if err := ham.KineticOneBand2DTTpTpp(vals[0], vals[1], vals[2]); err != nil {
			return nil, err
		}
		return ham, nil
	case LatticeFromWannier90:
		return hamiltonian.ReadHrW2K(c.Lattice.HrInput.Path)
	case LatticeFromWannierHK:
		ham, kpoints, err := hamiltonian.ReadHkW2K(c.Lattice.HrInput.Path)
		if err != nil {
			return nil, err
		}
		if len(kpoints) != kGrid.NkTot() {
			return nil, fmt.Errorf("lattice.hr_input: Hk file has %d k-points but lattice.nk implies %d", len(kpoints), kGrid.NkTot())
		}
		return ham, nil
	default:
		return nil, fmt.Errorf("lattice.type: unknown type %q", c.Lattice.Type)
	}
}

func (c *Config) buildInteraction(ham *hamiltonian.Hamiltonian, nBandsDMFT int, opts BuildOptions) error {
	switch c.Lattice.InteractionType {
	case InteractionLocalFromDMFT:
		return ham.SingleBandInteractionAsMultiband(opts.UDMFT, nBandsDMFT)
	case InteractionKanamoriFromDMFT:
		return ham.KanamoriInteraction(nBandsDMFT, opts.UDMFT, opts.JDMFT, opts.UDMFT-2*opts.JDMFT)
	case InteractionKanamori:
		nBands, u, j, uprime, err := c.Lattice.KanamoriParams()
		if err != nil {
			return err
		}
		return ham.KanamoriInteraction(nBands, u, j, uprime)
	case InteractionCustom:
		return ham.ReadUMatrix(c.Lattice.InteractionInput.Path)
	default:
		return fmt.Errorf("lattice.interaction_type: unknown type %q", c.Lattice.InteractionType)
	}
}

func gridDims(dims []int, field string) ([3]int, error) {
	if len(dims) != 3 {
		return [3]int{}, fmt.Errorf("%s: expected 3 grid dimensions, got %d", field, len(dims))
	}
	return [3]int{dims[0], dims[1], dims[2]}, nil
}
