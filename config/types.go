// Package config defines the configuration schema of a DGA calculation:
// typed sections for frequency boxes, lattice, self-consistency, DMFT
// input, lambda correction, Eliashberg and output settings, together with
// parsing, defaulting, validation and resolution of the manifest files an
// external solver consumes.
package config

// LatticeType selects how the kinetic Hamiltonian is specified.
type LatticeType string

const (
	LatticeTTpTpp        LatticeType = "t_tp_tpp"
	LatticeFromWannier90 LatticeType = "from_wannier90"
	LatticeFromWannierHK LatticeType = "from_wannierHK"
)

// InteractionType selects how the interaction matrix is specified.
type InteractionType string

const (
	InteractionLocalFromDMFT    InteractionType = "local_from_dmft"
	InteractionKanamoriFromDMFT InteractionType = "kanamori_from_dmft"
	InteractionKanamori         InteractionType = "kanamori"
	InteractionCustom           InteractionType = "custom"
)

// MixingStrategy selects the self-consistency mixing scheme.
type MixingStrategy string

const (
	MixingLinear MixingStrategy = "linear"
	MixingPulay  MixingStrategy = "pulay"
)

// LambdaCorrectionType selects the channels the lambda correction acts on.
type LambdaCorrectionType string

const (
	LambdaSp   LambdaCorrectionType = "sp"
	LambdaSpCh LambdaCorrectionType = "spch"
)

// GapSymmetry selects the starting ansatz of the Eliashberg eigensolver.
type GapSymmetry string

const (
	GapPWaveX GapSymmetry = "p-wave-x"
	GapPWaveY GapSymmetry = "p-wave-y"
	GapDWave  GapSymmetry = "d-wave"
	GapRandom GapSymmetry = "random"
)

// DMFTInputType selects the format of the DMFT input files.
type DMFTInputType string

const DMFTInputW2Dyn DMFTInputType = "w2dyn"

// BoxSizes configures the Matsubara frequency boxes. -1 means "use all
// frequencies available in the DMFT input"; a shell size of 0 disables the
// asymptotic tail extension.
type BoxSizes struct {
	NiwCore  int `yaml:"niw_core" json:"niw_core" validate:"gte=-1"`
	NivCore  int `yaml:"niv_core" json:"niv_core" validate:"gte=-1"`
	NivShell int `yaml:"niv_shell" json:"niv_shell" validate:"gte=0"`

	// Niw and Niv are accepted as shorthand keys for niw_core and niv_core.
	Niw *int `yaml:"niw,omitempty" json:"niw,omitempty"`
	Niv *int `yaml:"niv,omitempty" json:"niv,omitempty"`
}

// Lattice configures the lattice model: symmetries, the source of the
// kinetic Hamiltonian, the interaction matrix and the momentum grids.
type Lattice struct {
	Symmetries       SymmetrySpec    `yaml:"symmetries" json:"symmetries"`
	Type             LatticeType     `yaml:"type" json:"type" validate:"oneof=t_tp_tpp from_wannier90 from_wannierHK"`
	HrInput          PathOrFloats    `yaml:"hr_input" json:"hr_input"`
	InteractionType  InteractionType `yaml:"interaction_type" json:"interaction_type" validate:"oneof=local_from_dmft kanamori_from_dmft kanamori custom"`
	InteractionInput PathOrFloats    `yaml:"interaction_input" json:"interaction_input"`
	Nk               []int           `yaml:"nk" json:"nk" validate:"len=3,dive,gt=0"`
	Nq               []int           `yaml:"nq,omitempty" json:"nq,omitempty" validate:"omitempty,len=3,dive,gt=0"`
}

// SelfConsistency configures the self-consistency loop of the external
// solver.
type SelfConsistency struct {
	MaxIter             int            `yaml:"max_iter" json:"max_iter" validate:"gte=1"`
	SaveIter            bool           `yaml:"save_iter" json:"save_iter"`
	Epsilon             float64        `yaml:"epsilon" json:"epsilon" validate:"gt=0"`
	Mixing              float64        `yaml:"mixing" json:"mixing" validate:"gt=0,lte=1"`
	MixingStrategy      MixingStrategy `yaml:"mixing_strategy" json:"mixing_strategy" validate:"oneof=linear pulay"`
	MixingHistoryLength int            `yaml:"mixing_history_length" json:"mixing_history_length" validate:"gte=1"`
	PreviousSCPath      string         `yaml:"previous_sc_path,omitempty" json:"previous_sc_path,omitempty"`
}

// DMFTInput names the externally produced one- and two-particle correlation
// function files the solver reads.
type DMFTInput struct {
	Type      DMFTInputType `yaml:"type" json:"type" validate:"oneof=w2dyn"`
	InputPath string        `yaml:"input_path" json:"input_path"`
	Fname1P   string        `yaml:"fname_1p" json:"fname_1p" validate:"required"`
	Fname2P   string        `yaml:"fname_2p" json:"fname_2p" validate:"required"`
	DoSymVVp  bool          `yaml:"do_sym_v_vp" json:"do_sym_v_vp"`
}

// LambdaCorrection configures the lambda correction of the susceptibilities.
// Only valid for single-orbital systems.
type LambdaCorrection struct {
	PerformLambdaCorrection bool                 `yaml:"perform_lambda_correction" json:"perform_lambda_correction"`
	Type                    LambdaCorrectionType `yaml:"type" json:"type" validate:"oneof=sp spch"`
}

// Eliashberg configures the linearized gap equation solver.
type Eliashberg struct {
	PerformEliashberg bool        `yaml:"perform_eliashberg" json:"perform_eliashberg"`
	SavePairingVertex bool        `yaml:"save_pairing_vertex" json:"save_pairing_vertex"`
	SaveFq            bool        `yaml:"save_fq" json:"save_fq"`
	NEig              int         `yaml:"n_eig" json:"n_eig" validate:"gte=1"`
	Epsilon           float64     `yaml:"epsilon" json:"epsilon" validate:"gt=0"`
	Symmetry          GapSymmetry `yaml:"symmetry" json:"symmetry" validate:"oneof=p-wave-x p-wave-y d-wave random"`
	IncludeLocalPart  bool        `yaml:"include_local_part" json:"include_local_part"`
	SubfolderName     string      `yaml:"subfolder_name" json:"subfolder_name" validate:"required"`
}

// PolyFitting configures the polynomial fit of the self-energy tail.
// n_fit = -1 derives the fit range from the core box size.
type PolyFitting struct {
	DoPolyFitting bool `yaml:"do_poly_fitting" json:"do_poly_fitting"`
	NFit          int  `yaml:"n_fit" json:"n_fit" validate:"gte=-1"`
	OFit          int  `yaml:"o_fit" json:"o_fit" validate:"gte=1"`
}

// Output configures where and what the solver writes.
type Output struct {
	OutputPath            string `yaml:"output_path" json:"output_path" validate:"required"`
	DoPlotting            bool   `yaml:"do_plotting" json:"do_plotting"`
	SaveQuantities        bool   `yaml:"save_quantities" json:"save_quantities"`
	PlottingSubfolderName string `yaml:"plotting_subfolder_name" json:"plotting_subfolder_name" validate:"required"`
}

// Config is a complete DGA configuration manifest.
type Config struct {
	BoxSizes         BoxSizes         `yaml:"box_sizes" json:"box_sizes"`
	Lattice          Lattice          `yaml:"lattice" json:"lattice"`
	SelfConsistency  SelfConsistency  `yaml:"self_consistency" json:"self_consistency"`
	DMFTInput        DMFTInput        `yaml:"dmft_input" json:"dmft_input"`
	LambdaCorrection LambdaCorrection `yaml:"lambda_correction" json:"lambda_correction"`
	Eliashberg       Eliashberg       `yaml:"eliashberg" json:"eliashberg"`
	PolyFitting      PolyFitting      `yaml:"poly_fitting" json:"poly_fitting"`
	Output           Output           `yaml:"output" json:"output"`
}
