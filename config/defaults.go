package config

// Default returns a fully-defaulted configuration. Parsing unmarshals user
// manifests on top of it, so every omitted field keeps its documented
// default.
func Default() *Config {
	return &Config{
		BoxSizes: BoxSizes{
			NiwCore:  -1,
			NivCore:  -1,
			NivShell: 0,
		},
		Lattice: Lattice{
			Symmetries:      SymmetrySpec{Name: "two_dimensional_square"},
			Type:            LatticeTTpTpp,
			InteractionType: InteractionLocalFromDMFT,
			Nk:              []int{16, 16, 1},
		},
		SelfConsistency: SelfConsistency{
			MaxIter:             20,
			SaveIter:            true,
			Epsilon:             1e-4,
			Mixing:              0.3,
			MixingStrategy:      MixingLinear,
			MixingHistoryLength: 5,
		},
		DMFTInput: DMFTInput{
			Type:      DMFTInputW2Dyn,
			InputPath: "./",
			Fname1P:   "1p-data.hdf5",
			Fname2P:   "g4iw_sym.hdf5",
			DoSymVVp:  true,
		},
		LambdaCorrection: LambdaCorrection{
			PerformLambdaCorrection: true,
			Type:                    LambdaSp,
		},
		Eliashberg: Eliashberg{
			PerformEliashberg: false,
			SavePairingVertex: false,
			SaveFq:            false,
			NEig:              2,
			Epsilon:           1e-7,
			Symmetry:          GapDWave,
			IncludeLocalPart:  true,
			SubfolderName:     "Eliashberg",
		},
		PolyFitting: PolyFitting{
			DoPolyFitting: false,
			NFit:          -1,
			OFit:          5,
		},
		Output: Output{
			OutputPath:            "./",
			DoPlotting:            true,
			SaveQuantities:        true,
			PlottingSubfolderName: "Plots",
		},
	}
}
