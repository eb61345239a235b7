package hamiltonian

import "fmt"

// HoppingElement is a single hopping amplitude of the kinetic Hamiltonian,
// given by the relative lattice vector R, a pair of one-based orbital
// indices and the hopping value. It corresponds to one line of a wannier90
// hr file.
type HoppingElement struct {
	R     [3]int
	Orbs  [2]int
	Value float64
}

// Validate checks that the orbital indices are one-based.
func (e HoppingElement) Validate() error {
	for _, orb := range e.Orbs {
		if orb < 1 {
			return fmt.Errorf("hopping element %v: orbital indices must be greater than zero", e.Orbs)
		}
	}
	return nil
}

// InteractionElement is a single entry of the interaction matrix, given by
// the relative lattice vector R, four one-based orbital indices and the
// interaction value.
type InteractionElement struct {
	R     [3]int
	Orbs  [4]int
	Value float64
}

// Validate checks that the orbital indices are one-based.
func (e InteractionElement) Validate() error {
	for _, orb := range e.Orbs {
		if orb < 1 {
			return fmt.Errorf("interaction element %v: orbital indices must be greater than zero", e.Orbs)
		}
	}
	return nil
}

func isLocal(r [3]int) bool {
	return r[0] == 0 && r[1] == 0 && r[2] == 0
}
