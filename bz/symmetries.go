// Package bz provides Brillouin-zone grids and the point-group symmetry
// reduction used to map the full zone onto its irreducible wedge.
package bz

import "fmt"

// Symmetry identifies a single point-group operation on the k-mesh.
type Symmetry string

const (
	SymmetryXInv  Symmetry = "x-inv"
	SymmetryYInv  Symmetry = "y-inv"
	SymmetryZInv  Symmetry = "z-inv"
	SymmetryXYSym Symmetry = "x-y-sym"
	SymmetryXYInv Symmetry = "x-y-inv"
)

// IsValid reports whether the symmetry is one of the known operations.
func (s Symmetry) IsValid() bool {
	switch s {
	case SymmetryXInv, SymmetryYInv, SymmetryZInv, SymmetryXYSym, SymmetryXYInv:
		return true
	}
	return false
}

// TwoDimensionalSquareSymmetries is the symmetry set of the 2D square lattice.
func TwoDimensionalSquareSymmetries() []Symmetry {
	return []Symmetry{SymmetryXInv, SymmetryYInv, SymmetryXYSym}
}

// TwoDimensionalNematicSymmetries drops the x-y exchange of the square lattice.
func TwoDimensionalNematicSymmetries() []Symmetry {
	return []Symmetry{SymmetryXInv, SymmetryYInv}
}

// QuasiTwoDimensionalSquareSymmetries adds z inversion to the square lattice set.
func QuasiTwoDimensionalSquareSymmetries() []Symmetry {
	return []Symmetry{SymmetryXInv, SymmetryYInv, SymmetryZInv, SymmetryXYSym}
}

// QuasiOneDimensionalSquareSymmetries is the reduced set for anisotropic chains.
func QuasiOneDimensionalSquareSymmetries() []Symmetry {
	return []Symmetry{SymmetryXInv, SymmetryYInv}
}

// SimultaneousXYInversion inverts x and y together, as in stripe phases.
func SimultaneousXYInversion() []Symmetry {
	return []Symmetry{SymmetryXYInv}
}

// ParseSymmetries resolves a named symmetry set. The empty string and "none"
// yield no symmetries.
func ParseSymmetries(name string) ([]Symmetry, error) {
	switch name {
	case "two_dimensional_square":
		return TwoDimensionalSquareSymmetries(), nil
	case "two_dimensional_nematic":
		return TwoDimensionalNematicSymmetries(), nil
	case "quasi_two_dimensional_square":
		return QuasiTwoDimensionalSquareSymmetries(), nil
	case "quasi_one_dimensional_square":
		return QuasiOneDimensionalSquareSymmetries(), nil
	case "simultaneous_x_y_inversion":
		return SimultaneousXYInversion(), nil
	case "", "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown symmetry set: %q", name)
}

// ParseSymmetryList converts individual symmetry names into a symmetry set.
func ParseSymmetryList(names []string) ([]Symmetry, error) {
	symmetries := make([]Symmetry, 0, len(names))
	for _, name := range names {
		sym := Symmetry(name)
		if !sym.IsValid() {
			return nil, fmt.Errorf("unknown symmetry: %q", name)
		}
		symmetries = append(symmetries, sym)
	}
	return symmetries, nil
}
