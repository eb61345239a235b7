// Package hamiltonian builds tight-binding Hamiltonians of the Hubbard
// model: hopping terms on a lattice, local and nonlocal interaction
// matrices, and their momentum-space representations on a Brillouin-zone
// grid.
package hamiltonian

import (
	"fmt"
	"math/cmplx"

	"github.com/viennacmp/dga/bz"
)

// Hamiltonian holds the kinetic term and the local and nonlocal interaction
// terms of a Hubbard-model Hamiltonian in real space, plus the cached
// momentum-space dispersion once computed.
type Hamiltonian struct {
	nBands int

	// kinetic term: er[(ir*nBands+o1)*nBands+o2] for lattice vector rVecs[ir]
	rVecs    [][3]int
	rWeights []float64
	er       []complex128

	// cached or preset dispersion, ek[(ik*nBands+o1)*nBands+o2]
	ek   []complex128
	ekNk [3]int

	// interaction: local part uLocal[UIndex(uBands, a, b, c, d)] and
	// nonlocal part uNonlocal[ir*uBands⁴+UIndex(...)] for urVecs[ir]
	uBands    int
	uLocal    []float64
	urVecs    [][3]int
	urWeights []float64
	uNonlocal []float64
}

// New returns an empty Hamiltonian.
func New() *Hamiltonian {
	return &Hamiltonian{}
}

// NBands returns the orbital dimension of the Hamiltonian.
func (h *Hamiltonian) NBands() int {
	if h.uBands > h.nBands {
		return h.uBands
	}
	return h.nBands
}

// UIndex flattens four one-based orbital indices of an interaction matrix
// with the given band count.
func UIndex(nBands, a, b, c, d int) int {
	return ((((a-1)*nBands+(b-1))*nBands+(c-1))*nBands + (d - 1))
}

// AddKineticTerm sets the kinetic part of the Hamiltonian from hopping
// elements. Purely local hopping is rejected.
func (h *Hamiltonian) AddKineticTerm(elements []HoppingElement) error {
	if len(elements) == 0 {
		return fmt.Errorf("no hopping elements given")
	}
	nBands := 0
	for _, el := range elements {
		if err := el.Validate(); err != nil {
			return err
		}
		if isLocal(el.R) {
			return fmt.Errorf("local hopping is not allowed")
		}
		for _, orb := range el.Orbs {
			if orb > nBands {
				nBands = orb
			}
		}
	}

	rIndex := make(map[[3]int]int)
	for _, el := range elements {
		if _, ok := rIndex[el.R]; !ok {
			rIndex[el.R] = len(rIndex)
		}
	}

	h.nBands = nBands
	h.rVecs = make([][3]int, len(rIndex))
	h.rWeights = make([]float64, len(rIndex))
	for r, ir := range rIndex {
		h.rVecs[ir] = r
		h.rWeights[ir] = 1
	}
	h.er = make([]complex128, len(rIndex)*nBands*nBands)
	for _, el := range elements {
		ir := rIndex[el.R]
		h.er[(ir*nBands+el.Orbs[0]-1)*nBands+el.Orbs[1]-1] = complex(el.Value, 0)
	}
	h.ek = nil
	return nil
}

// AddInteractionTerm sets the interaction part of the Hamiltonian from
// interaction elements, split into the local (R = 0) and nonlocal matrices.
func (h *Hamiltonian) AddInteractionTerm(elements []InteractionElement) error {
	if len(elements) == 0 {
		return fmt.Errorf("no interaction elements given")
	}
	nBands := 0
	for _, el := range elements {
		if err := el.Validate(); err != nil {
			return err
		}
		for _, orb := range el.Orbs {
			if orb > nBands {
				nBands = orb
			}
		}
	}

	rIndex := make(map[[3]int]int)
	for _, el := range elements {
		if !isLocal(el.R) {
			if _, ok := rIndex[el.R]; !ok {
				rIndex[el.R] = len(rIndex)
			}
		}
	}

	n4 := nBands * nBands * nBands * nBands
	h.uBands = nBands
	h.uLocal = make([]float64, n4)
	h.urVecs = make([][3]int, len(rIndex))
	h.urWeights = make([]float64, len(rIndex))
	for r, ir := range rIndex {
		h.urVecs[ir] = r
		h.urWeights[ir] = 1
	}
	h.uNonlocal = make([]float64, len(rIndex)*n4)
	for _, el := range elements {
		idx := UIndex(nBands, el.Orbs[0], el.Orbs[1], el.Orbs[2], el.Orbs[3])
		if isLocal(el.R) {
			h.uLocal[idx] = el.Value
		} else {
			h.uNonlocal[rIndex[el.R]*n4+idx] = el.Value
		}
	}
	return nil
}

// KineticOneBand2DTTpTpp sets the kinetic term of a one-band model in two
// dimensions with nearest (t), next-nearest (tp) and next-next-nearest
// (tpp) neighbor hopping.
func (h *Hamiltonian) KineticOneBand2DTTpTpp(t, tp, tpp float64) error {
	orbs := [2]int{1, 1}
	elements := []HoppingElement{
		{R: [3]int{1, 0, 0}, Orbs: orbs, Value: -t},
		{R: [3]int{0, 1, 0}, Orbs: orbs, Value: -t},
		{R: [3]int{-1, 0, 0}, Orbs: orbs, Value: -t},
		{R: [3]int{0, -1, 0}, Orbs: orbs, Value: -t},
		{R: [3]int{1, 1, 0}, Orbs: orbs, Value: -tp},
		{R: [3]int{1, -1, 0}, Orbs: orbs, Value: -tp},
		{R: [3]int{-1, 1, 0}, Orbs: orbs, Value: -tp},
		{R: [3]int{-1, -1, 0}, Orbs: orbs, Value: -tp},
		{R: [3]int{2, 0, 0}, Orbs: orbs, Value: -tpp},
		{R: [3]int{0, 2, 0}, Orbs: orbs, Value: -tpp},
		{R: [3]int{-2, 0, 0}, Orbs: orbs, Value: -tpp},
		{R: [3]int{0, -2, 0}, Orbs: orbs, Value: -tpp},
	}
	return h.AddKineticTerm(elements)
}

// SingleBandInteraction sets a purely local single-band Hubbard interaction.
func (h *Hamiltonian) SingleBandInteraction(u float64) error {
	return h.SingleBandInteractionAsMultiband(u, 1)
}

// SingleBandInteractionAsMultiband embeds a single-band Hubbard interaction
// into an nBands-orbital matrix: zero everywhere except the [1,1,1,1]
// element.
func (h *Hamiltonian) SingleBandInteractionAsMultiband(u float64, nBands int) error {
	if nBands < 1 {
		return fmt.Errorf("interaction needs at least one band, got %d", nBands)
	}
	elements := []InteractionElement{
		{R: [3]int{0, 0, 0}, Orbs: [4]int{1, 1, 1, 1}, Value: u},
	}
	if nBands > 1 {
		// pin the matrix dimension
		elements = append(elements, InteractionElement{
			R: [3]int{0, 0, 0}, Orbs: [4]int{nBands, nBands, nBands, nBands}, Value: 0,
		})
	}
	return h.AddInteractionTerm(elements)
}

// KanamoriInteraction sets the local Kanamori interaction matrix for nBands
// orbitals: intra-orbital Hubbard u, exchange and pair hopping j, and
// inter-orbital density-density uprime.
func (h *Hamiltonian) KanamoriInteraction(nBands int, u, j, uprime float64) error {
	if nBands < 1 {
		return fmt.Errorf("kanamori interaction needs at least one band, got %d", nBands)
	}
	rLoc := [3]int{0, 0, 0}
	var elements []InteractionElement
	for a := 1; a <= nBands; a++ {
		for b := 1; b <= nBands; b++ {
			for c := 1; c <= nBands; c++ {
				for d := 1; d <= nBands; d++ {
					orbs := [4]int{a, b, c, d}
					switch {
					case a == b && b == c && c == d:
						elements = append(elements, InteractionElement{R: rLoc, Orbs: orbs, Value: u})
					case (a == d && b == c) || (a == c && b == d):
						elements = append(elements, InteractionElement{R: rLoc, Orbs: orbs, Value: j})
					case a == b && c == d:
						elements = append(elements, InteractionElement{R: rLoc, Orbs: orbs, Value: uprime})
					}
				}
			}
		}
	}
	return h.AddInteractionTerm(elements)
}

// SetEk presets the dispersion on a grid of the given dimensions, bypassing
// the Fourier sum. Used when the dispersion was read from an Hk file.
func (h *Hamiltonian) SetEk(ek []complex128, nk [3]int, nBands int) {
	h.ek = ek
	h.ekNk = nk
	h.nBands = nBands
}

// Ek returns the band dispersion on the k-grid as a flat array indexed by
// (ik*nBands+o1)*nBands+o2, with ik running over the full zone in flat
// order. The result is cached on the Hamiltonian.
func (h *Hamiltonian) Ek(g *bz.KGrid) ([]complex128, error) {
	if h.ek != nil {
		// ekNk is zero when the dispersion came from an Hk file, which
		// carries a flat k-point list instead of grid dimensions.
		if h.ekNk != ([3]int{}) && h.ekNk != g.Nk() {
			return nil, fmt.Errorf("dispersion cached for grid %v, requested %v", h.ekNk, g.Nk())
		}
		return h.ek, nil
	}
	if h.er == nil {
		return nil, fmt.Errorf("kinetic term not set")
	}
	nb := h.nBands
	ek := make([]complex128, g.NkTot()*nb*nb)
	for ik := 0; ik < g.NkTot(); ik++ {
		k := g.Point(ik)
		for ir, r := range h.rVecs {
			phase := k[0]*float64(r[0]) + k[1]*float64(r[1]) + k[2]*float64(r[2])
			factor := cmplx.Exp(complex(0, phase)) / complex(h.rWeights[ir], 0)
			for o1 := 0; o1 < nb; o1++ {
				for o2 := 0; o2 < nb; o2++ {
					ek[(ik*nb+o1)*nb+o2] += factor * h.er[(ir*nb+o1)*nb+o2]
				}
			}
		}
	}
	h.ek = ek
	h.ekNk = g.Nk()
	return ek, nil
}

// LocalU returns the local interaction matrix flattened with UIndex, or nil
// when no interaction term was set. The momentum-space representation of
// the local part equals its real-space representation.
func (h *Hamiltonian) LocalU() []float64 {
	return h.uLocal
}

// HasNonlocalU reports whether a nonlocal interaction term is present.
func (h *Hamiltonian) HasNonlocalU() bool {
	return len(h.uNonlocal) > 0
}

// Uq returns the nonlocal interaction in momentum space as a flat array
// indexed by iq*nBands⁴+UIndex(...), with iq running over the full zone of
// the q-grid in flat order.
func (h *Hamiltonian) Uq(g *bz.KGrid) ([]complex128, error) {
	if h.uNonlocal == nil {
		return nil, fmt.Errorf("nonlocal interaction term not set")
	}
	n4 := h.uBands * h.uBands * h.uBands * h.uBands
	uq := make([]complex128, g.NkTot()*n4)
	for iq := 0; iq < g.NkTot(); iq++ {
		q := g.Point(iq)
		for ir, r := range h.urVecs {
			phase := q[0]*float64(r[0]) + q[1]*float64(r[1]) + q[2]*float64(r[2])
			factor := cmplx.Exp(complex(0, phase)) / complex(h.urWeights[ir], 0)
			for i := 0; i < n4; i++ {
				uq[iq*n4+i] += factor * complex(h.uNonlocal[ir*n4+i], 0)
			}
		}
	}
	return uq, nil
}
