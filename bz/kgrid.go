package bz

import (
	"fmt"
	"math"
	"sort"
)

// KGrid is a regular momentum-space mesh on [0, 2π)³ together with the index
// maps that reduce it to the irreducible wedge under a set of point-group
// symmetries.
type KGrid struct {
	nk         [3]int
	symmetries []Symmetry

	kx, ky, kz []float64

	// fbzToIrr maps every full-zone point to its irreducible point id.
	fbzToIrr []int
	// irrInd holds the full-zone flat index of each irreducible point.
	irrInd []int
	// counts holds the multiplicity of each irreducible point.
	counts []int
}

// NewKGrid builds the k-mesh for the given grid dimensions and reduces it
// under the given symmetries.
func NewKGrid(nk [3]int, symmetries []Symmetry) (*KGrid, error) {
	for _, n := range nk {
		if n < 1 {
			return nil, fmt.Errorf("invalid grid dimensions %v: all entries must be positive", nk)
		}
	}
	for _, sym := range symmetries {
		if !sym.IsValid() {
			return nil, fmt.Errorf("unknown symmetry: %q", sym)
		}
	}
	g := &KGrid{
		nk:         nk,
		symmetries: symmetries,
		kx:         kAxis(nk[0]),
		ky:         kAxis(nk[1]),
		kz:         kAxis(nk[2]),
	}
	if err := g.reduce(); err != nil {
		return nil, err
	}
	return g, nil
}

// kAxis returns n points evenly spaced on [0, 2π), endpoint excluded.
func kAxis(n int) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return axis
}

// Nk returns the grid dimensions.
func (g *KGrid) Nk() [3]int { return g.nk }

// NkTot returns the number of points in the full zone.
func (g *KGrid) NkTot() int { return g.nk[0] * g.nk[1] * g.nk[2] }

// NkIrr returns the number of points in the irreducible wedge.
func (g *KGrid) NkIrr() int { return len(g.irrInd) }

// Symmetries returns the symmetry set the grid was reduced with.
func (g *KGrid) Symmetries() []Symmetry { return g.symmetries }

// Kx returns the kx axis values.
func (g *KGrid) Kx() []float64 { return g.kx }

// Ky returns the ky axis values.
func (g *KGrid) Ky() []float64 { return g.ky }

// Kz returns the kz axis values.
func (g *KGrid) Kz() []float64 { return g.kz }

// FlatIndex converts mesh coordinates to the flat point index.
func (g *KGrid) FlatIndex(ix, iy, iz int) int {
	return (ix*g.nk[1]+iy)*g.nk[2] + iz
}

// Coords converts a flat point index back to mesh coordinates.
func (g *KGrid) Coords(i int) (ix, iy, iz int) {
	iz = i % g.nk[2]
	iy = (i / g.nk[2]) % g.nk[1]
	ix = i / (g.nk[1] * g.nk[2])
	return ix, iy, iz
}

// Point returns the k vector of the flat point index.
func (g *KGrid) Point(i int) [3]float64 {
	ix, iy, iz := g.Coords(i)
	return [3]float64{g.kx[ix], g.ky[iy], g.kz[iz]}
}

// Points returns the k vectors of all full-zone points in flat order.
func (g *KGrid) Points() [][3]float64 {
	points := make([][3]float64, g.NkTot())
	for i := range points {
		points[i] = g.Point(i)
	}
	return points
}

// IrrPoints returns the k vectors of the irreducible points.
func (g *KGrid) IrrPoints() [][3]float64 {
	points := make([][3]float64, len(g.irrInd))
	for i, flat := range g.irrInd {
		points[i] = g.Point(flat)
	}
	return points
}

// IrrIndices returns the full-zone flat index of each irreducible point.
func (g *KGrid) IrrIndices() []int { return g.irrInd }

// IrrCounts returns the multiplicity of each irreducible point.
func (g *KGrid) IrrCounts() []int { return g.counts }

// IrrID returns the irreducible point id of a full-zone flat index.
func (g *KGrid) IrrID(i int) int { return g.fbzToIrr[i] }

// MapIrrToFull expands values defined on the irreducible wedge onto the
// full zone in flat order.
func MapIrrToFull[T any](g *KGrid, vals []T) ([]T, error) {
	if len(vals) != g.NkIrr() {
		return nil, fmt.Errorf("expected %d irreducible values, got %d", g.NkIrr(), len(vals))
	}
	full := make([]T, g.NkTot())
	for i := range full {
		full[i] = vals[g.fbzToIrr[i]]
	}
	return full, nil
}

// MapFullToIrr restricts values defined on the full zone to the
// irreducible points.
func MapFullToIrr[T any](g *KGrid, vals []T) ([]T, error) {
	if len(vals) != g.NkTot() {
		return nil, fmt.Errorf("expected %d full-zone values, got %d", g.NkTot(), len(vals))
	}
	irr := make([]T, len(g.irrInd))
	for i, flat := range g.irrInd {
		irr[i] = vals[flat]
	}
	return irr, nil
}

// MeanIrr averages irreducible values over the full zone, weighting each
// point with its multiplicity.
func (g *KGrid) MeanIrr(vals []complex128) (complex128, error) {
	if len(vals) != g.NkIrr() {
		return 0, fmt.Errorf("expected %d irreducible values, got %d", g.NkIrr(), len(vals))
	}
	var sum complex128
	for i, v := range vals {
		sum += v * complex(float64(g.counts[i]), 0)
	}
	return sum / complex(float64(g.NkTot()), 0), nil
}

// FindQIndex returns the mesh coordinates of the grid point closest to q.
func (g *KGrid) FindQIndex(q [3]float64) [3]int {
	return [3]int{
		nearestIndex(g.kx, q[0]),
		nearestIndex(g.ky, q[1]),
		nearestIndex(g.kz, q[2]),
	}
}

func nearestIndex(axis []float64, value float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, v := range axis {
		if d := math.Abs(v - value); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// reduce applies the symmetries to a linear index mesh and derives the
// irreducible-zone index maps from its unique values.
func (g *KGrid) reduce() error {
	mesh := make([]int, g.NkTot())
	for i := range mesh {
		mesh[i] = i
	}
	for _, sym := range g.symmetries {
		if err := g.applySymmetry(mesh, sym); err != nil {
			return err
		}
	}

	// Unique representative values in ascending order, with first-occurrence
	// positions and multiplicities.
	firstSeen := make(map[int]int)
	countByVal := make(map[int]int)
	for i, v := range mesh {
		if _, ok := firstSeen[v]; !ok {
			firstSeen[v] = i
		}
		countByVal[v]++
	}
	uniq := make([]int, 0, len(firstSeen))
	for v := range firstSeen {
		uniq = append(uniq, v)
	}
	sort.Ints(uniq)

	idByVal := make(map[int]int, len(uniq))
	g.irrInd = make([]int, len(uniq))
	g.counts = make([]int, len(uniq))
	for id, v := range uniq {
		idByVal[v] = id
		g.irrInd[id] = firstSeen[v]
		g.counts[id] = countByVal[v]
	}
	g.fbzToIrr = make([]int, len(mesh))
	for i, v := range mesh {
		g.fbzToIrr[i] = idByVal[v]
	}
	return nil
}

// applySymmetry folds the index mesh in place. Grid axes run over [0, 2π),
// so the k=0 plane has no mirror partner.
func (g *KGrid) applySymmetry(mesh []int, sym Symmetry) error {
	switch sym {
	case SymmetryXInv:
		g.invertAxis(mesh, 0)
	case SymmetryYInv:
		g.invertAxis(mesh, 1)
	case SymmetryZInv:
		g.invertAxis(mesh, 2)
	case SymmetryXYSym:
		if g.nk[0] != g.nk[1] {
			return fmt.Errorf("x-y-sym requires a square grid, got nk = %v", g.nk)
		}
		for ix := 0; ix < g.nk[0]; ix++ {
			for iy := 0; iy < g.nk[1]; iy++ {
				for iz := 0; iz < g.nk[2]; iz++ {
					a, b := g.FlatIndex(ix, iy, iz), g.FlatIndex(iy, ix, iz)
					m := min(mesh[a], mesh[b])
					mesh[a], mesh[b] = m, m
				}
			}
		}
	case SymmetryXYInv:
		nx, ny := g.nk[0], g.nk[1]
		for ix := nx/2 + 1; ix < nx; ix++ {
			for iy := 1; iy < ny; iy++ {
				for iz := 0; iz < g.nk[2]; iz++ {
					mesh[g.FlatIndex(ix, iy, iz)] = mesh[g.FlatIndex(nx-ix, ny-iy, iz)]
				}
			}
		}
	default:
		return fmt.Errorf("unknown symmetry: %q", sym)
	}
	return nil
}

// invertAxis maps every point beyond the half axis onto its inversion
// partner, c -> n - c.
func (g *KGrid) invertAxis(mesh []int, axis int) {
	n := g.nk[axis]
	for ix := 0; ix < g.nk[0]; ix++ {
		for iy := 0; iy < g.nk[1]; iy++ {
			for iz := 0; iz < g.nk[2]; iz++ {
				c := [3]int{ix, iy, iz}
				if c[axis] <= n/2 {
					continue
				}
				src := c
				src[axis] = n - c[axis]
				mesh[g.FlatIndex(c[0], c[1], c[2])] = mesh[g.FlatIndex(src[0], src[1], src[2])]
			}
		}
	}
}
