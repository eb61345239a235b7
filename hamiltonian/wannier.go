package hamiltonian

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// tokenize splits a file into whitespace-separated tokens, dropping
// '#'-prefixed comments.
func tokenize(data []byte) []string {
	var tokens []string
	for _, line := range strings.Split(string(data), "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	return tokens
}

type tokenReader struct {
	tokens []string
	pos    int
	path   string
}

func (r *tokenReader) next() (string, error) {
	if r.pos >= len(r.tokens) {
		return "", fmt.Errorf("%s: unexpected end of file", r.path)
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, nil
}

func (r *tokenReader) nextInt() (int, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		// hr files written by some tools carry integer fields as floats
		f, ferr := strconv.ParseFloat(tok, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("%s: expected integer, got %q", r.path, tok)
		}
		v = int(f)
	}
	return v, nil
}

func (r *tokenReader) nextFloat() (float64, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: expected number, got %q", r.path, tok)
	}
	return v, nil
}

func (r *tokenReader) remaining() int {
	return len(r.tokens) - r.pos
}

// ReadHrW2K reads a real-space kinetic Hamiltonian from a wannier90 hr file.
// The first line is a comment, followed by the band count, the number of
// lattice vectors, the degeneracy weights and one line per matrix element:
// rx ry rz orb1 orb2 re im.
func ReadHrW2K(path string) (*Hamiltonian, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Drop the comment line before tokenizing; it is free-form text.
	if i := strings.IndexByte(string(data), '\n'); i >= 0 {
		data = data[i+1:]
	}
	r := &tokenReader{tokens: tokenize(data), path: path}

	nBands, err := r.nextInt()
	if err != nil {
		return nil, err
	}
	nR, err := r.nextInt()
	if err != nil {
		return nil, err
	}
	if nBands < 1 || nR < 1 {
		return nil, fmt.Errorf("%s: invalid header: %d bands, %d lattice vectors", path, nBands, nR)
	}

	h := &Hamiltonian{
		nBands:   nBands,
		rVecs:    make([][3]int, nR),
		rWeights: make([]float64, nR),
		er:       make([]complex128, nR*nBands*nBands),
	}
	for ir := 0; ir < nR; ir++ {
		w, err := r.nextInt()
		if err != nil {
			return nil, err
		}
		h.rWeights[ir] = float64(w)
	}

	nRows := nR * nBands * nBands
	if r.remaining() != 7*nRows {
		return nil, fmt.Errorf("%s: expected %d matrix element values, got %d", path, 7*nRows, r.remaining())
	}
	for row := 0; row < nRows; row++ {
		var rVec [3]int
		for i := range rVec {
			if rVec[i], err = r.nextInt(); err != nil {
				return nil, err
			}
		}
		o1, err := r.nextInt()
		if err != nil {
			return nil, err
		}
		o2, err := r.nextInt()
		if err != nil {
			return nil, err
		}
		re, err := r.nextFloat()
		if err != nil {
			return nil, err
		}
		im, err := r.nextFloat()
		if err != nil {
			return nil, err
		}
		if o1 < 1 || o1 > nBands || o2 < 1 || o2 > nBands {
			return nil, fmt.Errorf("%s: orbital indices (%d, %d) out of range for %d bands", path, o1, o2, nBands)
		}
		ir := row / (nBands * nBands)
		if row%(nBands*nBands) == 0 {
			h.rVecs[ir] = rVec
		} else if h.rVecs[ir] != rVec {
			return nil, fmt.Errorf("%s: lattice vector block %d mixes %v and %v", path, ir, h.rVecs[ir], rVec)
		}
		h.er[(ir*nBands+o1-1)*nBands+o2-1] = complex(re, im)
	}
	return h, nil
}

// WriteHrW2K writes the real-space kinetic Hamiltonian in wannier90 hr
// format.
func (h *Hamiltonian) WriteHrW2K(path string) error {
	if h.er == nil {
		return fmt.Errorf("kinetic term not set")
	}
	var b strings.Builder
	b.WriteString("# Written by the dga lattice toolkit\n")
	fmt.Fprintf(&b, "%d \n", h.nBands)
	fmt.Fprintf(&b, "%d \n", len(h.rVecs))

	const perLine = 15
	for i := 0; i < len(h.rWeights); i += perLine {
		end := i + perLine
		if end > len(h.rWeights) {
			end = len(h.rWeights)
		}
		parts := make([]string, 0, perLine)
		for _, w := range h.rWeights[i:end] {
			parts = append(parts, strconv.Itoa(int(w)))
		}
		b.WriteString("    " + strings.Join(parts, "    ") + "\n")
	}

	nb := h.nBands
	for ir, r := range h.rVecs {
		for o1 := 1; o1 <= nb; o1++ {
			for o2 := 1; o2 <= nb; o2++ {
				v := h.er[(ir*nb+o1-1)*nb+o2-1]
				fmt.Fprintf(&b, "% 5d% 5d% 5d% 5d% 5d% 12.6f% 12.6f\n",
					r[0], r[1], r[2], o1, o2, real(v), imag(v))
			}
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// ReadUMatrix reads an interaction matrix from a file in the hr-like
// U-matrix format: the band count, the number of lattice vectors, the
// degeneracy weights, and one line per entry:
// rx ry rz orb1 orb2 orb3 orb4 re im. The interaction is taken to be real.
func (h *Hamiltonian) ReadUMatrix(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r := &tokenReader{tokens: tokenize(data), path: path}

	if _, err := r.nextInt(); err != nil { // band count, implied by the entries
		return err
	}
	nR, err := r.nextInt()
	if err != nil {
		return err
	}
	for i := 0; i < nR; i++ {
		if _, err := r.nextInt(); err != nil {
			return err
		}
	}

	const cols = 9
	if r.remaining()%cols != 0 {
		return fmt.Errorf("%s: expected rows of %d values, got %d leftover", path, cols, r.remaining()%cols)
	}
	var elements []InteractionElement
	for r.remaining() > 0 {
		var el InteractionElement
		for i := range el.R {
			if el.R[i], err = r.nextInt(); err != nil {
				return err
			}
		}
		for i := range el.Orbs {
			if el.Orbs[i], err = r.nextInt(); err != nil {
				return err
			}
		}
		if el.Value, err = r.nextFloat(); err != nil {
			return err
		}
		if _, err = r.nextFloat(); err != nil { // imaginary part, always zero
			return err
		}
		elements = append(elements, el)
	}
	return h.AddInteractionTerm(elements)
}

// ReadHkW2K reads a momentum-space Hamiltonian from a wannier90 Hk text
// file. The header line holds the number of k-points, the number of
// wannier functions and the (ignored) band count. Each k-point block is a
// coordinate line followed by one line per orbital row with interleaved
// real and imaginary parts. Returns the Hamiltonian with the dispersion
// preset and the list of k-points.
func ReadHkW2K(path string) (*Hamiltonian, [][3]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	r := &tokenReader{tokens: tokenize(data), path: path}

	nk, err := r.nextInt()
	if err != nil {
		return nil, nil, err
	}
	nBands, err := r.nextInt()
	if err != nil {
		return nil, nil, err
	}
	if _, err := r.nextInt(); err != nil {
		return nil, nil, err
	}
	if nk < 1 || nBands < 1 {
		return nil, nil, fmt.Errorf("%s: invalid header: %d k-points, %d bands", path, nk, nBands)
	}

	ek := make([]complex128, nk*nBands*nBands)
	kpoints := make([][3]float64, nk)
	for ik := 0; ik < nk; ik++ {
		for i := range kpoints[ik] {
			if kpoints[ik][i], err = r.nextFloat(); err != nil {
				return nil, nil, err
			}
		}
		for o1 := 0; o1 < nBands; o1++ {
			for o2 := 0; o2 < nBands; o2++ {
				re, err := r.nextFloat()
				if err != nil {
					return nil, nil, err
				}
				im, err := r.nextFloat()
				if err != nil {
					return nil, nil, err
				}
				ek[(ik*nBands+o1)*nBands+o2] = complex(re, im)
			}
		}
	}
	if r.remaining() > 0 {
		return nil, nil, fmt.Errorf("%s: %d trailing values after %d k-points", path, r.remaining(), nk)
	}
	if err := checkHermitian(ek, nk, nBands); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	h := New()
	h.SetEk(ek, [3]int{}, nBands)
	return h, kpoints, nil
}

func checkHermitian(ek []complex128, nk, nBands int) error {
	const tol = 1e-8
	for ik := 0; ik < nk; ik++ {
		for o1 := 0; o1 < nBands; o1++ {
			for o2 := 0; o2 < nBands; o2++ {
				a := ek[(ik*nBands+o1)*nBands+o2]
				b := ek[(ik*nBands+o2)*nBands+o1]
				if math.Abs(real(a)-real(b)) > tol || math.Abs(imag(a)+imag(b)) > tol {
					return fmt.Errorf("hermiticity violation at k-point %d, orbitals (%d, %d)", ik, o1+1, o2+1)
				}
			}
		}
	}
	return nil
}
