package frap

import "github.com/notargets/fluidq/utils"

// Recipe mirrors basis.Recipe: the scheme-neutral block/flux data a
// generator.Blocks/generator.BoundaryFlux is built from, kept free of any
// dependency on the generator package.
type Recipe struct {
	B1, B2, B3, B4, D [][]float64
	LowerIn, LowerOut []float64
	UpperIn, UpperOut []float64
}

// Blocks derives the FRAP scheme's block recipe from an ME parameter
// tuple, per the spec's "B_mid = S, up/down flux vectors are s and a"
// rule: the off-diagonal coupling blocks are the rank-one outer product
// of the exit-rate vector with the entry distribution, which is what
// makes row sums cancel against B_mid = S's row sums (s = -S·1 is exactly
// the negative of S's row sums). The boundary flux "in" direction
// (interior draining into the boundary point mass) uses the exit vector
// s for the same reason; the "out" direction (boundary releasing back
// into the interior) uses the entry distribution a, which sums to 1 and
// is what keeps the boundary row's own sum at zero.
func Blocks(p Params) Recipe {
	mid := p.S
	off := outer(p.ExitRate, p.Entry)

	return Recipe{
		B1: off, B2: mid, B3: mid, B4: off, D: p.D,
		LowerIn: p.ExitRate, LowerOut: p.Entry,
		UpperIn: p.ExitRate, UpperOut: p.Entry,
	}
}

// Matrix converts a Recipe block into a utils.Matrix.
func Matrix(rows [][]float64) utils.Matrix {
	n := len(rows)
	data := make([]float64, n*n)
	for i, row := range rows {
		copy(data[i*n:(i+1)*n], row)
	}
	return utils.NewMatrix(n, n, data)
}

func outer(a, b []float64) [][]float64 {
	m := make([][]float64, len(a))
	for i, av := range a {
		row := make([]float64, len(b))
		for j, bv := range b {
			row[j] = av * bv
		}
		m[i] = row
	}
	return m
}
