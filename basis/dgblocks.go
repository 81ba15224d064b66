package basis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/fluidq/utils"
)

// Basis1D is the order-(p-1) orthonormal Legendre nodal basis on [-1,1]:
// Gauss-Lobatto nodes, the Vandermonde matrix, and the resulting
// differentiation matrix Dr = Vr·V⁻¹.
type Basis1D struct {
	P     int
	Nodes []float64
	V     *mat.Dense // Vandermonde matrix
	Vinv  *mat.Dense
	Dr    *mat.Dense // nodal differentiation matrix
}

// Legendre builds the Basis1D of order p-1 (p nodes/basis functions per
// cell).
func Legendre(p int) Basis1D {
	if p < 1 {
		panic("basis: Legendre requires p >= 1")
	}
	N := p - 1
	nodes := JacobiGL(0, 0, N)
	V := Vandermonde1D(nodes, N)
	Vr := GradVandermonde1D(nodes, N)

	var Vinv mat.Dense
	if err := Vinv.Inverse(V); err != nil {
		panic("basis: Vandermonde matrix is singular: " + err.Error())
	}
	var Dr mat.Dense
	Dr.Mul(Vr, &Vinv)

	return Basis1D{P: p, Nodes: nodes, V: V, Vinv: &Vinv, Dr: &Dr}
}

// Recipe is the scheme-neutral output of a basis construction: the four
// block recipes and boundary flux vectors a generator.Blocks/
// generator.BoundaryFlux can be built from, without this package needing
// to depend on the generator package.
type Recipe struct {
	B1, B2, B3, B4, D [][]float64
	LowerIn, LowerOut []float64
	UpperIn, UpperOut []float64
}

// DGBlocks derives the DG scheme's block recipe from the differentiation
// matrix and edge evaluation vectors.
//
// D is the identity: phase-membership changes leave basis coefficients
// untouched in the DG scheme.
//
// The diagonal blocks come from the negated differentiation matrix — an
// upwind DG discretisation of the drift term ∂/∂x moves mass with the
// flow, and -Dr's row sums are zero (differentiating a constant yields
// zero), which is what keeps the assembled generator's row sums at zero
// once the edge terms below are added back in. B2 (positive drift) and B3
// (negative drift) each subtract the corresponding edge's rank-one
// self-outflow so the diagonal block's own row sum cancels exactly
// against the block that carries mass into the neighbouring cell:
//
//	B2 = -Dr - e_last  e_last^T     B4 =  e_last  e_first^T
//	B3 = -Dr - e_first e_first^T    B1 =  e_first e_last^T
//
// e_first/e_last are the standard basis vectors selecting the left/right
// edge node — exactly the edge-evaluation vectors an upwind DG flux uses
// at a Gauss-Lobatto node set, since node 0 and node p-1 sit exactly on
// the cell edges.
func (b Basis1D) DGBlocks() Recipe {
	p := b.P
	eFirst := unit(p, 0)
	eLast := unit(p, p-1)

	negDr := toSlice(b.Dr)
	scale(negDr, -1)

	negFirst := unit(p, 0)
	negFirst[0] = -1
	negLast := unit(p, p-1)
	negLast[p-1] = -1

	B2 := addOuter(negDr, negLast, eLast)
	B3 := addOuter(negDr, negFirst, eFirst)
	B4 := outer(eLast, eFirst)
	B1 := outer(eFirst, eLast)
	D := identity(p)

	return Recipe{
		B1: B1, B2: B2, B3: B3, B4: B4, D: D,
		LowerIn: eFirst, LowerOut: eFirst,
		UpperIn: eLast, UpperOut: eLast,
	}
}

// Matrix converts a Recipe block into a utils.Matrix.
func Matrix(rows [][]float64) utils.Matrix {
	p := len(rows)
	data := make([]float64, p*p)
	for i, row := range rows {
		copy(data[i*p:(i+1)*p], row)
	}
	return utils.NewMatrix(p, p, data)
}

func unit(n, i int) []float64 {
	v := make([]float64, n)
	v[i] = 1
	return v
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = unit(n, i)
	}
	return m
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

func addOuter(base [][]float64, a, b []float64) [][]float64 {
	o := outer(a, b)
	for i := range base {
		for j := range base[i] {
			o[i][j] += base[i][j]
		}
	}
	return o
}

func toSlice(m *mat.Dense) [][]float64 {
	nr, nc := m.Dims()
	out := make([][]float64, nr)
	for i := 0; i < nr; i++ {
		out[i] = make([]float64, nc)
		for j := 0; j < nc; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func scale(m [][]float64, a float64) {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= a
		}
	}
}
