package generator

import "github.com/notargets/fluidq/utils"

// FullGenerator is the materialised M×M sparse generator, stored CSR as
// the teacher's sparse pipeline does (utils.DOK built during assembly,
// then converted once via ToCSR for fast read access and downstream
// linear algebra).
type FullGenerator struct {
	M utils.CSR
	m int
}

// Size returns (M, M).
func (f *FullGenerator) Size() (int, int) { return f.m, f.m }

// At returns B[row, col] by delegating to the underlying sparse matrix.
func (f *FullGenerator) At(row, col int) float64 { return f.M.At(row, col) }

// RowSum sums row `row` across every column — the primitive the
// conservation-invariant check is built on.
func (f *FullGenerator) RowSum(row int) float64 {
	var s float64
	for c := 0; c < f.m; c++ {
		s += f.M.At(row, c)
	}
	return s
}

// Add returns a new FullGenerator equal to f + other, entrywise.
func (f *FullGenerator) Add(other *FullGenerator) (*FullGenerator, error) {
	if f.m != other.m {
		return nil, &Error{Kind: ShapeMismatch, Op: "FullGenerator.Add", Want: f.m, Got: other.m}
	}
	return f.combine(other, func(a, b float64) float64 { return a + b }), nil
}

// Sub returns a new FullGenerator equal to f - other, entrywise.
func (f *FullGenerator) Sub(other *FullGenerator) (*FullGenerator, error) {
	if f.m != other.m {
		return nil, &Error{Kind: ShapeMismatch, Op: "FullGenerator.Sub", Want: f.m, Got: other.m}
	}
	return f.combine(other, func(a, b float64) float64 { return a - b }), nil
}

// Mul returns a new FullGenerator equal to the matrix product f*other.
func (f *FullGenerator) Mul(other *FullGenerator) (*FullGenerator, error) {
	if f.m != other.m {
		return nil, &Error{Kind: ShapeMismatch, Op: "FullGenerator.Mul", Want: f.m, Got: other.m}
	}
	dok := utils.NewDOK(f.m, f.m)
	for r := 0; r < f.m; r++ {
		for c := 0; c < f.m; c++ {
			var s float64
			for mid := 0; mid < f.m; mid++ {
				s += f.M.At(r, mid) * other.M.At(mid, c)
			}
			if s > materialiseTol || s < -materialiseTol {
				dok.M.Set(r, c, s)
			}
		}
	}
	return &FullGenerator{M: dok.ToCSR(), m: f.m}, nil
}

// Scale returns a new FullGenerator with every entry multiplied by alpha.
func (f *FullGenerator) Scale(alpha float64) *FullGenerator {
	dok := utils.NewDOK(f.m, f.m)
	for r := 0; r < f.m; r++ {
		for c := 0; c < f.m; c++ {
			v := f.M.At(r, c) * alpha
			if v > materialiseTol || v < -materialiseTol {
				dok.M.Set(r, c, v)
			}
		}
	}
	return &FullGenerator{M: dok.ToCSR(), m: f.m}
}

// combine assembles a new FullGenerator by applying op entrywise to f and
// other, the same assemble-into-DOK-then-ToCSR shape Materialise uses.
func (f *FullGenerator) combine(other *FullGenerator, op func(a, b float64) float64) *FullGenerator {
	dok := utils.NewDOK(f.m, f.m)
	for r := 0; r < f.m; r++ {
		for c := 0; c < f.m; c++ {
			v := op(f.M.At(r, c), other.M.At(r, c))
			if v > materialiseTol || v < -materialiseTol {
				dok.M.Set(r, c, v)
			}
		}
	}
	return &FullGenerator{M: dok.ToCSR(), m: f.m}
}
