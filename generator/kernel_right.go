package generator

import "github.com/notargets/fluidq/utils"

// MulRight computes B*u for an M×m input, applying the structured kernel
// independently to each of u's m columns. It never materialises B.
func (g *LazyGenerator) MulRight(u utils.Matrix) (utils.Matrix, error) {
	M := g.layout.Size()
	nr, nc := u.Dims()
	if nr != M {
		return utils.Matrix{}, &Error{Kind: ShapeMismatch, Op: "MulRight", Want: M, Got: nr}
	}

	out := utils.NewMatrix(M, nc)
	for c := 0; c < nc; c++ {
		col := make([]float64, M)
		for r := 0; r < M; r++ {
			col[r] = u.At(r, c)
		}
		v, err := g.rightVec(col)
		if err != nil {
			return utils.Matrix{}, err
		}
		for r := 0; r < M; r++ {
			out.Set(r, c, v[r])
		}
	}
	return out, nil
}

// MulRightVec is a convenience wrapper over MulRight for a single length-M
// column vector.
func (g *LazyGenerator) MulRightVec(u []float64) ([]float64, error) {
	M := g.layout.Size()
	if len(u) != M {
		return nil, &Error{Kind: ShapeMismatch, Op: "MulRightVec", Want: M, Got: len(u)}
	}
	return g.rightVec(u)
}
