package generator

import "github.com/notargets/fluidq/utils"

// MulLeft computes u*B for an m×M input, applying the structured kernel
// independently to each of u's m rows. It never materialises B.
func (g *LazyGenerator) MulLeft(u utils.Matrix) (utils.Matrix, error) {
	M := g.layout.Size()
	nr, nc := u.Dims()
	if nc != M {
		return utils.Matrix{}, &Error{Kind: ShapeMismatch, Op: "MulLeft", Want: M, Got: nc}
	}

	out := utils.NewMatrix(nr, M)
	for r := 0; r < nr; r++ {
		row := make([]float64, M)
		for c := 0; c < M; c++ {
			row[c] = u.At(r, c)
		}
		v, err := g.leftVec(row)
		if err != nil {
			return utils.Matrix{}, err
		}
		for c := 0; c < M; c++ {
			out.Set(r, c, v[c])
		}
	}
	return out, nil
}

// MulLeftVec is a convenience wrapper over MulLeft for a single length-M
// row vector.
func (g *LazyGenerator) MulLeftVec(u []float64) ([]float64, error) {
	M := g.layout.Size()
	if len(u) != M {
		return nil, &Error{Kind: ShapeMismatch, Op: "MulLeftVec", Want: M, Got: len(u)}
	}
	return g.leftVec(u)
}
