package generator

import "github.com/notargets/fluidq/utils"

// materialiseTol is the magnitude below which an assembled entry is
// dropped rather than stored explicitly in the sparse result.
const materialiseTol = 1e-14

// Materialise builds the full M×M sparse generator by applying MulLeft
// to each standard basis row vector in turn and writing the nonzero
// results into a DOK, then converting once to CSR — the same
// assemble-then-convert shape the teacher's sparse pipeline uses
// elsewhere for its face-to-vertex operator.
func Materialise(lazy *LazyGenerator) (*FullGenerator, error) {
	m, _ := lazy.Size()
	dok := utils.NewDOK(m, m)

	e := make([]float64, m)
	for row := 0; row < m; row++ {
		if row > 0 {
			e[row-1] = 0
		}
		e[row] = 1
		v, err := lazy.leftVec(e)
		if err != nil {
			return nil, err
		}
		for col, val := range v {
			if val > materialiseTol || val < -materialiseTol {
				dok.M.Set(row, col, val)
			}
		}
	}

	return &FullGenerator{M: dok.ToCSR(), m: m}, nil
}
