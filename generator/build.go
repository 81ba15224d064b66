package generator

import (
	"github.com/notargets/fluidq/basis"
	"github.com/notargets/fluidq/frap"
	"github.com/notargets/fluidq/model"
	"github.com/notargets/fluidq/utils"
)

// BuildLazyGenerator derives the block recipe for dq.Mesh.Scheme and
// wraps it in a LazyGenerator. FV has no lazy representation (its mesh
// is pinned to P==1 finite-volume cells with no per-cell basis to
// derive blocks from) and returns Unsupported.
func BuildLazyGenerator(dq *model.DiscretisedFluidQueue) (*LazyGenerator, error) {
	blocks, flux, err := buildBlocks(dq)
	if err != nil {
		return nil, err
	}
	return NewLazyGenerator(dq, blocks, flux)
}

// BuildFullGenerator builds the materialised generator directly. For DG
// and FRAP it goes through the lazy layer and applies Materialise; FV
// bypasses the lazy layer entirely and assembles the P==1 upwind finite-
// volume generator directly, since FV has no block-recipe/basis
// representation for BuildLazyGenerator to consume.
func BuildFullGenerator(dq *model.DiscretisedFluidQueue) (*FullGenerator, error) {
	if dq.Mesh.Scheme == model.FV {
		return buildFullFV(dq)
	}
	lazy, err := BuildLazyGenerator(dq)
	if err != nil {
		return nil, err
	}
	return Materialise(lazy)
}

func buildBlocks(dq *model.DiscretisedFluidQueue) (Blocks, BoundaryFlux, error) {
	switch dq.Mesh.Scheme {
	case model.DG:
		return buildDGBlocks(dq)
	case model.FRAP:
		return buildFRAPBlocks(dq)
	case model.FV:
		return Blocks{}, BoundaryFlux{}, &Error{Kind: Unsupported, Op: "BuildLazyGenerator", Msg: "finite-volume scheme has no lazy-generator representation"}
	default:
		return Blocks{}, BoundaryFlux{}, &Error{Kind: Unsupported, Op: "BuildLazyGenerator", Msg: "unknown scheme"}
	}
}

func buildDGBlocks(dq *model.DiscretisedFluidQueue) (Blocks, BoundaryFlux, error) {
	p := dq.P()
	bas := basis.Legendre(p)
	recipe := bas.DGBlocks()

	blocks, err := NewBlocks(
		basis.Matrix(recipe.B1), basis.Matrix(recipe.B2),
		basis.Matrix(recipe.B3), basis.Matrix(recipe.B4),
		basis.Matrix(recipe.D),
	)
	if err != nil {
		return Blocks{}, BoundaryFlux{}, err
	}
	flux, err := NewBoundaryFlux(p, recipe.LowerIn, recipe.LowerOut, recipe.UpperIn, recipe.UpperOut)
	if err != nil {
		return Blocks{}, BoundaryFlux{}, err
	}
	return blocks, flux, nil
}

func buildFRAPBlocks(dq *model.DiscretisedFluidQueue) (Blocks, BoundaryFlux, error) {
	fp := dq.Mesh.FRAPParams
	params := frap.Params{Entry: fp.Entry, S: fp.S, ExitRate: fp.ExitRate, D: fp.D}
	recipe := frap.Blocks(params)

	blocks, err := NewBlocksFRAP(
		frap.Matrix(recipe.B1), frap.Matrix(recipe.B2), frap.Matrix(recipe.B4),
		frap.Matrix(recipe.D),
	)
	if err != nil {
		return Blocks{}, BoundaryFlux{}, err
	}
	p := dq.P()
	flux, err := NewBoundaryFlux(p, recipe.LowerIn, recipe.LowerOut, recipe.UpperIn, recipe.UpperOut)
	if err != nil {
		return Blocks{}, BoundaryFlux{}, err
	}
	return blocks, flux, nil
}

// buildFullFV assembles the first-order upwind finite-volume generator
// directly as a single scalar per phase per cell (P==1): the same
// same-phase-tridiagonal and boundary-flux structure as the lazy kernel,
// but written straight into a sparse matrix since there is no per-cell
// basis recipe to route through the lazy layer.
func buildFullFV(dq *model.DiscretisedFluidQueue) (*FullGenerator, error) {
	n, k := dq.N(), dq.K()
	rates := dq.Phases.Rates
	T := dq.Phases.T
	lwr, upr := dq.Phases.LwrMember, dq.Phases.UprMember

	layoutSize := 0
	for _, v := range lwr {
		if v {
			layoutSize++
		}
	}
	nLower := layoutSize
	layoutSize = 0
	for _, v := range upr {
		if v {
			layoutSize++
		}
	}
	nUpper := layoutSize

	m := nLower + n*k + nUpper
	dok := utils.NewDOK(m, m)

	lowerRank := make([]int, n)
	upperRank := make([]int, n)
	rl, ru := 0, 0
	for i := 0; i < n; i++ {
		if lwr[i] {
			lowerRank[i] = rl
			rl++
		}
		if upr[i] {
			upperRank[i] = ru
			ru++
		}
	}
	upperBase := nLower + n*k
	interior := func(i, cell int) int { return nLower + i*k + cell }

	// Boundary-boundary block: T restricted to boundary-member phases.
	for i := 0; i < n; i++ {
		if !lwr[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !lwr[j] {
				continue
			}
			dok.M.Set(lowerRank[i], lowerRank[j], T.At(i, j))
		}
	}
	for i := 0; i < n; i++ {
		if !upr[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !upr[j] {
				continue
			}
			dok.M.Set(upperBase+upperRank[i], upperBase+upperRank[j], T.At(i, j))
		}
	}

	for i := 0; i < n; i++ {
		c := rates[i]
		for cell := 0; cell < k; cell++ {
			width, err := dq.Mesh.CellWidth(cell)
			if err != nil {
				return nil, err
			}
			row := interior(i, cell)

			if c < 0 {
				dok.M.Set(row, row, -((-c)/width)+T.At(i, i))
				if cell-1 >= 0 {
					dok.M.Set(row, interior(i, cell-1), (-c)/width)
				} else {
					dok.M.Set(row, lowerRank[i], (-c)/width)
				}
			} else if c > 0 {
				dok.M.Set(row, row, -(c/width)+T.At(i, i))
				if cell+1 < k {
					dok.M.Set(row, interior(i, cell+1), c/width)
				} else {
					dok.M.Set(row, upperBase+upperRank[i], c/width)
				}
			} else {
				dok.M.Set(row, row, T.At(i, i))
			}

			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				tij := T.At(i, j)
				if tij == 0 {
					continue
				}
				dok.M.Set(row, interior(j, cell), tij)
			}
		}
	}

	// Lower/upper boundary rows feeding back into the first/last cell of
	// positive/negative drift phases, mirroring the lazy kernel's
	// boundary-to-interior contribution with a trivial (scalar) flux.
	for i := 0; i < n; i++ {
		if !lwr[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if rates[j] <= 0 {
				continue
			}
			dok.M.Set(lowerRank[i], interior(j, 0), T.At(i, j))
		}
	}
	for i := 0; i < n; i++ {
		if !upr[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if rates[j] >= 0 {
				continue
			}
			dok.M.Set(upperBase+upperRank[i], interior(j, k-1), T.At(i, j))
		}
	}

	return &FullGenerator{M: dok.ToCSR(), m: m}, nil
}
