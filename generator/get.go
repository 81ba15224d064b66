package generator

import "math"

// membershipKey classifies a phase by which boundary(ies) it belongs to,
// so the cross-phase kernel/Get rules can tell "same membership" (direct
// T_ij coupling) from "differing membership" (coupling must route through
// D, since the phases disagree about which boundary condition applies).
func membershipKey(lwr, upr bool) int {
	k := 0
	if lwr {
		k |= 1
	}
	if upr {
		k |= 2
	}
	return k
}

// blockAt returns B[p0,q] for the block selected by the sign of c
// (B2 for c>0, B3 for c<0); it must not be called when c == 0.
func blockAt(b Blocks, c float64, p0, q int) float64 {
	if c > 0 {
		return b.B2.At(p0, q)
	}
	return b.B3.At(p0, q)
}

// Get computes B[row, col] in O(1) by dispatching on whether each index
// is boundary or interior, per the element-access rules.
func (g *LazyGenerator) Get(row, col int) (float64, error) {
	M := g.layout.Size()
	if row < 0 || row >= M {
		return 0, &Error{Kind: OutOfRange, Op: "Get", Index: row, Bound: M - 1}
	}
	if col < 0 || col >= M {
		return 0, &Error{Kind: OutOfRange, Op: "Get", Index: col, Bound: M - 1}
	}

	rowRegion, _ := g.layout.IsBoundary(row)
	colRegion, _ := g.layout.IsBoundary(col)

	T := g.dq.Phases.T
	rates := g.dq.Phases.Rates

	switch {
	case rowRegion != "interior" && colRegion != "interior":
		return g.getBoundaryBoundary(row, col, rowRegion, colRegion, T)
	case rowRegion == "interior" && colRegion != "interior":
		return g.getInteriorToBoundary(row, col, colRegion, rates)
	case rowRegion != "interior" && colRegion == "interior":
		return g.getBoundaryToInterior(row, col, rowRegion, T)
	default:
		return g.getInteriorInterior(row, col, rates, T)
	}
}

func (g *LazyGenerator) getBoundaryBoundary(row, col int, rowRegion, colRegion string, T matrixAt) (float64, error) {
	if rowRegion != colRegion {
		return 0, nil
	}
	return g.boundaryBoundaryValue(row, col, rowRegion, T)
}

// boundaryBoundaryValue re-derives the owning phases directly from the
// layout's rank tables (rank == the boundary-local index, since the
// lower segment starts at global index 0 and the upper segment starts
// right after the interior block).
func (g *LazyGenerator) boundaryBoundaryValue(row, col int, region string, T matrixAt) (float64, error) {
	var i, j, rowRank, colRank int
	var ok bool
	if region == "lower" {
		rowRank, colRank = row, col
		i, ok = g.layout.LowerPhase(row)
		if !ok {
			return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: row}
		}
		j, ok = g.layout.LowerPhase(col)
		if !ok {
			return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: col}
		}
		if g.dq.Phases.PLwr.M != nil {
			return T.At(i, j) + g.dq.Phases.PLwr.At(rowRank, colRank), nil
		}
	} else {
		upperBase := g.layout.NLower + g.n*g.k*g.p
		rowRank, colRank = row-upperBase, col-upperBase
		i, ok = g.layout.UpperPhase(rowRank)
		if !ok {
			return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: row}
		}
		j, ok = g.layout.UpperPhase(colRank)
		if !ok {
			return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: col}
		}
		if g.dq.Phases.PUpr.M != nil {
			return T.At(i, j) + g.dq.Phases.PUpr.At(rowRank, colRank), nil
		}
	}
	return T.At(i, j), nil
}

func (g *LazyGenerator) getInteriorToBoundary(row, col int, colRegion string, rates []float64) (float64, error) {
	i, k, q, err := g.layout.FromInterior(row)
	if err != nil {
		return 0, err
	}
	width, err := g.dq.Mesh.CellWidth(k)
	if err != nil {
		return 0, err
	}

	if colRegion == "lower" {
		j, ok := g.layout.LowerPhase(col)
		if !ok {
			return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: col}
		}
		if j != i || rates[i] >= 0 || k != 0 {
			return 0, nil
		}
		return math.Abs(rates[i]) * g.flux.Lower.In[q] / width, nil
	}

	upperBase := g.layout.NLower + g.n*g.k*g.p
	j, ok := g.layout.UpperPhase(col - upperBase)
	if !ok {
		return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: col}
	}
	if j != i || rates[i] <= 0 || k != g.k-1 {
		return 0, nil
	}
	return rates[i] * g.flux.Upper.In[q] / width, nil
}

func (g *LazyGenerator) getBoundaryToInterior(row, col int, rowRegion string, T matrixAt) (float64, error) {
	j, l, q, err := g.layout.FromInterior(col)
	if err != nil {
		return 0, err
	}
	rates := g.dq.Phases.Rates

	if rowRegion == "lower" {
		i, ok := g.layout.LowerPhase(row)
		if !ok {
			return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: row}
		}
		if l != 0 || rates[j] <= 0 {
			return 0, nil
		}
		return T.At(i, j) * g.flux.Lower.Out[q], nil
	}

	upperBase := g.layout.NLower + g.n*g.k*g.p
	i, ok := g.layout.UpperPhase(row - upperBase)
	if !ok {
		return 0, &Error{Kind: InvalidBoundary, Op: "Get", Index: row}
	}
	if l != g.k-1 || rates[j] >= 0 {
		return 0, nil
	}
	return T.At(i, j) * g.flux.Upper.Out[q], nil
}

func (g *LazyGenerator) getInteriorInterior(row, col int, rates []float64, T matrixAt) (float64, error) {
	i, k, p0, err := g.layout.FromInterior(row)
	if err != nil {
		return 0, err
	}
	j, l, q, err := g.layout.FromInterior(col)
	if err != nil {
		return 0, err
	}

	if i == j && k == l {
		var diag float64
		if rates[i] != 0 {
			width, err := g.dq.Mesh.CellWidth(k)
			if err != nil {
				return 0, err
			}
			diag = math.Abs(rates[i]) * blockAt(g.blocks, rates[i], p0, q) / width
		}
		if p0 == q {
			diag += T.At(i, i)
		}
		return diag, nil
	}
	if i == j && l == k+1 && rates[i] > 0 {
		width, err := g.dq.Mesh.CellWidth(k)
		if err != nil {
			return 0, err
		}
		return rates[i] * g.blocks.B4.At(p0, q) / width, nil
	}
	if i == j && l == k-1 && rates[i] < 0 {
		width, err := g.dq.Mesh.CellWidth(k)
		if err != nil {
			return 0, err
		}
		return math.Abs(rates[i]) * g.blocks.B1.At(p0, q) / width, nil
	}
	if i != j && k == l {
		lwr := g.dq.Phases.LwrMember
		upr := g.dq.Phases.UprMember
		if membershipKey(lwr[i], upr[i]) != membershipKey(lwr[j], upr[j]) {
			return T.At(i, j) * g.blocks.D.At(p0, q), nil
		}
		if p0 == q {
			return T.At(i, j), nil
		}
		return 0, nil
	}
	return 0, nil
}

// matrixAt is the minimal read interface Get needs from PhaseSet.T.
type matrixAt interface {
	At(i, j int) float64
}
