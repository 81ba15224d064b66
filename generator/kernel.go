package generator

import "math"

// applyBlockRight accumulates dst[p0] += scale * sum_q block[p0,q]*src[q]
// for p0, q in [0,p) — the row-indexed (output-on-row) orientation used by
// MulRight.
func applyBlockRight(dst, src []float64, block matrixAt, p int, scale float64) {
	for p0 := 0; p0 < p; p0++ {
		var acc float64
		for q := 0; q < p; q++ {
			acc += block.At(p0, q) * src[q]
		}
		dst[p0] += scale * acc
	}
}

// applyBlockLeft accumulates dst[q] += scale * sum_p0 src[p0]*block[p0,q]
// — the column-indexed (output-on-column) orientation used by MulLeft.
func applyBlockLeft(dst, src []float64, block matrixAt, p int, scale float64) {
	for q := 0; q < p; q++ {
		var acc float64
		for p0 := 0; p0 < p; p0++ {
			acc += src[p0] * block.At(p0, q)
		}
		dst[q] += scale * acc
	}
}

// rightVec computes v = B*u for a single length-M column vector u,
// following the seven-contribution decomposition, row-indexed.
func (g *LazyGenerator) rightVec(u []float64) ([]float64, error) {
	M := g.layout.Size()
	v := make([]float64, M)
	T := g.dq.Phases.T
	rates := g.dq.Phases.Rates
	lwr, upr := g.dq.Phases.LwrMember, g.dq.Phases.UprMember
	upperBase := g.layout.NLower + g.n*g.k*g.p

	// 1: boundary-to-boundary. When the phase set is bounded, PLwr/PUpr
	// add a reflection term on top of T's own boundary-boundary coupling
	// (both are indexed by boundary rank already, so no phase lookup is
	// needed for that half of the sum).
	pLwr, pUpr := g.dq.Phases.PLwr, g.dq.Phases.PUpr
	for rowRank := 0; rowRank < g.layout.NLower; rowRank++ {
		i, _ := g.layout.LowerPhase(rowRank)
		var acc float64
		for colRank := 0; colRank < g.layout.NLower; colRank++ {
			j, _ := g.layout.LowerPhase(colRank)
			acc += T.At(i, j) * u[colRank]
			if pLwr.M != nil {
				acc += pLwr.At(rowRank, colRank) * u[colRank]
			}
		}
		v[rowRank] += acc
	}
	for rowRank := 0; rowRank < g.layout.NUpper; rowRank++ {
		i, _ := g.layout.UpperPhase(rowRank)
		var acc float64
		for colRank := 0; colRank < g.layout.NUpper; colRank++ {
			j, _ := g.layout.UpperPhase(colRank)
			acc += T.At(i, j) * u[upperBase+colRank]
			if pUpr.M != nil {
				acc += pUpr.At(rowRank, colRank) * u[upperBase+colRank]
			}
		}
		v[upperBase+rowRank] += acc
	}

	// 2/4: interior-to-boundary (flux in).
	for i := 0; i < g.n; i++ {
		if lwr[i] && rates[i] < 0 {
			width, _ := g.dq.Mesh.CellWidth(0)
			bIdx, _ := g.layout.BoundaryIndexLower(i)
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(i, 0, q)
				v[idx] += math.Abs(rates[i]) * g.flux.Lower.In[q] / width * u[bIdx]
			}
		}
		if upr[i] && rates[i] > 0 {
			width, _ := g.dq.Mesh.CellWidth(g.k - 1)
			bIdx, _ := g.layout.BoundaryIndexUpper(i)
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(i, g.k-1, q)
				v[idx] += rates[i] * g.flux.Upper.In[q] / width * u[bIdx]
			}
		}
	}

	// 3/5: boundary-to-interior (flux out).
	for lowerRank := 0; lowerRank < g.layout.NLower; lowerRank++ {
		i, _ := g.layout.LowerPhase(lowerRank)
		for j := 0; j < g.n; j++ {
			if rates[j] <= 0 {
				continue
			}
			var s float64
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(j, 0, q)
				s += g.flux.Lower.Out[q] * u[idx]
			}
			v[lowerRank] += T.At(i, j) * s
		}
	}
	for upperRank := 0; upperRank < g.layout.NUpper; upperRank++ {
		i, _ := g.layout.UpperPhase(upperRank)
		for j := 0; j < g.n; j++ {
			if rates[j] >= 0 {
				continue
			}
			var s float64
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(j, g.k-1, q)
				s += g.flux.Upper.Out[q] * u[idx]
			}
			v[upperBase+upperRank] += T.At(i, j) * s
		}
	}

	// 6: same-phase interior tridiagonal.
	for i := 0; i < g.n; i++ {
		c := rates[i]
		for kc := 0; kc < g.k; kc++ {
			width, _ := g.dq.Mesh.CellWidth(kc)
			base, _ := g.layout.InteriorIndex(i, kc, 0)
			uSeg := u[base : base+g.p]
			vSeg := v[base : base+g.p]

			if c > 0 {
				applyBlockRight(vSeg, uSeg, g.blocks.B2, g.p, c/width)
			} else if c < 0 {
				applyBlockRight(vSeg, uSeg, g.blocks.B3, g.p, math.Abs(c)/width)
			}
			tii := T.At(i, i)
			for q := 0; q < g.p; q++ {
				vSeg[q] += tii * uSeg[q]
			}

			if c > 0 && kc+1 < g.k {
				nbase, _ := g.layout.InteriorIndex(i, kc+1, 0)
				applyBlockRight(vSeg, u[nbase:nbase+g.p], g.blocks.B4, g.p, c/width)
			}
			if c < 0 && kc-1 >= 0 {
				nbase, _ := g.layout.InteriorIndex(i, kc-1, 0)
				applyBlockRight(vSeg, u[nbase:nbase+g.p], g.blocks.B1, g.p, math.Abs(c)/width)
			}
		}
	}

	// 7: cross-phase interior.
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i == j {
				continue
			}
			tij := T.At(i, j)
			if tij == 0 {
				continue
			}
			differ := membershipKey(lwr[i], upr[i]) != membershipKey(lwr[j], upr[j])
			for kc := 0; kc < g.k; kc++ {
				ibase, _ := g.layout.InteriorIndex(i, kc, 0)
				jbase, _ := g.layout.InteriorIndex(j, kc, 0)
				vSeg := v[ibase : ibase+g.p]
				uSeg := u[jbase : jbase+g.p]
				if differ {
					applyBlockRight(vSeg, uSeg, g.blocks.D, g.p, tij)
				} else {
					for q := 0; q < g.p; q++ {
						vSeg[q] += tij * uSeg[q]
					}
				}
			}
		}
	}

	return v, nil
}

// leftVec computes v = u^T*B for a single length-M row vector u,
// following the same decomposition, column-indexed.
func (g *LazyGenerator) leftVec(u []float64) ([]float64, error) {
	M := g.layout.Size()
	v := make([]float64, M)
	T := g.dq.Phases.T
	rates := g.dq.Phases.Rates
	lwr, upr := g.dq.Phases.LwrMember, g.dq.Phases.UprMember
	upperBase := g.layout.NLower + g.n*g.k*g.p

	// 1: boundary-to-boundary, with the same PLwr/PUpr reflection term as
	// MulRight, applied un-transposed against the boundary vector (the
	// adjoint direction of the same rank-indexed coupling).
	pLwr, pUpr := g.dq.Phases.PLwr, g.dq.Phases.PUpr
	for rowRank := 0; rowRank < g.layout.NLower; rowRank++ {
		i, _ := g.layout.LowerPhase(rowRank)
		for colRank := 0; colRank < g.layout.NLower; colRank++ {
			j, _ := g.layout.LowerPhase(colRank)
			v[colRank] += u[rowRank] * T.At(i, j)
			if pLwr.M != nil {
				v[colRank] += u[rowRank] * pLwr.At(rowRank, colRank)
			}
		}
	}
	for rowRank := 0; rowRank < g.layout.NUpper; rowRank++ {
		i, _ := g.layout.UpperPhase(rowRank)
		for colRank := 0; colRank < g.layout.NUpper; colRank++ {
			j, _ := g.layout.UpperPhase(colRank)
			v[upperBase+colRank] += u[upperBase+rowRank] * T.At(i, j)
			if pUpr.M != nil {
				v[upperBase+colRank] += u[upperBase+rowRank] * pUpr.At(rowRank, colRank)
			}
		}
	}

	// 2/4: interior-to-boundary (flux in).
	for i := 0; i < g.n; i++ {
		if lwr[i] && rates[i] < 0 {
			width, _ := g.dq.Mesh.CellWidth(0)
			bIdx, _ := g.layout.BoundaryIndexLower(i)
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(i, 0, q)
				v[bIdx] += u[idx] * math.Abs(rates[i]) * g.flux.Lower.In[q] / width
			}
		}
		if upr[i] && rates[i] > 0 {
			width, _ := g.dq.Mesh.CellWidth(g.k - 1)
			bIdx, _ := g.layout.BoundaryIndexUpper(i)
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(i, g.k-1, q)
				v[bIdx] += u[idx] * rates[i] * g.flux.Upper.In[q] / width
			}
		}
	}

	// 3/5: boundary-to-interior (flux out).
	for lowerRank := 0; lowerRank < g.layout.NLower; lowerRank++ {
		i, _ := g.layout.LowerPhase(lowerRank)
		for j := 0; j < g.n; j++ {
			if rates[j] <= 0 {
				continue
			}
			tij := T.At(i, j)
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(j, 0, q)
				v[idx] += u[lowerRank] * tij * g.flux.Lower.Out[q]
			}
		}
	}
	for upperRank := 0; upperRank < g.layout.NUpper; upperRank++ {
		i, _ := g.layout.UpperPhase(upperRank)
		for j := 0; j < g.n; j++ {
			if rates[j] >= 0 {
				continue
			}
			tij := T.At(i, j)
			for q := 0; q < g.p; q++ {
				idx, _ := g.layout.InteriorIndex(j, g.k-1, q)
				v[idx] += u[upperBase+upperRank] * tij * g.flux.Upper.Out[q]
			}
		}
	}

	// 6: same-phase interior tridiagonal.
	for i := 0; i < g.n; i++ {
		c := rates[i]
		for kc := 0; kc < g.k; kc++ {
			width, _ := g.dq.Mesh.CellWidth(kc)
			base, _ := g.layout.InteriorIndex(i, kc, 0)
			uSeg := u[base : base+g.p]
			vSeg := v[base : base+g.p]

			if c > 0 {
				applyBlockLeft(vSeg, uSeg, g.blocks.B2, g.p, c/width)
			} else if c < 0 {
				applyBlockLeft(vSeg, uSeg, g.blocks.B3, g.p, math.Abs(c)/width)
			}
			tii := T.At(i, i)
			for q := 0; q < g.p; q++ {
				vSeg[q] += tii * uSeg[q]
			}

			if c > 0 && kc+1 < g.k {
				nbase, _ := g.layout.InteriorIndex(i, kc+1, 0)
				applyBlockLeft(v[nbase:nbase+g.p], uSeg, g.blocks.B4, g.p, c/width)
			}
			if c < 0 && kc-1 >= 0 {
				nbase, _ := g.layout.InteriorIndex(i, kc-1, 0)
				applyBlockLeft(v[nbase:nbase+g.p], uSeg, g.blocks.B1, g.p, math.Abs(c)/width)
			}
		}
	}

	// 7: cross-phase interior.
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i == j {
				continue
			}
			tij := T.At(i, j)
			if tij == 0 {
				continue
			}
			differ := membershipKey(lwr[i], upr[i]) != membershipKey(lwr[j], upr[j])
			for kc := 0; kc < g.k; kc++ {
				ibase, _ := g.layout.InteriorIndex(i, kc, 0)
				jbase, _ := g.layout.InteriorIndex(j, kc, 0)
				uSeg := u[ibase : ibase+g.p]
				vSeg := v[jbase : jbase+g.p]
				if differ {
					applyBlockLeft(vSeg, uSeg, g.blocks.D, g.p, tij)
				} else {
					for q := 0; q < g.p; q++ {
						vSeg[q] += tij * uSeg[q]
					}
				}
			}
		}
	}

	return v, nil
}
