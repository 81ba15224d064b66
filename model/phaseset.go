// Package model holds the fluid-queue phase set and level mesh that a
// generator.LazyGenerator is built from.
package model

import (
	"math"

	"github.com/notargets/fluidq/generator/generr"
	"github.com/notargets/fluidq/utils"
)

const rowSumTol = 1e-9

// PhaseSet is the modulating Markov chain: N phases, drift rates c_i, and
// the generator T of the phase process. LwrMember/UprMember flag which
// phases carry a boundary point mass at the lower/upper barrier.
//
// PLwr and PUpr are the optional reflection matrices of the bounded
// variant: PLwr is NLower×NLower and re-distributes lower-boundary point
// mass when a zero-drift phase's reflection sends it back into the
// interior through a different lower-member phase; PUpr mirrors this at
// the upper barrier. Both are nil for the unbounded (FluidQueue) variant.
type PhaseSet struct {
	Rates      []float64
	T          utils.Matrix
	LwrMember  []bool
	UprMember  []bool
	PLwr, PUpr utils.Matrix
}

// N returns the number of phases.
func (ps PhaseSet) N() int { return len(ps.Rates) }

// NLower and NUpper count the boundary-member phases at each barrier.
func (ps PhaseSet) NLower() int { return countTrue(ps.LwrMember) }
func (ps PhaseSet) NUpper() int { return countTrue(ps.UprMember) }

func countTrue(b []bool) (n int) {
	for _, v := range b {
		if v {
			n++
		}
	}
	return
}

// NewPhaseSet validates the invariants spec'd for PhaseSet: T is square
// N×N with zero row sums and non-negative off-diagonals; a phase with
// c_i<0 is a lower-boundary member, c_i>0 an upper-boundary member, and
// c_i==0 must be a member of both.
func NewPhaseSet(rates []float64, T utils.Matrix, lwrMember, uprMember []bool, pLwr, pUpr utils.Matrix) (PhaseSet, error) {
	N := len(rates)
	if N == 0 {
		return PhaseSet{}, generr.NewDomain("NewPhaseSet", "phase set must have at least one phase")
	}
	nr, nc := T.Dims()
	if nr != N || nc != N {
		return PhaseSet{}, generr.NewShapeMismatch("NewPhaseSet", N, nr)
	}
	if len(lwrMember) != N || len(uprMember) != N {
		return PhaseSet{}, generr.NewShapeMismatch("NewPhaseSet", N, len(lwrMember))
	}

	for i := 0; i < N; i++ {
		rowSum := 0.0
		for j := 0; j < N; j++ {
			v := T.At(i, j)
			if i != j && v < -rowSumTol {
				return PhaseSet{}, generr.NewDomain("NewPhaseSet", "off-diagonal entries of T must be non-negative")
			}
			rowSum += v
		}
		if math.Abs(rowSum) > rowSumTol {
			return PhaseSet{}, generr.NewDomain("NewPhaseSet", "rows of T must sum to zero")
		}
	}

	for i, c := range rates {
		switch {
		case c < 0 && !lwrMember[i]:
			return PhaseSet{}, generr.NewDomain("NewPhaseSet", "a phase with negative drift must be a lower-boundary member")
		case c > 0 && !uprMember[i]:
			return PhaseSet{}, generr.NewDomain("NewPhaseSet", "a phase with positive drift must be an upper-boundary member")
		case c == 0 && (!lwrMember[i] || !uprMember[i]):
			return PhaseSet{}, generr.NewDomain("NewPhaseSet", "a zero-drift phase must be a member of both boundaries")
		}
	}

	ps := PhaseSet{Rates: rates, T: T, LwrMember: lwrMember, UprMember: uprMember, PLwr: pLwr, PUpr: pUpr}

	if pLwr.M != nil {
		nr, nc := pLwr.Dims()
		if nr != ps.NLower() || nc != ps.NLower() {
			return PhaseSet{}, generr.NewShapeMismatch("NewPhaseSet", ps.NLower(), nr)
		}
	}
	if pUpr.M != nil {
		nr, nc := pUpr.Dims()
		if nr != ps.NUpper() || nc != ps.NUpper() {
			return PhaseSet{}, generr.NewShapeMismatch("NewPhaseSet", ps.NUpper(), nr)
		}
	}

	return ps, nil
}

// Bounded reports whether this phase set carries reflection matrices.
func (ps PhaseSet) Bounded() bool {
	return ps.PLwr.M != nil || ps.PUpr.M != nil
}
