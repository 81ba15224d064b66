// Package genindex maps between the global vector index space of a
// discretised fluid-queue generator and the (phase, cell, basis) triples
// that index its interior, plus the boundary phase index spaces at the
// two ends of the mesh.
//
// Global layout of a size-M vector:
//
//	[ lower boundary : NLower entries ] [ interior : N*K*P entries, phase-major, then cell, then basis ] [ upper boundary : NUpper entries ]
package genindex

import "github.com/notargets/fluidq/generator/generr"

// Layout precomputes the index arithmetic for one (N, K, P, lwrMember,
// uprMember) combination so InteriorIndex/BoundaryIndexLower/... don't
// recompute boundary ranks on every call.
type Layout struct {
	N, K, P int

	lwrMember, uprMember []bool

	// lowerRank[i] is the 0-based position of phase i among lower-member
	// phases, or -1 if phase i is not a lower member. upperRank mirrors
	// this for upper members.
	lowerRank, upperRank []int

	NLower, NUpper int
}

// NewLayout validates N, K, P and the membership slices and builds the
// boundary rank tables used by the index functions below.
func NewLayout(N, K, P int, lwrMember, uprMember []bool) (Layout, error) {
	if N <= 0 || K <= 0 || P <= 0 {
		return Layout{}, generr.NewDomain("NewLayout", "N, K and P must all be positive")
	}
	if len(lwrMember) != N || len(uprMember) != N {
		return Layout{}, generr.NewShapeMismatch("NewLayout", N, len(lwrMember))
	}

	lowerRank := make([]int, N)
	upperRank := make([]int, N)
	var nLower, nUpper int
	for i := 0; i < N; i++ {
		if lwrMember[i] {
			lowerRank[i] = nLower
			nLower++
		} else {
			lowerRank[i] = -1
		}
		if uprMember[i] {
			upperRank[i] = nUpper
			nUpper++
		} else {
			upperRank[i] = -1
		}
	}

	return Layout{
		N: N, K: K, P: P,
		lwrMember: lwrMember, uprMember: uprMember,
		lowerRank: lowerRank, upperRank: upperRank,
		NLower: nLower, NUpper: nUpper,
	}, nil
}

// Size returns the total vector length M = NLower + N*K*P + NUpper.
func (L Layout) Size() int {
	return L.NLower + L.N*L.K*L.P + L.NUpper
}

// InteriorIndex returns the global index of (phase i, cell k, basis q).
func (L Layout) InteriorIndex(i, k, q int) (int, error) {
	if i < 0 || i >= L.N {
		return 0, generr.NewOutOfRange("InteriorIndex", i, L.N-1)
	}
	if k < 0 || k >= L.K {
		return 0, generr.NewOutOfRange("InteriorIndex", k, L.K-1)
	}
	if q < 0 || q >= L.P {
		return 0, generr.NewOutOfRange("InteriorIndex", q, L.P-1)
	}
	return L.NLower + i*L.K*L.P + k*L.P + q, nil
}

// FromInterior is the inverse of InteriorIndex: given a global index known
// to lie in the interior range, recover (phase, cell, basis).
func (L Layout) FromInterior(n int) (i, k, q int, err error) {
	lo, hi := L.NLower, L.NLower+L.N*L.K*L.P
	if n < lo || n >= hi {
		return 0, 0, 0, generr.NewInvalidBoundary("FromInterior", n)
	}
	rel := n - lo
	i = rel / (L.K * L.P)
	rem := rel % (L.K * L.P)
	k = rem / L.P
	q = rem % L.P
	return i, k, q, nil
}

// BoundaryIndexLower returns the global index of the lower-boundary point
// mass for phase i. i must be a lower-boundary member.
func (L Layout) BoundaryIndexLower(i int) (int, error) {
	if i < 0 || i >= L.N {
		return 0, generr.NewOutOfRange("BoundaryIndexLower", i, L.N-1)
	}
	if L.lowerRank[i] < 0 {
		return 0, generr.NewInvalidBoundary("BoundaryIndexLower", i)
	}
	return L.lowerRank[i], nil
}

// BoundaryIndexUpper returns the global index of the upper-boundary point
// mass for phase i. i must be an upper-boundary member.
func (L Layout) BoundaryIndexUpper(i int) (int, error) {
	if i < 0 || i >= L.N {
		return 0, generr.NewOutOfRange("BoundaryIndexUpper", i, L.N-1)
	}
	if L.upperRank[i] < 0 {
		return 0, generr.NewInvalidBoundary("BoundaryIndexUpper", i)
	}
	return L.NLower + L.N*L.K*L.P + L.upperRank[i], nil
}

// IsBoundary reports which region of the index space n falls into.
// region is one of "lower", "interior", "upper".
func (L Layout) IsBoundary(n int) (region string, err error) {
	M := L.Size()
	if n < 0 || n >= M {
		return "", generr.NewOutOfRange("IsBoundary", n, M-1)
	}
	switch {
	case n < L.NLower:
		return "lower", nil
	case n < L.NLower+L.N*L.K*L.P:
		return "interior", nil
	default:
		return "upper", nil
	}
}

// LowerPhase returns the phase index that owns lower-boundary slot rank r
// (inverse of BoundaryIndexLower's rank assignment), or false if none does.
func (L Layout) LowerPhase(rank int) (i int, ok bool) {
	for i, r := range L.lowerRank {
		if r == rank {
			return i, true
		}
	}
	return 0, false
}

// UpperPhase mirrors LowerPhase for the upper boundary.
func (L Layout) UpperPhase(rank int) (i int, ok bool) {
	for i, r := range L.upperRank {
		if r == rank {
			return i, true
		}
	}
	return 0, false
}
