package generator

import "github.com/notargets/fluidq/utils"

// Blocks holds the four p×p block recipes that describe how probability
// mass moves within and between adjacent cells of the same phase, plus
// the phase-membership-change matrix D applied when a cross-phase
// transition also changes boundary membership.
//
//   - B1: lower-diagonal, negative-drift coupling (cell k receives from k+1)
//   - B2: diagonal, positive-drift coupling
//   - B3: diagonal, negative-drift coupling
//   - B4: upper-diagonal, positive-drift coupling (cell k receives from k-1)
type Blocks struct {
	B1, B2, B3, B4, D utils.Matrix
	P                 int
}

// NewBlocks validates that B1..B4 and D are all square and the same size,
// and returns the assembled Blocks value.
func NewBlocks(B1, B2, B3, B4, D utils.Matrix) (Blocks, error) {
	p, _ := B1.Dims()
	mats := []utils.Matrix{B1, B2, B3, B4, D}
	names := []string{"B1", "B2", "B3", "B4", "D"}
	for i, m := range mats {
		nr, nc := m.Dims()
		if nr != nc {
			return Blocks{}, &Error{Kind: Domain, Op: "NewBlocks", Msg: names[i] + " is not square"}
		}
		if nr != p {
			return Blocks{}, &Error{Kind: ShapeMismatch, Op: "NewBlocks", Want: p, Got: nr}
		}
	}
	return Blocks{B1: B1, B2: B2, B3: B3, B4: B4, D: D, P: p}, nil
}

// NewBlocksFRAP expands the FRAP scheme's three-block shorthand
// (B_low, B_mid, B_up) into the general four-block form, since the FRAP
// scheme's positive- and negative-drift diagonal blocks coincide
// (B2 == B3 == B_mid).
func NewBlocksFRAP(Blow, Bmid, Bup, D utils.Matrix) (Blocks, error) {
	return NewBlocks(Blow, Bmid, Bmid, Bup, D)
}

// BoundarySide holds the in/out flux vectors at one end of the mesh. In
// carries mass from the adjacent cell's basis coefficients into the
// boundary point mass; Out carries the boundary point mass back out into
// the adjacent cell's basis coefficients.
type BoundarySide struct {
	In, Out []float64
}

// BoundaryFlux bundles the lower- and upper-boundary flux vectors.
type BoundaryFlux struct {
	Lower, Upper BoundarySide
}

// NewBoundaryFlux validates that all four vectors have length p.
func NewBoundaryFlux(p int, lowerIn, lowerOut, upperIn, upperOut []float64) (BoundaryFlux, error) {
	vecs := [][]float64{lowerIn, lowerOut, upperIn, upperOut}
	for _, v := range vecs {
		if len(v) != p {
			return BoundaryFlux{}, &Error{Kind: ShapeMismatch, Op: "NewBoundaryFlux", Want: p, Got: len(v)}
		}
	}
	return BoundaryFlux{
		Lower: BoundarySide{In: lowerIn, Out: lowerOut},
		Upper: BoundarySide{In: upperIn, Out: upperOut},
	}, nil
}
