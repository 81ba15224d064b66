package generator

import (
	"github.com/notargets/fluidq/genindex"
	"github.com/notargets/fluidq/model"
)

// LazyGenerator stores the small per-cell block recipes and applies the
// discretised generator B through a structured matvec kernel instead of
// materialising it. It holds a non-owning reference to its
// DiscretisedFluidQueue, which must outlive it.
type LazyGenerator struct {
	dq     *model.DiscretisedFluidQueue
	blocks Blocks
	flux   BoundaryFlux
	layout genindex.Layout

	n, k, p int
}

// NewLazyGenerator validates that blocks and flux are sized p×p / length p
// consistent with dq.Mesh.P, and builds the index layout.
func NewLazyGenerator(dq *model.DiscretisedFluidQueue, blocks Blocks, flux BoundaryFlux) (*LazyGenerator, error) {
	p := dq.P()
	if blocks.P != p {
		return nil, &Error{Kind: ShapeMismatch, Op: "NewLazyGenerator", Want: p, Got: blocks.P}
	}
	for _, v := range [][]float64{flux.Lower.In, flux.Lower.Out, flux.Upper.In, flux.Upper.Out} {
		if len(v) != p {
			return nil, &Error{Kind: ShapeMismatch, Op: "NewLazyGenerator", Want: p, Got: len(v)}
		}
	}

	layout, err := genindex.NewLayout(dq.N(), dq.K(), p, dq.Phases.LwrMember, dq.Phases.UprMember)
	if err != nil {
		return nil, err
	}

	return &LazyGenerator{
		dq: dq, blocks: blocks, flux: flux, layout: layout,
		n: dq.N(), k: dq.K(), p: p,
	}, nil
}

// Size returns (M, M), the dimensions of the generator.
func (g *LazyGenerator) Size() (int, int) {
	m := g.layout.Size()
	return m, m
}

// SizeAxis returns M for axis 0 or 1 (B is square); any other axis is an
// OutOfRange error.
func (g *LazyGenerator) SizeAxis(axis int) (int, error) {
	if axis != 0 && axis != 1 {
		return 0, &Error{Kind: OutOfRange, Op: "SizeAxis", Index: axis, Bound: 1}
	}
	return g.layout.Size(), nil
}

// Scale returns a new LazyGenerator with every block, both boundary
// fluxes, and D scaled by alpha.
func (g *LazyGenerator) Scale(alpha float64) *LazyGenerator {
	b := Blocks{
		B1: g.blocks.B1.Copy().Scale(alpha),
		B2: g.blocks.B2.Copy().Scale(alpha),
		B3: g.blocks.B3.Copy().Scale(alpha),
		B4: g.blocks.B4.Copy().Scale(alpha),
		D:  g.blocks.D.Copy().Scale(alpha),
		P:  g.blocks.P,
	}
	scaleVec := func(v []float64) []float64 {
		r := make([]float64, len(v))
		for i, x := range v {
			r[i] = x * alpha
		}
		return r
	}
	f := BoundaryFlux{
		Lower: BoundarySide{In: scaleVec(g.flux.Lower.In), Out: scaleVec(g.flux.Lower.Out)},
		Upper: BoundarySide{In: scaleVec(g.flux.Upper.In), Out: scaleVec(g.flux.Upper.Out)},
	}
	ng, err := NewLazyGenerator(g.dq, b, f)
	if err != nil {
		// g's own blocks/flux were already valid, and scaling cannot
		// change their shape, so NewLazyGenerator cannot fail here.
		panic(err)
	}
	return ng
}

// DQ exposes the underlying queue (read-only access for callers building
// diagnostics).
func (g *LazyGenerator) DQ() *model.DiscretisedFluidQueue { return g.dq }
