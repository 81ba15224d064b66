package generator

import (
	"sync"

	"github.com/notargets/fluidq/utils"
)

// MulLeftParallel computes u*B exactly as MulLeft does, but partitions
// u's rows across numWorkers goroutines. Each row is independent (the
// kernel reads only g's immutable blocks/layout and writes its own
// output row), so no synchronisation beyond a WaitGroup is needed — this
// is a plain row-partitioned fan-out, not an adaptation of the teacher's
// mesh-neighbour MailBox machinery, which solves a different problem
// (inter-partition face exchange across a shared element graph) that
// does not arise here: rows of u never need to see each other's values.
func (g *LazyGenerator) MulLeftParallel(u utils.Matrix, numWorkers int) (utils.Matrix, error) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	M := g.layout.Size()
	nr, nc := u.Dims()
	if nc != M {
		return utils.Matrix{}, &Error{Kind: ShapeMismatch, Op: "MulLeftParallel", Want: M, Got: nc}
	}
	if numWorkers > nr {
		numWorkers = nr
	}
	if numWorkers <= 1 {
		return g.MulLeft(u)
	}

	out := utils.NewMatrix(nr, M)
	errs := make([]error, numWorkers)

	chunk := (nr + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > nr {
			hi = nr
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for r := lo; r < hi; r++ {
				row := make([]float64, M)
				for c := 0; c < M; c++ {
					row[c] = u.At(r, c)
				}
				v, err := g.leftVec(row)
				if err != nil {
					errs[w] = err
					return
				}
				for c := 0; c < M; c++ {
					out.Set(r, c, v[c])
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return utils.Matrix{}, err
		}
	}
	return out, nil
}
