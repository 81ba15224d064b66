// Package frap supplies the matrix-exponential renewal-process parameter
// tuples (a, S, s, D) that drive the FRAP/QBD-RAP discretisation scheme,
// standing in for a fitted matrix-exponential density library. These are
// literal, documented test fixtures, not the output of a fitting
// procedure.
package frap

// Params is a matrix-exponential parameter tuple: an order-p sub-
// generator S, its entry distribution Entry (sums to 1), its exit-rate
// vector ExitRate = -S·1, and the phase-membership reflection matrix D.
type Params struct {
	Entry    []float64
	S        [][]float64
	ExitRate []float64
	D        [][]float64
}

// Erlang builds the order-p Erlang(p, rate) phase-type representation:
// p sequential exponential stages of the given rate, entered in stage 0,
// with the only exit transition out of the final stage. This is the
// canonical "least variable" ME family and the simplest non-trivial FRAP
// fixture.
func Erlang(p int, rate float64) Params {
	if p < 1 {
		panic("frap: Erlang requires p >= 1")
	}
	S := make([][]float64, p)
	exitRate := make([]float64, p)
	for i := range S {
		S[i] = make([]float64, p)
		S[i][i] = -rate
		if i < p-1 {
			S[i][i+1] = rate
		} else {
			exitRate[i] = rate
		}
	}
	entry := make([]float64, p)
	entry[0] = 1

	D := identity(p)
	return Params{Entry: entry, S: S, ExitRate: exitRate, D: D}
}

// HyperExponential2 builds the order-2 hyper-exponential representation:
// with probability probs[i] the density is exponential(rates[i]). This
// is the canonical "most variable" order-2 ME family, complementing
// Erlang's minimal-variance case.
func HyperExponential2(rates, probs [2]float64) Params {
	S := [][]float64{
		{-rates[0], 0},
		{0, -rates[1]},
	}
	exitRate := []float64{rates[0], rates[1]}
	entry := []float64{probs[0], probs[1]}
	return Params{Entry: entry, S: S, ExitRate: exitRate, D: identity(2)}
}

// DefaultParams returns the Erlang(p, 1.0) fixture, the family that
// exists for every p >= 1, standing in for a fitted ME parameter supply
// wherever a caller needs "some" order-p FRAP parameters without caring
// about the specific distribution shape.
func DefaultParams(p int) Params {
	return Erlang(p, 1.0)
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}
