// Package integrator advances a discretised fluid-queue state forward
// in time using the same low-storage Runge-Kutta scheme the teacher
// uses for its explicit time-stepping model problems, driven here by a
// generator.LazyGenerator's MulLeft instead of a DG right-hand side.
package integrator

import (
	"github.com/notargets/fluidq/generator"
	"github.com/notargets/fluidq/utils"
)

// RK4a, RK4b, RK4c are the Carpenter-Kennedy 5-stage low-storage
// Runge-Kutta coefficients, the same scheme the teacher's model
// problems step forward with.
var (
	RK4a = [5]float64{
		0.0,
		-567301805773.0 / 1357537059087.0,
		-2404267990393.0 / 2016746695238.0,
		-3550918686646.0 / 2091501179385.0,
		-1275806237668.0 / 842570457699.0,
	}
	RK4b = [5]float64{
		1432997174477.0 / 9575080441755.0,
		5161836677717.0 / 13612068292357.0,
		1720146321549.0 / 2090206949498.0,
		3134564353537.0 / 4481467310338.0,
		2277821191437.0 / 14882151754819.0,
	}
	RK4c = [5]float64{
		0.0,
		1432997174477.0 / 9575080441755.0,
		2526269341429.0 / 6820363962896.0,
		2006345519317.0 / 3224310063776.0,
		2802321613138.0 / 2924317926251.0,
	}
)

// Step advances the row-vector state u (length M, a distribution
// against B's left action) by dt using the forward Kolmogorov equation
// du/dt = u B, computed here as a single left-multiply per stage:
// resid = RK4a[s]*resid + dt*(u*B), u += RK4b[s]*resid.
//
// u is passed and returned as a 1×M utils.Matrix row vector, matching
// MulLeft's input shape directly.
func Step(lazy *generator.LazyGenerator, u utils.Matrix, t, dt float64) (utils.Matrix, error) {
	_, M := u.Dims()
	resid := utils.NewMatrix(1, M)

	for s := 0; s < 5; s++ {
		rhs, err := lazy.MulLeft(u)
		if err != nil {
			return utils.Matrix{}, err
		}
		resid = resid.Scale(RK4a[s]).Add(rhs.Scale(dt))
		u = u.Copy().Add(resid.Copy().Scale(RK4b[s]))
	}
	return u, nil
}

// StepN advances u through n steps of size dt starting at t0, returning
// the final state.
func StepN(lazy *generator.LazyGenerator, u utils.Matrix, t0, dt float64, n int) (utils.Matrix, error) {
	t := t0
	var err error
	for i := 0; i < n; i++ {
		u, err = Step(lazy, u, t, dt)
		if err != nil {
			return utils.Matrix{}, err
		}
		t += dt
	}
	return u, nil
}
