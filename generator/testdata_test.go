package generator

import (
	"testing"

	"github.com/notargets/fluidq/frap"
	"github.com/notargets/fluidq/model"
	"github.com/notargets/fluidq/utils"
)

// threePhaseQueue builds the N=3 (c = 2, -1, 0) fixture used across
// several generator tests, with phase 2 (zero drift) a member of both
// boundaries and a generic irreducible T.
func threePhaseQueue(t *testing.T, nodes []float64, p int, scheme model.SchemeTag) *model.DiscretisedFluidQueue {
	t.Helper()

	T := utils.NewMatrix(3, 3)
	rows := [][]float64{
		{-0.5, 0.3, 0.2},
		{0.4, -0.9, 0.5},
		{0.1, 0.2, -0.3},
	}
	for i, row := range rows {
		for j, v := range row {
			T.Set(i, j, v)
		}
	}

	lwr := []bool{false, true, true}
	upr := []bool{true, false, true}
	phases, err := model.NewPhaseSet([]float64{2, -1, 0}, T, lwr, upr, utils.Matrix{}, utils.Matrix{})
	if err != nil {
		t.Fatalf("NewPhaseSet: %v", err)
	}

	var frapParams *model.FRAPParams
	if scheme == model.FRAP {
		params := frap.Erlang(p, 1.0)
		frapParams = &model.FRAPParams{Entry: params.Entry, S: params.S, ExitRate: params.ExitRate, D: params.D}
	}

	mesh, err := model.NewMesh(nodes, p, scheme, frapParams)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	dq, err := model.NewDiscretisedFluidQueue(phases, mesh)
	if err != nil {
		t.Fatalf("NewDiscretisedFluidQueue: %v", err)
	}
	return &dq
}

// twoPhaseQueue builds the simple N=2 (c = 1, -1), fully-boundary fixture.
func twoPhaseQueue(t *testing.T, nodes []float64, p int, scheme model.SchemeTag) *model.DiscretisedFluidQueue {
	t.Helper()

	T := utils.NewMatrix(2, 2)
	T.Set(0, 0, -0.7)
	T.Set(0, 1, 0.7)
	T.Set(1, 0, 0.4)
	T.Set(1, 1, -0.4)

	phases, err := model.NewPhaseSet([]float64{1, -1}, T, []bool{true, true}, []bool{true, true}, utils.Matrix{}, utils.Matrix{})
	if err != nil {
		t.Fatalf("NewPhaseSet: %v", err)
	}

	var frapParams *model.FRAPParams
	if scheme == model.FRAP {
		params := frap.Erlang(p, 1.0)
		frapParams = &model.FRAPParams{Entry: params.Entry, S: params.S, ExitRate: params.ExitRate, D: params.D}
	}

	mesh, err := model.NewMesh(nodes, p, scheme, frapParams)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	dq, err := model.NewDiscretisedFluidQueue(phases, mesh)
	if err != nil {
		t.Fatalf("NewDiscretisedFluidQueue: %v", err)
	}
	return &dq
}

// boundedTwoPhaseQueue is twoPhaseQueue's bounded-queue variant: same
// drift/T, but with non-empty PLwr/PUpr reflection matrices, so tests can
// exercise the boundary-boundary reflection term in Get and both multiply
// kernels.
func boundedTwoPhaseQueue(t *testing.T, nodes []float64, p int, scheme model.SchemeTag) *model.DiscretisedFluidQueue {
	t.Helper()

	T := utils.NewMatrix(2, 2)
	T.Set(0, 0, -0.7)
	T.Set(0, 1, 0.7)
	T.Set(1, 0, 0.4)
	T.Set(1, 1, -0.4)

	pLwr := utils.NewMatrix(2, 2)
	pLwr.Set(0, 1, 0.3)
	pLwr.Set(1, 0, 0.3)
	pUpr := utils.NewMatrix(2, 2)
	pUpr.Set(0, 1, 0.2)
	pUpr.Set(1, 0, 0.2)

	phases, err := model.NewPhaseSet([]float64{1, -1}, T, []bool{true, true}, []bool{true, true}, pLwr, pUpr)
	if err != nil {
		t.Fatalf("NewPhaseSet: %v", err)
	}

	var frapParams *model.FRAPParams
	if scheme == model.FRAP {
		params := frap.Erlang(p, 1.0)
		frapParams = &model.FRAPParams{Entry: params.Entry, S: params.S, ExitRate: params.ExitRate, D: params.D}
	}

	mesh, err := model.NewMesh(nodes, p, scheme, frapParams)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	dq, err := model.NewDiscretisedFluidQueue(phases, mesh)
	if err != nil {
		t.Fatalf("NewDiscretisedFluidQueue: %v", err)
	}
	return &dq
}
