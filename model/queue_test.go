package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/fluidq/utils"
)

func TestNewDiscretisedFluidQueue(t *testing.T) {
	T := utils.NewMatrix(2, 2)
	T.Set(0, 0, -1)
	T.Set(0, 1, 1)
	T.Set(1, 0, 1)
	T.Set(1, 1, -1)
	ps, err := NewPhaseSet([]float64{-1, 1}, T, []bool{true, false}, []bool{false, true}, utils.Matrix{}, utils.Matrix{})
	assert.NoError(t, err)

	mesh, err := NewMesh([]float64{0, 1, 2}, 3, DG, nil)
	assert.NoError(t, err)

	dq, err := NewDiscretisedFluidQueue(ps, mesh)
	assert.NoError(t, err)
	assert.Equal(t, 2, dq.N())
	assert.Equal(t, 2, dq.K())
	assert.Equal(t, 3, dq.P())
}
