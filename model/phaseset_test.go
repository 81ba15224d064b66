package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/fluidq/utils"
)

func twoPhaseT(rate float64) utils.Matrix {
	T := utils.NewMatrix(2, 2)
	T.Set(0, 0, -rate)
	T.Set(0, 1, rate)
	T.Set(1, 0, rate)
	T.Set(1, 1, -rate)
	return T
}

func TestNewPhaseSetValid(t *testing.T) {
	T := twoPhaseT(0.5)
	ps, err := NewPhaseSet([]float64{-1, 1}, T, []bool{true, false}, []bool{false, true}, utils.Matrix{}, utils.Matrix{})
	assert.NoError(t, err)
	assert.Equal(t, 2, ps.N())
	assert.Equal(t, 1, ps.NLower())
	assert.Equal(t, 1, ps.NUpper())
	assert.False(t, ps.Bounded())
}

func TestNewPhaseSetRejectsBadRowSum(t *testing.T) {
	T := utils.NewMatrix(2, 2)
	T.Set(0, 0, -1)
	T.Set(0, 1, 0.5) // row sums to -0.5, not zero
	_, err := NewPhaseSet([]float64{-1, 1}, T, []bool{true, false}, []bool{false, true}, utils.Matrix{}, utils.Matrix{})
	assert.Error(t, err)
}

func TestNewPhaseSetRejectsMembershipMismatch(t *testing.T) {
	T := twoPhaseT(0.5)
	_, err := NewPhaseSet([]float64{-1, 1}, T, []bool{false, false}, []bool{false, true}, utils.Matrix{}, utils.Matrix{})
	assert.Error(t, err)
}

func TestNewPhaseSetZeroDriftRequiresMembership(t *testing.T) {
	T := twoPhaseT(0.5)
	_, err := NewPhaseSet([]float64{0, 1}, T, []bool{false, false}, []bool{false, true}, utils.Matrix{}, utils.Matrix{})
	assert.Error(t, err)

	// A zero-drift phase that is a member of only one boundary must also
	// be rejected: it no longer satisfies conservation's "lwr-member OR
	// positive-drift" / "upr-member OR negative-drift" row coverage on the
	// boundary it is missing from.
	_, err = NewPhaseSet([]float64{0, 1}, T, []bool{true, false}, []bool{false, true}, utils.Matrix{}, utils.Matrix{})
	assert.Error(t, err)

	_, err = NewPhaseSet([]float64{0, 1}, T, []bool{true, false}, []bool{true, true}, utils.Matrix{}, utils.Matrix{})
	assert.NoError(t, err)
}

func TestNewPhaseSetBoundedShapeValidation(t *testing.T) {
	T := twoPhaseT(0.5)
	pLwr := utils.NewMatrix(1, 1)
	pLwr.Set(0, 0, 1)
	ps, err := NewPhaseSet([]float64{-1, 1}, T, []bool{true, false}, []bool{false, true}, pLwr, utils.Matrix{})
	assert.NoError(t, err)
	assert.True(t, ps.Bounded())

	badP := utils.NewMatrix(2, 2)
	_, err = NewPhaseSet([]float64{-1, 1}, T, []bool{true, false}, []bool{false, true}, badP, utils.Matrix{})
	assert.Error(t, err)
}
