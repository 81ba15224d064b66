package genindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayoutSize(t *testing.T) {
	lwr := []bool{true, false, true}
	upr := []bool{false, true, true}
	L, err := NewLayout(3, 4, 2, lwr, upr)
	assert.NoError(t, err)
	assert.Equal(t, 2, L.NLower)
	assert.Equal(t, 2, L.NUpper)
	assert.Equal(t, 2+3*4*2+2, L.Size())
}

func TestInteriorIndexRoundTrip(t *testing.T) {
	lwr := []bool{true, false, true}
	upr := []bool{false, true, true}
	L, err := NewLayout(3, 4, 2, lwr, upr)
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		for k := 0; k < 4; k++ {
			for q := 0; q < 2; q++ {
				idx, err := L.InteriorIndex(i, k, q)
				assert.NoError(t, err)
				ri, rk, rq, err := L.FromInterior(idx)
				assert.NoError(t, err)
				assert.Equal(t, i, ri)
				assert.Equal(t, k, rk)
				assert.Equal(t, q, rq)
			}
		}
	}
}

func TestBoundaryIndicesAndRegions(t *testing.T) {
	lwr := []bool{true, false, true}
	upr := []bool{false, true, true}
	L, err := NewLayout(3, 4, 2, lwr, upr)
	assert.NoError(t, err)

	idx0, err := L.BoundaryIndexLower(0)
	assert.NoError(t, err)
	region, err := L.IsBoundary(idx0)
	assert.NoError(t, err)
	assert.Equal(t, "lower", region)

	_, err = L.BoundaryIndexLower(1)
	assert.Error(t, err)

	idx2, err := L.BoundaryIndexUpper(2)
	assert.NoError(t, err)
	region, err = L.IsBoundary(idx2)
	assert.NoError(t, err)
	assert.Equal(t, "upper", region)

	midIdx, err := L.InteriorIndex(1, 2, 0)
	assert.NoError(t, err)
	region, err = L.IsBoundary(midIdx)
	assert.NoError(t, err)
	assert.Equal(t, "interior", region)
}

func TestLowerUpperPhaseInverse(t *testing.T) {
	lwr := []bool{true, false, true}
	upr := []bool{false, true, true}
	L, err := NewLayout(3, 4, 2, lwr, upr)
	assert.NoError(t, err)

	i, ok := L.LowerPhase(0)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = L.LowerPhase(1)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = L.LowerPhase(2)
	assert.False(t, ok)

	i, ok = L.UpperPhase(0)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestNewLayoutRejectsBadShapes(t *testing.T) {
	_, err := NewLayout(0, 4, 2, nil, nil)
	assert.Error(t, err)

	_, err = NewLayout(3, 4, 2, []bool{true, false}, []bool{false, true, true})
	assert.Error(t, err)
}
