package basis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDGBlocksShapesAndIdentityD(t *testing.T) {
	p := 4
	b := Legendre(p)
	r := b.DGBlocks()

	assert.Len(t, r.D, p)
	for i, row := range r.D {
		assert.Len(t, row, p)
		for j, v := range row {
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

func TestDGBlocksFluxVectorsAreEdgeUnitVectors(t *testing.T) {
	p := 3
	b := Legendre(p)
	r := b.DGBlocks()

	for i, v := range r.LowerIn {
		want := 0.0
		if i == 0 {
			want = 1.0
		}
		assert.Equal(t, want, v)
	}
	for i, v := range r.UpperIn {
		want := 0.0
		if i == p-1 {
			want = 1.0
		}
		assert.Equal(t, want, v)
	}
	assert.Equal(t, r.LowerIn, r.LowerOut)
	assert.Equal(t, r.UpperIn, r.UpperOut)
}

func TestDGBlocksRowSumsCancelAcrossB2AndB4(t *testing.T) {
	// Conservation at an interior positive-drift cell requires that B2's
	// row sum plus B4's row sum (the mass leaving to the neighbour) equal
	// zero, since together they are -Dr's row (which sums to zero) with
	// no other terms.
	p := 4
	b := Legendre(p)
	r := b.DGBlocks()

	for i := 0; i < p; i++ {
		var s2, s4 float64
		for j := 0; j < p; j++ {
			s2 += r.B2[i][j]
			s4 += r.B4[i][j]
		}
		assert.InDelta(t, 0.0, s2+s4, 1e-9)
	}
}

func TestDGBlocksRowSumsCancelAcrossB3AndB1(t *testing.T) {
	p := 4
	b := Legendre(p)
	r := b.DGBlocks()

	for i := 0; i < p; i++ {
		var s3, s1 float64
		for j := 0; j < p; j++ {
			s3 += r.B3[i][j]
			s1 += r.B1[i][j]
		}
		assert.InDelta(t, 0.0, s3+s1, 1e-9)
	}
}

func TestMatrixConversion(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := Matrix(rows)
	nr, nc := m.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 3.0, m.At(1, 0))
}
