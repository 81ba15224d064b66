package frap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlocksMidEqualsSubGenerator(t *testing.T) {
	p := Erlang(3, 1.0)
	r := Blocks(p)
	assert.Equal(t, p.S, r.B2)
	assert.Equal(t, p.S, r.B3)
}

func TestBlocksOffDiagonalIsExitEntryOuterProduct(t *testing.T) {
	p := Erlang(2, 2.0)
	r := Blocks(p)
	for i := range p.ExitRate {
		for j := range p.Entry {
			want := p.ExitRate[i] * p.Entry[j]
			assert.Equal(t, want, r.B1[i][j])
			assert.Equal(t, want, r.B4[i][j])
		}
	}
}

func TestBlocksRowSumsCancelAcrossB2AndB1(t *testing.T) {
	// Conservation: s = -S·1 means S's row i sums to -ExitRate[i], and
	// B1's row i sums to ExitRate[i]*sum(Entry) = ExitRate[i], so the two
	// cancel exactly.
	p := Erlang(4, 1.0)
	r := Blocks(p)
	for i := 0; i < 4; i++ {
		var s2, s1 float64
		for j := 0; j < 4; j++ {
			s2 += r.B2[i][j]
			s1 += r.B1[i][j]
		}
		assert.InDelta(t, 0.0, s2+s1, 1e-9)
	}
}

func TestBlocksFluxVectorsMatchExitAndEntry(t *testing.T) {
	p := HyperExponential2([2]float64{1, 3}, [2]float64{0.5, 0.5})
	r := Blocks(p)
	assert.Equal(t, p.ExitRate, r.LowerIn)
	assert.Equal(t, p.Entry, r.LowerOut)
	assert.Equal(t, p.ExitRate, r.UpperIn)
	assert.Equal(t, p.Entry, r.UpperOut)
}

func TestMatrixConversion(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 2}}
	m := Matrix(rows)
	assert.Equal(t, 2.0, m.At(1, 1))
}
