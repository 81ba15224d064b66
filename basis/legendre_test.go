package basis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJacobiGLEndpoints(t *testing.T) {
	for N := 1; N <= 5; N++ {
		x := JacobiGL(0, 0, N)
		assert.Len(t, x, N+1)
		assert.InDelta(t, -1.0, x[0], 1e-12)
		assert.InDelta(t, 1.0, x[N], 1e-12)
		for i := 1; i < len(x); i++ {
			assert.Greater(t, x[i], x[i-1])
		}
	}
}

func TestJacobiPConstantMode(t *testing.T) {
	r := []float64{-1, -0.5, 0, 0.5, 1}
	p0 := JacobiP(r, 0, 0, 0)
	for _, v := range p0 {
		assert.InDelta(t, p0[0], v, 1e-12)
		assert.Greater(t, v, 0.0)
	}
}

func TestVandermondeDims(t *testing.T) {
	N := 3
	r := JacobiGL(0, 0, N)
	V := Vandermonde1D(r, N)
	nr, nc := V.Dims()
	assert.Equal(t, N+1, nr)
	assert.Equal(t, N+1, nc)
}

func TestDifferentiationMatrixRowSumsZero(t *testing.T) {
	// Differentiating a constant function yields zero everywhere, which
	// for a nodal basis means Dr's row sums must vanish.
	b := Legendre(4)
	nr, nc := b.Dr.Dims()
	for i := 0; i < nr; i++ {
		var s float64
		for j := 0; j < nc; j++ {
			s += b.Dr.At(i, j)
		}
		assert.InDelta(t, 0.0, s, 1e-9)
	}
}

func TestDifferentiationMatrixExactOnLinear(t *testing.T) {
	// d/dr(r) == 1 everywhere.
	b := Legendre(3)
	nr, nc := b.Dr.Dims()
	u := b.Nodes
	for i := 0; i < nr; i++ {
		var s float64
		for j := 0; j < nc; j++ {
			s += b.Dr.At(i, j) * u[j]
		}
		assert.InDelta(t, 1.0, s, 1e-9)
	}
}

func TestGammaPositive(t *testing.T) {
	assert.Greater(t, gamma0(0, 0), 0.0)
	assert.Greater(t, gamma1(0, 0), 0.0)
	assert.False(t, math.IsNaN(gamma0(1, 1)))
}
