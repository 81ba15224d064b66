// Package basis builds the nodal Legendre polynomial basis used by the DG
// discretisation scheme: Gauss-Lobatto node placement, the Vandermonde
// matrix, and the resulting differentiation matrix.
package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	a1 := alpha + 1.
	b1 := beta + 1.
	return a1 * b1 * gamma0(alpha, beta) / (ab + 3.0)
}

// JacobiP evaluates the degree-N Jacobi polynomial, normalized to be
// orthonormal on [-1,1] with weight (1-r)^alpha (1+r)^beta, at the given
// nodes. This mirrors the three-term recurrence used throughout nodal DG
// codes.
func JacobiP(r []float64, alpha, beta float64, N int) []float64 {
	nc := len(r)
	rg := 1. / math.Sqrt(gamma0(alpha, beta))
	if N == 0 {
		p := make([]float64, nc)
		for i := range p {
			p[i] = rg
		}
		return p
	}

	pl := make([][]float64, N+1)
	pl[0] = make([]float64, nc)
	for i := range pl[0] {
		pl[0][i] = rg
	}

	ab := alpha + beta
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	pl[1] = make([]float64, nc)
	for i, ri := range r {
		pl[1][i] = rg1 * ((ab+2.0)*ri/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		return pl[1]
	}

	a1 := alpha + 1.
	b1 := beta + 1.
	ab1 := ab + 1.
	aold := 2.0 * math.Sqrt(a1*b1/(ab+3.0)) / (ab + 2.0)
	for n := 1; n < N; n++ {
		fn := float64(n)
		h1 := 2.0*fn + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt((fn+1)*(fn+ab1)*(fn+a1)*(fn+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		pl[n+1] = make([]float64, nc)
		for i, ri := range r {
			pl[n+1][i] = (-aold*pl[n-1][i] + (ri-bnew)*pl[n][i]) / anew
		}
		aold = anew
	}
	return pl[N]
}

// GradJacobiP evaluates the derivative of the degree-N Jacobi polynomial.
func GradJacobiP(r []float64, alpha, beta float64, N int) []float64 {
	if N == 0 {
		return make([]float64, len(r))
	}
	p := JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i := range p {
		p[i] *= fac
	}
	return p
}

// Vandermonde1D builds the (N+1)-node Vandermonde matrix of the degree-N
// orthonormal Legendre basis evaluated at nodes r.
func Vandermonde1D(r []float64, N int) *mat.Dense {
	V := mat.NewDense(len(r), N+1, nil)
	for j := 0; j <= N; j++ {
		V.SetCol(j, JacobiP(r, 0, 0, j))
	}
	return V
}

// GradVandermonde1D builds the matrix of basis-derivative evaluations.
func GradVandermonde1D(r []float64, N int) *mat.Dense {
	Vr := mat.NewDense(len(r), N+1, nil)
	for j := 0; j <= N; j++ {
		Vr.SetCol(j, GradJacobiP(r, 0, 0, j))
	}
	return Vr
}

// JacobiGQ computes the N+1 Gauss quadrature nodes and weights for the
// Jacobi weight (alpha, beta) via the Golub-Welsch algorithm: the nodes
// are the eigenvalues of the symmetric tridiagonal Jacobi matrix, and the
// weights come from the first component of each eigenvector.
func JacobiGQ(alpha, beta float64, N int) (x, w []float64) {
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return
	}

	h1 := make([]float64, N+1)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}

	d0 := make([]float64, N+1)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i, v := range h1 {
		d0[i] = fac / (v * (v + 2.))
	}
	const eps = 1e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		v := h1[i]
		d1[i] = 2. / (v + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((v + 1.) * (v + 3.)))
	}

	n := N + 1
	data := make([]float64, n*n)
	sym := mat.NewSymDense(n, data)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, d0[i])
		if i < n-1 {
			sym.SetSym(i, i+1, d1[i])
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		panic("basis: JacobiGQ eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	w = make([]float64, n)
	g0 := gamma0(alpha, beta)
	for i := 0; i < n; i++ {
		w[i] = vecs.At(0, i) * vecs.At(0, i) * g0
	}
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto nodes (the two endpoints plus
// the interior Gauss points of the (alpha+1, beta+1) weight). For N == 0
// the single node is the midpoint r = 0.
func JacobiGL(alpha, beta float64, N int) (x []float64) {
	x = make([]float64, N+1)
	if N == 0 {
		return
	}
	if N == 1 {
		x[0], x[1] = -1, 1
		return
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	x[0], x[N] = -1, 1
	copy(x[1:N], xint)
	return
}
