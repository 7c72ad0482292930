// Package basis: Gram-matrix caching and pairwise basis inner products.

package basis

import (
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// gramCache is the write-once memoization cell embedded by every family.
// The Gram matrix is a pure function of the immutable basis, so a single
// sync.Once serializes first computation and every later read is lock-free.
type gramCache struct {
	once sync.Once
	gram *mat.SymDense
}

func (c *gramCache) load(compute func() *mat.SymDense) *mat.SymDense {
	c.once.Do(func() { c.gram = compute() })
	return c.gram
}

// legendreNodes returns Gauss–Legendre quadrature nodes and weights over d.
func legendreNodes(d Domain, n int) (xs, ws []float64) {
	xs = make([]float64, n)
	ws = make([]float64, n)
	(quad.Legendre{}).FixedLocations(xs, ws, d.A, d.B)
	return xs, ws
}

// quadMeshSize sizes a quadrature rule for products of two bases.
func quadMeshSize(na, nb int) int {
	return max(BasisMinFactor*max(na, nb)+1, NPointsCoarseMesh)
}

// numericGram is the family-agnostic Gram fallback: discretize every basis
// function on a quadrature rule and integrate pairwise products, filling
// only the upper triangle and mirroring it.
func numericGram(b Basis) *mat.SymDense {
	n := b.NBasis()
	xs, ws := legendreNodes(b.Domain(), quadMeshSize(n, n))
	v := b.evaluate(xs, 0)

	g := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var s float64
			for k := range xs {
				s += ws[k] * v.At(i, k) * v.At(j, k)
			}
			g.SetSym(i, j, s)
		}
	}
	return g
}

// InnerMatrix returns the matrix of pairwise inner products ∫ φ_i·ψ_j
// between the functions of a and of b. When b is nil or structurally equal
// to a this is a's (cached) Gram matrix; otherwise the full pairwise
// integral is computed by quadrature — no caching applies across distinct
// bases.
//
// Fails with ErrDomainMismatch when both bases are given and their domains
// differ.
func InnerMatrix(a, b Basis) (*mat.Dense, error) {
	if b == nil || a.Equal(b) {
		return mat.DenseCopyOf(a.Gram()), nil
	}
	if a.Domain() != b.Domain() {
		return nil, ErrDomainMismatch
	}

	xs, ws := legendreNodes(a.Domain(), quadMeshSize(a.NBasis(), b.NBasis()))
	va := a.evaluate(xs, 0)
	vb := b.evaluate(xs, 0)

	inner := mat.NewDense(a.NBasis(), b.NBasis(), nil)
	for i := 0; i < a.NBasis(); i++ {
		for j := 0; j < b.NBasis(); j++ {
			var s float64
			for k := range xs {
				s += ws[k] * va.At(i, k) * vb.At(j, k)
			}
			inner.Set(i, j, s)
		}
	}
	return inner, nil
}
