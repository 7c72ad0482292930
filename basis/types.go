// Package basis: shared value types and documented numeric defaults.

package basis

import "math"

// DEFAULTS - single source of truth for every discretization mesh in the
// package. The per-call-site multipliers below reproduce the sizes used by
// the reference formulation (Ramsay & Silverman style meshes).
const (
	// NPointsCoarseMesh is the minimum grid size used when a function is
	// discretized for re-projection (shifts, products, registration).
	NPointsCoarseMesh = 201

	// NPointsFineMesh is the minimum grid size used for statistics that
	// have no closed form in coefficient space (var, cov, gmean).
	NPointsFineMesh = 501

	// BasisMinFactor scales mesh sizes with the basis dimension: meshes are
	// at least BasisMinFactor*nBasis(+1) points so richer bases get finer
	// grids.
	BasisMinFactor = 10

	// ProductMeshFactor scales the shared grid used to discretize pointwise
	// products before re-projection onto the product basis.
	ProductMeshFactor = 8
)

// Domain is the closed interval [A, B] over which a basis is defined.
// A valid domain is a single non-degenerate interval: A < B, both finite.
type Domain struct {
	A, B float64
}

// Length returns B - A.
func (d Domain) Length() float64 { return d.B - d.A }

// Valid reports whether the interval is non-degenerate with finite bounds.
func (d Domain) Valid() bool {
	return d.A < d.B && !math.IsInf(d.A, 0) && !math.IsInf(d.B, 0) &&
		!math.IsNaN(d.A) && !math.IsNaN(d.B)
}

// SolveMethod selects the least-squares algorithm used by FromData.
//
//   - Cholesky — solve the normal equations (ΦᵀΦ)c = Φᵀy directly. Faster,
//     but can lose precision when Φ is ill-conditioned.
//   - QR — factorize Φ itself. Better conditioned, more expensive.
//
// The zero value is Cholesky, the documented default.
type SolveMethod int

const (
	// Cholesky solves the normal equations via Cholesky factorization.
	Cholesky SolveMethod = iota

	// QR solves the overdetermined system via QR factorization.
	QR
)
