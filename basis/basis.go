// Package basis: the Basis contract and its validate-and-dispatch surface.
// Family kernels are unexported, so the variant set is closed: every
// concrete family lives in this package and the exported entry points can
// validate arguments exactly once before dispatching.

package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Basis is a finite system of functions φ₁..φ_K over a shared domain.
//
// Implementations are immutable values: the only mutable state is the
// lazily computed Gram-matrix cache, which is write-once (computed on first
// access, never invalidated — changing domain or size means constructing a
// new instance). Use the instances through pointers; copying a basis value
// would split its cache.
//
// Equality is structural: two bases are equal iff they are the same
// concrete family with the same domain and the same number of functions.
type Basis interface {
	// Domain returns the interval over which the basis is defined.
	Domain() Domain

	// NBasis returns the number of basis functions.
	NBasis() int

	// Periodic reports whether the family is intrinsically periodic
	// (Fourier). Registration uses this to pick its default extension.
	Periodic() bool

	// Period returns the natural period of the family: the declared period
	// for Fourier, the domain length otherwise.
	Period() float64

	// Rescale returns a basis of the same family and size on a new domain.
	// Fails with ErrBadDomain if the interval is degenerate.
	Rescale(d Domain) (Basis, error)

	// Equal reports structural equality (family, domain, count).
	Equal(other Basis) bool

	// Gram returns ∫ φ_i·φ_j over the domain as a symmetric PSD matrix.
	// Computed once per instance and cached; the returned matrix is shared
	// and must not be modified.
	Gram() *mat.SymDense

	// evaluate is the family kernel behind Evaluate. Arguments are already
	// validated: points is non-empty and NaN-free, derivative >= 0. Returns
	// an nBasis × len(points) matrix.
	evaluate(points []float64, derivative int) *mat.Dense

	// derive is the family kernel behind Derive. order >= 1 and the
	// coefficient matrix shape are already validated.
	derive(coefs *mat.Dense, order int) (Basis, *mat.Dense)

	// productBasis returns a closed-form product basis for self·other if
	// the family knows one, with ok=false to fall back to the default
	// spline policy. Domains are already checked equal.
	productBasis(other Basis) (p Basis, ok bool)

	// addConstant folds a per-sample constant into the designated constant
	// coefficient slot in place, reporting false when the family has no
	// closed form. c has one entry per coefficient row.
	addConstant(coefs *mat.Dense, c []float64) bool
}

// Evaluate computes every basis function (or its derivative-th derivative)
// of b at the given points. The result has one row per basis function and
// one column per point.
//
// Returns ErrNegativeOrder for derivative < 0, ErrNoPoints for an empty
// point set and ErrNaNPoint when any point is NaN.
func Evaluate(b Basis, points []float64, derivative int) (*mat.Dense, error) {
	if derivative < 0 {
		return nil, ErrNegativeOrder
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for _, p := range points {
		if math.IsNaN(p) {
			return nil, ErrNaNPoint
		}
	}
	return b.evaluate(points, derivative), nil
}

// Derive transforms a coefficient matrix so that it encodes the order-th
// derivative of every function it represents, returning the (possibly
// different) basis the transformed coefficients live in. Families closed
// under differentiation keep the family and map coefficients linearly;
// B-splines drop to a lower order.
//
// order == 0 returns b and a copy of the coefficients unchanged.
func Derive(b Basis, coefs *mat.Dense, order int) (Basis, *mat.Dense, error) {
	if order < 0 {
		return nil, nil, ErrNegativeOrder
	}
	if _, c := coefs.Dims(); c != b.NBasis() {
		return nil, nil, ErrDimensionMismatch
	}
	if order == 0 {
		return b, mat.DenseCopyOf(coefs), nil
	}
	nb, nc := b.derive(coefs, order)
	return nb, nc, nil
}

// ProductBasis returns a basis rich enough to represent pointwise products
// of functions from a and from b. Families with a closed-form product
// basis (monomial·monomial, fourier·fourier on a shared period,
// constant·anything) use it; the default policy constructs a B-spline of
// order min(8, nA+nB) and size max(nA+nB, order+1) on the shared domain.
//
// Fails with ErrDomainMismatch when the domains differ.
func ProductBasis(a, b Basis) (Basis, error) {
	if a.Domain() != b.Domain() {
		return nil, ErrDomainMismatch
	}
	if p, ok := a.productBasis(b); ok {
		return p, nil
	}
	if p, ok := b.productBasis(a); ok {
		return p, nil
	}
	return defaultProductBasis(a, b)
}

// defaultProductBasis implements the empirical fallback policy: enough
// spline degrees of freedom to capture the product without excessive
// ill-conditioning.
func defaultProductBasis(a, b Basis) (Basis, error) {
	order := min(8, a.NBasis()+b.NBasis())
	n := max(a.NBasis()+b.NBasis(), order+1)
	return NewBSpline(a.Domain(), n, order)
}

// AsFData returns the basis functions themselves as an FDataBasis with
// identity coefficients: sample i is φ_i.
func AsFData(b Basis) *FDataBasis {
	n := b.NBasis()
	coefs := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		coefs.Set(i, i, 1)
	}
	return &FDataBasis{basis: b, coefs: coefs}
}

// sameFamilyEqual is the shared structural-equality check used by every
// family's Equal method once the concrete type has been matched.
func sameFamilyEqual(a, b Basis) bool {
	return a.Domain() == b.Domain() && a.NBasis() == b.NBasis()
}
