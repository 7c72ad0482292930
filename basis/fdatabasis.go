// Package basis: the FDataBasis representation — one immutable basis
// shared by a matrix of per-sample coefficient rows.

package basis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/grid"
)

// FDataBasis is a collection of functions sharing a basis:
//
//	x_i(t) = Σ_k coefs[i][k] · φ_k(t)
//
// The coefficient matrix has one row per sample and one column per basis
// function. Values are copy-on-write: no operation mutates an existing
// FDataBasis or its basis.
type FDataBasis struct {
	basis Basis
	coefs *mat.Dense
}

// New constructs an FDataBasis over b with the given coefficient matrix
// (copied). Fails with ErrDimensionMismatch when the column count differs
// from b.NBasis().
func New(b Basis, coefs mat.Matrix) (*FDataBasis, error) {
	_, c := coefs.Dims()
	if c != b.NBasis() {
		return nil, ErrDimensionMismatch
	}
	return &FDataBasis{basis: b, coefs: mat.DenseCopyOf(coefs)}, nil
}

// NewRow constructs a single-sample FDataBasis from a coefficient slice.
func NewRow(b Basis, coefs []float64) (*FDataBasis, error) {
	if len(coefs) != b.NBasis() {
		return nil, ErrDimensionMismatch
	}
	row := make([]float64, len(coefs))
	copy(row, coefs)
	return &FDataBasis{basis: b, coefs: mat.NewDense(1, len(row), row)}, nil
}

// Basis returns the shared basis.
func (fd *FDataBasis) Basis() Basis { return fd.basis }

// NSamples returns the number of samples (coefficient rows).
func (fd *FDataBasis) NSamples() int {
	r, _ := fd.coefs.Dims()
	return r
}

// NBasis returns the basis size.
func (fd *FDataBasis) NBasis() int { return fd.basis.NBasis() }

// Domain returns the basis domain.
func (fd *FDataBasis) Domain() Domain { return fd.basis.Domain() }

// Coefficients returns a copy of the coefficient matrix.
func (fd *FDataBasis) Coefficients() *mat.Dense { return mat.DenseCopyOf(fd.coefs) }

// Copy returns a deep copy sharing the (immutable) basis.
func (fd *FDataBasis) Copy() *FDataBasis {
	return &FDataBasis{basis: fd.basis, coefs: mat.DenseCopyOf(fd.coefs)}
}

// Sample returns sample i as a one-sample FDataBasis.
func (fd *FDataBasis) Sample(i int) *FDataBasis {
	row := make([]float64, fd.NBasis())
	mat.Row(row, i, fd.coefs)
	return &FDataBasis{basis: fd.basis, coefs: mat.NewDense(1, len(row), row)}
}

// Equal reports whether both objects share an equal basis and identical
// coefficients.
func (fd *FDataBasis) Equal(other *FDataBasis) bool {
	return fd.basis.Equal(other.basis) && mat.Equal(fd.coefs, other.coefs)
}

// withCoefs builds a sibling on the same basis, taking ownership of coefs.
func (fd *FDataBasis) withCoefs(coefs *mat.Dense) *FDataBasis {
	return &FDataBasis{basis: fd.basis, coefs: coefs}
}

// Evaluate computes every sample (or its derivative) at a shared point
// set: the basis is evaluated once and combined with the coefficient
// matrix, giving an nSamples × len(points) result.
func (fd *FDataBasis) Evaluate(points []float64, derivative int) (*mat.Dense, error) {
	bv, err := Evaluate(fd.basis, points, derivative)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(fd.NSamples(), len(points), nil)
	out.Mul(fd.coefs, bv)
	return out, nil
}

// EvaluateShifted evaluates sample i at its own point row points[i] — the
// per-sample-grid variant registration needs. The basis must be
// re-evaluated once per sample, so this costs nSamples basis evaluations.
//
// points must have exactly one row per sample (ErrDimensionMismatch).
func (fd *FDataBasis) EvaluateShifted(points *mat.Dense, derivative int) (*mat.Dense, error) {
	r, c := points.Dims()
	if r != fd.NSamples() {
		return nil, ErrDimensionMismatch
	}
	out := mat.NewDense(r, c, nil)
	coefRow := make([]float64, fd.NBasis())
	for i := 0; i < r; i++ {
		bv, err := Evaluate(fd.basis, points.RawRowView(i), derivative)
		if err != nil {
			return nil, err
		}
		mat.Row(coefRow, i, fd.coefs)
		for j := 0; j < c; j++ {
			var s float64
			for k := range coefRow {
				s += coefRow[k] * bv.At(k, j)
			}
			out.Set(i, j, s)
		}
	}
	return out, nil
}

// Derivative returns the order-th derivative of every sample. Order zero
// returns an identical copy; otherwise the basis decides how coefficients
// transform (and into which basis).
func (fd *FDataBasis) Derivative(order int) (*FDataBasis, error) {
	nb, nc, err := Derive(fd.basis, fd.coefs, order)
	if err != nil {
		return nil, err
	}
	return &FDataBasis{basis: nb, coefs: nc}, nil
}

// Concat stacks the samples of fd and every other object, in order. All
// operands must share the exact same basis (ErrBasisMismatch).
func (fd *FDataBasis) Concat(others ...*FDataBasis) (*FDataBasis, error) {
	total := fd.NSamples()
	for _, o := range others {
		if !o.basis.Equal(fd.basis) {
			return nil, ErrBasisMismatch
		}
		total += o.NSamples()
	}
	out := mat.NewDense(total, fd.NBasis(), nil)
	row := 0
	for _, src := range append([]*FDataBasis{fd}, others...) {
		r, _ := src.coefs.Dims()
		out.Slice(row, row+r, 0, fd.NBasis()).(*mat.Dense).Copy(src.coefs)
		row += r
	}
	return fd.withCoefs(out), nil
}

// Mean returns the (optionally weighted) cross-sample mean as a one-sample
// FDataBasis. The mean is exact: averaging commutes with the basis
// expansion, so it is a plain coefficient average. Weights that sum to
// zero fail with ErrBadWeights.
func (fd *FDataBasis) Mean(weights []float64) (*FDataBasis, error) {
	n := fd.NSamples()
	if weights != nil && len(weights) != n {
		return nil, ErrDimensionMismatch
	}
	wsum := float64(n)
	if weights != nil {
		wsum = floats.Sum(weights)
		if wsum == 0 {
			return nil, ErrBadWeights
		}
	}
	mu := mat.NewDense(1, fd.NBasis(), nil)
	for k := 0; k < fd.NBasis(); k++ {
		var s float64
		for i := 0; i < n; i++ {
			w := 1.0
			if weights != nil {
				w = weights[i]
			}
			s += w * fd.coefs.At(i, k)
		}
		mu.Set(0, k, s/wsum)
	}
	return fd.withCoefs(mu), nil
}

// Sum returns the coefficient-wise sum of all samples as a one-sample
// FDataBasis.
func (fd *FDataBasis) Sum() *FDataBasis {
	out := mat.NewDense(1, fd.NBasis(), nil)
	for k := 0; k < fd.NBasis(); k++ {
		var s float64
		for i := 0; i < fd.NSamples(); i++ {
			s += fd.coefs.At(i, k)
		}
		out.Set(0, k, s)
	}
	return fd.withCoefs(out)
}

// statsMesh is the default discretization grid for the statistics without
// a coefficient-space closed form.
func (fd *FDataBasis) statsMesh() []float64 {
	n := max(NPointsFineMesh, BasisMinFactor*fd.NBasis())
	mesh := make([]float64, n)
	floats.Span(mesh, fd.Domain().A, fd.Domain().B)
	return mesh
}

// ToGrid resamples every curve on the given points (default: an evenly
// spaced mesh of max(501, 10·nBasis) points over the domain).
func (fd *FDataBasis) ToGrid(points []float64) (*grid.FData, error) {
	if points == nil {
		points = fd.statsMesh()
	}
	values, err := fd.Evaluate(points, 0)
	if err != nil {
		return nil, err
	}
	return grid.New(values, points)
}

// Var computes the pointwise cross-sample variance. There is no closed
// form in coefficient space: the object is discretized, the variance
// computed on the grid and the result projected back onto the basis.
func (fd *FDataBasis) Var(points []float64) (*FDataBasis, error) {
	g, err := fd.ToGrid(points)
	if err != nil {
		return nil, err
	}
	v, err := g.Var()
	if err != nil {
		return nil, err
	}
	return FromGrid(v, fd.basis, Cholesky)
}

// Cov computes the covariance surface between grid points of the
// discretized curves (no basis-space closed form; the matrix stays on the
// grid).
func (fd *FDataBasis) Cov(points []float64) (*mat.SymDense, error) {
	g, err := fd.ToGrid(points)
	if err != nil {
		return nil, err
	}
	return g.Cov(), nil
}

// GMean computes the pointwise geometric mean via discretization, like
// Var. Fails when any curve value is not strictly positive.
func (fd *FDataBasis) GMean(points []float64) (*FDataBasis, error) {
	g, err := fd.ToGrid(points)
	if err != nil {
		return nil, err
	}
	gm, err := g.GMean()
	if err != nil {
		return nil, err
	}
	return FromGrid(gm, fd.basis, Cholesky)
}
