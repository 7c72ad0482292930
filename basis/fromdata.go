// Package basis: least-squares projection of discretized data onto a
// basis. This is the entry point of the raw-data → functional-object flow.

package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/grid"
)

// FromData projects sampled values onto b by ordinary least squares:
// coefficients c minimize ‖y - Φc‖² with Φ[t,k] = φ_k(points[t]). values
// holds one sample per row, one column per sample point.
//
// The method selects the solver: Cholesky works on the normal equations
// (ΦᵀΦ)c = Φᵀy, QR factorizes Φ itself for better conditioning at higher
// cost. Rank-deficient systems (including len(points) < b.NBasis()) fail
// with an error wrapping ErrSingular.
func FromData(values mat.Matrix, points []float64, b Basis, method SolveMethod) (*FDataBasis, error) {
	nSamples, c := values.Dims()
	if c != len(points) {
		return nil, ErrDimensionMismatch
	}
	if len(points) < b.NBasis() {
		return nil, fmt.Errorf("%d points cannot determine %d coefficients: %w",
			len(points), b.NBasis(), ErrSingular)
	}
	phiT, err := Evaluate(b, points, 0) // nBasis × nPoints
	if err != nil {
		return nil, err
	}

	// right-hand side y with one sample per column
	y := mat.NewDense(len(points), nSamples, nil)
	y.Copy(values.T())

	sol := mat.NewDense(b.NBasis(), nSamples, nil)
	switch method {
	case Cholesky:
		var ata mat.SymDense
		ata.SymOuterK(1, phiT) // ΦᵀΦ

		var chol mat.Cholesky
		if !chol.Factorize(&ata) {
			return nil, fmt.Errorf("normal equations not positive definite: %w", ErrSingular)
		}
		var rhs mat.Dense
		rhs.Mul(phiT, y) // Φᵀy
		if err := chol.SolveTo(sol, &rhs); err != nil {
			return nil, fmt.Errorf("cholesky solve: %v: %w", err, ErrSingular)
		}
	case QR:
		var qr mat.QR
		qr.Factorize(phiT.T())
		if err := qr.SolveTo(sol, false, y); err != nil {
			return nil, fmt.Errorf("qr solve: %v: %w", err, ErrSingular)
		}
	default:
		return nil, ErrBadMethod
	}

	coefs := mat.NewDense(nSamples, b.NBasis(), nil)
	coefs.Copy(sol.T())
	return &FDataBasis{basis: b, coefs: coefs}, nil
}

// FromGrid projects a discretized object onto b; shorthand for FromData on
// the grid's values and points.
func FromGrid(g *grid.FData, b Basis, method SolveMethod) (*FDataBasis, error) {
	return FromData(g.Values(), g.Points(), b, method)
}
