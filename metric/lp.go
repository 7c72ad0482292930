// Package metric: Lp amplitude distances on a shared grid.

package metric

import (
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/grid"
)

// LpNorm computes ( ∫ |x(t)|^p dt )^(1/p) over the grid points by the
// trapezoidal rule; p = math.Inf(1) gives the supremum norm. Points must
// be strictly increasing and match x in length.
func LpNorm(x, points []float64, p float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrNoPoints
	}
	if len(x) != len(points) {
		return 0, ErrDimensionMismatch
	}
	if math.IsInf(p, 1) {
		sup := 0.0
		for _, v := range x {
			sup = math.Max(sup, math.Abs(v))
		}
		return sup, nil
	}
	if p < 1 || math.IsNaN(p) {
		return 0, ErrBadOrder
	}
	f := make([]float64, len(x))
	for i, v := range x {
		f[i] = math.Pow(math.Abs(v), p)
	}
	return math.Pow(integrate.Trapezoidal(points, f), 1/p), nil
}

// LpDistance computes the Lp distance between two curves sampled on the
// same grid.
func LpDistance(x, y, points []float64, p float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrDimensionMismatch
	}
	diff := make([]float64, len(x))
	for i := range x {
		diff[i] = x[i] - y[i]
	}
	return LpNorm(diff, points, p)
}

// PairwiseLp builds the symmetric matrix of Lp distances between every
// pair of samples in g.
func PairwiseLp(g *grid.FData, p float64) (*mat.SymDense, error) {
	n := g.NSamples()
	points := g.Points()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		xi := g.Row(i)
		for j := i + 1; j < n; j++ {
			d, err := LpDistance(xi, g.Row(j), points, p)
			if err != nil {
				return nil, err
			}
			out.SetSym(i, j, d)
		}
	}
	return out, nil
}
