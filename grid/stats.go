// Package grid: cross-sample statistics, computed pointwise on the shared
// grid with gonum/stat.

package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// column extracts column j of the value matrix into dst.
func (g *FData) column(dst []float64, j int) []float64 {
	for i := range dst {
		dst[i] = g.values.At(i, j)
	}
	return dst
}

// Mean returns the pointwise cross-sample mean as a one-sample FData.
// weights is either nil (unweighted) or one non-negative value per sample;
// weights summing to zero fail with ErrBadWeights.
func (g *FData) Mean(weights []float64) (*FData, error) {
	if weights != nil && len(weights) != g.NSamples() {
		return nil, ErrDimensionMismatch
	}
	if weights != nil && floats.Sum(weights) == 0 {
		return nil, ErrBadWeights
	}
	mu := mat.NewDense(1, g.NPoints(), nil)
	col := make([]float64, g.NSamples())
	for j := 0; j < g.NPoints(); j++ {
		mu.Set(0, j, stat.Mean(g.column(col, j), weights))
	}
	return New(mu, g.points)
}

// Var returns the pointwise cross-sample (unbiased) variance as a
// one-sample FData.
func (g *FData) Var() (*FData, error) {
	v := mat.NewDense(1, g.NPoints(), nil)
	col := make([]float64, g.NSamples())
	for j := 0; j < g.NPoints(); j++ {
		v.Set(0, j, stat.Variance(g.column(col, j), nil))
	}
	return New(v, g.points)
}

// Cov returns the sample covariance matrix between grid points: entry
// (j, k) is the cross-sample covariance of values at points[j] and
// points[k].
func (g *FData) Cov() *mat.SymDense {
	cov := mat.NewSymDense(g.NPoints(), nil)
	stat.CovarianceMatrix(cov, g.values, nil)
	return cov
}

// GMean returns the pointwise geometric mean as a one-sample FData.
// Fails with ErrNonPositive when any value is not strictly positive.
func (g *FData) GMean() (*FData, error) {
	r, c := g.values.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if g.values.At(i, j) <= 0 {
				return nil, ErrNonPositive
			}
		}
	}
	gm := mat.NewDense(1, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		gm.Set(0, j, stat.GeometricMean(g.column(col, j), nil))
	}
	return New(gm, g.points)
}
