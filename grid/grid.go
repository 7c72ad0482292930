package grid

import (
	"math"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// FData is a set of curves observed on a shared grid of sample points.
// Row i of the value matrix holds sample i; column j holds the values at
// points[j]. The domain is the interval the points span.
type FData struct {
	values *mat.Dense
	points []float64
}

// New constructs an FData from a value matrix of shape
// nSamples × len(points). Both inputs are copied.
//
// Fails with ErrBadPoints unless points is a strictly increasing, NaN-free
// sequence of at least two values, and with ErrDimensionMismatch when the
// matrix width differs from len(points).
func New(values mat.Matrix, points []float64) (*FData, error) {
	if len(points) < 2 {
		return nil, ErrBadPoints
	}
	for i, p := range points {
		if math.IsNaN(p) || (i > 0 && p <= points[i-1]) {
			return nil, ErrBadPoints
		}
	}
	_, c := values.Dims()
	if c != len(points) {
		return nil, ErrDimensionMismatch
	}
	ps := make([]float64, len(points))
	copy(ps, points)
	return &FData{values: mat.DenseCopyOf(values), points: ps}, nil
}

// NSamples returns the number of curves.
func (g *FData) NSamples() int {
	r, _ := g.values.Dims()
	return r
}

// NPoints returns the grid size.
func (g *FData) NPoints() int { return len(g.points) }

// Domain returns the interval spanned by the sample points.
func (g *FData) Domain() (a, b float64) {
	return g.points[0], g.points[len(g.points)-1]
}

// Points returns a copy of the sample points.
func (g *FData) Points() []float64 {
	ps := make([]float64, len(g.points))
	copy(ps, g.points)
	return ps
}

// Values returns a copy of the value matrix.
func (g *FData) Values() *mat.Dense { return mat.DenseCopyOf(g.values) }

// Row returns a copy of sample i's values.
func (g *FData) Row(i int) []float64 {
	row := make([]float64, len(g.points))
	mat.Row(row, i, g.values)
	return row
}

// Evaluate resamples every curve at the given points by piecewise-linear
// interpolation. Points outside the observed range are clamped to the
// nearest endpoint (constant extension).
func (g *FData) Evaluate(points []float64) (*mat.Dense, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for _, p := range points {
		if math.IsNaN(p) {
			return nil, ErrNaNPoint
		}
	}
	a, b := g.Domain()
	n := g.NSamples()
	out := mat.NewDense(n, len(points), nil)
	row := make([]float64, len(g.points))
	for i := 0; i < n; i++ {
		mat.Row(row, i, g.values)
		var pl interp.PiecewiseLinear
		if err := pl.Fit(g.points, row); err != nil {
			return nil, err
		}
		for j, p := range points {
			out.Set(i, j, pl.Predict(math.Min(math.Max(p, a), b)))
		}
	}
	return out, nil
}
