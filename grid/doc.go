// Package grid holds functional data in discretized form: a shared,
// strictly increasing set of sample points and one row of observed values
// per sample.
//
// 🚀 Why a grid type?
//
//	The basis representation (package basis) is the analytic form; the grid
//	is the conversion boundary. Raw measurements enter the toolkit here,
//	basis-expanded curves are resampled back here, and the statistics with
//	no closed form in coefficient space (variance, covariance, geometric
//	mean) are computed here.
//
// ✨ Key features:
//   - Evaluate at arbitrary points by piecewise-linear interpolation
//     (clamped to the observed range)
//   - Mean / Var / Cov / GMean across samples (gonum/stat)
//   - Immutable: constructors copy, operations return new objects
//
// ⚙️ Usage:
//
//	g, _ := grid.New(values, points)      // values: nSamples × len(points)
//	mu := g.Mean()                        // one-sample grid of column means
//	fd, _ := basis.FromGrid(g, b, basis.Cholesky)
//
// Distances between discretized curves live in package metric.
package grid
