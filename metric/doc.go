// Package metric provides distances between functional observations.
//
// 🚀 Two families of distance
//
//   - Amplitude distances — Lp metrics integrating the pointwise gap
//     between two curves over their common grid:
//
//     d_p(x, y) = ( ∫ |x(t) − y(t)|^p dt )^(1/p)
//
//     with d_∞ the supremum gap. These are the right tool once curves are
//     registered (see package register).
//
//   - Elastic distance — a time-warping metric for curves that are NOT
//     phase-aligned: dynamic programming finds the monotone re-indexing
//     of one sample sequence onto the other minimizing total pointwise
//     cost, optionally constrained to a Sakoe–Chiba band and penalized
//     for non-diagonal steps.
//
// ⚙️ Usage:
//
//	d, err := metric.LpDistance(g.Row(0), g.Row(1), g.Points(), 2)
//	D, err := metric.PairwiseLp(g, 2)
//
//	opts := metric.DefaultWarpOptions()
//	d, path, err := metric.ElasticDistance(g.Row(0), g.Row(1), &opts)
//
// Memory: ElasticDistance with MemoryTwoRows keeps only two DP rows —
// O(m) space, no path recovery. MemoryFull keeps the whole matrix and
// supports ReturnPath.
package metric
