// Package metric: elastic (time-warping) distance.
//
// Dynamic program over the pointwise cost |a_i − b_j|:
//
//	D[i][j] = cost(i,j) + min(D[i-1][j]+λ, D[i][j-1]+λ, D[i-1][j-1])
//
// with D[0][0] = 0 and +∞ borders, λ the slope penalty. The distance is
// D[n][m]; the path, when requested, is recovered by backtracking the
// minimal predecessor from (n, m).

package metric

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/grid"
)

// ElasticDistance computes the time-warping distance between two sampled
// curves, and the optimal warping path when opts.ReturnPath is set.
// The curves need not share a grid or a length.
//
// A window narrower than the length gap forbids every alignment: the
// distance is +Inf and the path, if requested, is nil.
//
// Fails with ErrNoPoints on an empty input and ErrPathNeedsFull when a
// path is requested under two-row storage.
func ElasticDistance(a, b []float64, opts *WarpOptions) (float64, []WarpStep, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrNoPoints
	}
	o := DefaultWarpOptions()
	if opts != nil {
		o = *opts
	}
	if o.ReturnPath && o.MemoryMode != MemoryFull {
		return 0, nil, ErrPathNeedsFull
	}
	window := o.Window
	if window <= 0 {
		window = n + m // never binds
	}

	if o.MemoryMode == MemoryTwoRows {
		return elasticTwoRows(a, b, window, o.SlopePenalty), nil, nil
	}

	// full matrix, flat storage with row stride m+1
	inf := math.Inf(1)
	stride := m + 1
	dp := make([]float64, (n+1)*stride)
	for j := 1; j <= m; j++ {
		dp[j] = inf
	}
	for i := 1; i <= n; i++ {
		dp[i*stride] = inf
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				dp[i*stride+j] = inf
				continue
			}
			ins := dp[(i-1)*stride+j] + o.SlopePenalty
			del := dp[i*stride+j-1] + o.SlopePenalty
			match := dp[(i-1)*stride+j-1]
			dp[i*stride+j] = math.Abs(a[i-1]-b[j-1]) + math.Min(match, math.Min(ins, del))
		}
	}
	dist := dp[n*stride+m]

	// a window narrower than the length gap leaves no admissible path;
	// the distance is +Inf and there is nothing to backtrack
	var path []WarpStep
	if o.ReturnPath && !math.IsInf(dist, 1) {
		for i, j := n, m; i > 0 || j > 0; {
			path = append(path, WarpStep{I: i - 1, J: j - 1})
			// pick the predecessor minimizing the recurrence; the ±Inf
			// borders are never candidates, so neither index underflows
			match := dp[(i-1)*stride+j-1]
			ins, del := inf, inf
			if i > 1 {
				ins = dp[(i-1)*stride+j] + o.SlopePenalty
			}
			if j > 1 {
				del = dp[i*stride+j-1] + o.SlopePenalty
			}
			switch {
			case match <= ins && match <= del:
				i--
				j--
			case ins <= del:
				i--
			default:
				j--
			}
		}
		for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
			path[l], path[r] = path[r], path[l]
		}
	}
	return dist, path, nil
}

// elasticTwoRows is the O(m)-space variant: only the previous and current
// DP rows are kept.
func elasticTwoRows(a, b []float64, window int, penalty float64) float64 {
	m := len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				curr[j] = inf
				continue
			}
			ins := prev[j] + penalty
			del := curr[j-1] + penalty
			curr[j] = math.Abs(a[i-1]-b[j-1]) + math.Min(prev[j-1], math.Min(ins, del))
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// PairwiseElastic builds the symmetric matrix of elastic distances
// between every pair of samples in g. Path recovery is disabled
// regardless of opts.
func PairwiseElastic(g *grid.FData, opts *WarpOptions) (*mat.SymDense, error) {
	o := DefaultWarpOptions()
	if opts != nil {
		o = *opts
		o.ReturnPath = false
	}
	n := g.NSamples()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		xi := g.Row(i)
		for j := i + 1; j < n; j++ {
			d, _, err := ElasticDistance(xi, g.Row(j), &o)
			if err != nil {
				return nil, err
			}
			out.SetSym(i, j, d)
		}
	}
	return out, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
