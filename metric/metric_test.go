package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/grid"
	"github.com/katalvlaran/fda/metric"
)

// TestLpNorm_KnownValues: ‖1‖₂ = 1 and ‖t‖₁ = 1/2 on the unit interval.
func TestLpNorm_KnownValues(t *testing.T) {
	points := make([]float64, 101)
	ones := make([]float64, 101)
	ramp := make([]float64, 101)
	for i := range points {
		points[i] = float64(i) / 100
		ones[i] = 1
		ramp[i] = points[i]
	}

	n2, err := metric.LpNorm(ones, points, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, n2, 1e-10, "L2 norm of the constant 1")

	n1, err := metric.LpNorm(ramp, points, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n1, 1e-10, "L1 norm of the ramp")

	sup, err := metric.LpNorm(ramp, points, math.Inf(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sup, 1e-12, "sup norm of the ramp")
}

// TestLpDistance_Guards pins the argument validation.
func TestLpDistance_Guards(t *testing.T) {
	_, err := metric.LpNorm(nil, nil, 2)
	assert.ErrorIs(t, err, metric.ErrNoPoints, "empty curve must error")

	_, err = metric.LpNorm([]float64{1, 2}, []float64{0}, 2)
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch, "curve/grid length mismatch")

	_, err = metric.LpNorm([]float64{1, 2}, []float64{0, 1}, 0.5)
	assert.ErrorIs(t, err, metric.ErrBadOrder, "order below 1 must error")

	_, err = metric.LpDistance([]float64{1, 2}, []float64{1}, []float64{0, 1}, 2)
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch, "curves of different lengths")
}

// TestPairwiseLp builds the distance matrix of three constant curves.
func TestPairwiseLp(t *testing.T) {
	g, err := grid.New(mat.NewDense(3, 2, []float64{
		0, 0,
		1, 1,
		3, 3,
	}), []float64{0, 1})
	require.NoError(t, err)

	d, err := metric.PairwiseLp(g, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d.At(1, 1), 1e-12, "zero diagonal")
	assert.InDelta(t, 1.0, d.At(0, 1), 1e-10, "constant gap 1")
	assert.InDelta(t, 3.0, d.At(0, 2), 1e-10, "constant gap 3")
	assert.InDelta(t, d.At(2, 0), d.At(0, 2), 0, "symmetry")
}

// TestElasticDistance_IdenticalIsZero: equal sequences cost nothing and no
// path comes back unless asked for.
func TestElasticDistance_IdenticalIsZero(t *testing.T) {
	a := []float64{0, 1, 2, 1}
	opts := metric.DefaultWarpOptions()

	d, path, err := metric.ElasticDistance(a, a, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "identical curves have zero elastic distance")
	assert.Nil(t, path)
}

// TestElasticDistance_AbsorbsTimeShift: a repeated sample costs nothing,
// unlike any Lp distance on the same pair.
func TestElasticDistance_AbsorbsTimeShift(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := metric.DefaultWarpOptions()
	opts.MemoryMode = metric.MemoryFull
	opts.ReturnPath = true

	d, path, err := metric.ElasticDistance(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "perfect warped match")
	require.Len(t, path, 4, "one step per matched pair")
	assert.Equal(t, metric.WarpStep{I: 0, J: 0}, path[0])
	assert.Equal(t, metric.WarpStep{I: 2, J: 3}, path[len(path)-1])
}

// TestElasticDistance_TwoRowsMatchesFull: both storage modes compute the
// same distance.
func TestElasticDistance_TwoRowsMatchesFull(t *testing.T) {
	a := []float64{4.2, 4.17, 4.19, 4.08, 4.11, 4.09}
	b := []float64{4.2, 4.18, 4.1, 4.09, 4.11}

	full := metric.DefaultWarpOptions()
	full.MemoryMode = metric.MemoryFull
	full.SlopePenalty = 0.25
	two := full
	two.MemoryMode = metric.MemoryTwoRows

	df, _, err := metric.ElasticDistance(a, b, &full)
	require.NoError(t, err)
	dt, _, err := metric.ElasticDistance(a, b, &two)
	require.NoError(t, err)
	assert.InDelta(t, df, dt, 1e-12, "storage mode must not change the distance")
}

// TestElasticDistance_WindowBlocksAllPaths: a band narrower than the
// length gap admits no alignment — the distance is +Inf and the requested
// path comes back empty instead of blowing up in the backtrack.
func TestElasticDistance_WindowBlocksAllPaths(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2}

	opts := metric.DefaultWarpOptions()
	opts.Window = 1
	opts.MemoryMode = metric.MemoryFull
	opts.ReturnPath = true

	d, path, err := metric.ElasticDistance(a, b, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1), "no admissible path means infinite distance")
	assert.Nil(t, path, "no path exists to report")

	// rolling storage agrees
	opts.ReturnPath = false
	opts.MemoryMode = metric.MemoryTwoRows
	d, _, err = metric.ElasticDistance(a, b, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

// TestElasticDistance_WindowedPathStaysInBounds: with a feasible band the
// recovered path is monotone and stays inside both curves.
func TestElasticDistance_WindowedPathStaysInBounds(t *testing.T) {
	a := []float64{1, 3, 4, 9, 8, 6}
	b := []float64{1, 4, 5, 9, 7}

	opts := metric.DefaultWarpOptions()
	opts.Window = 2
	opts.SlopePenalty = 0.5
	opts.MemoryMode = metric.MemoryFull
	opts.ReturnPath = true

	_, path, err := metric.ElasticDistance(a, b, &opts)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, metric.WarpStep{I: 0, J: 0}, path[0])
	assert.Equal(t, metric.WarpStep{I: 5, J: 4}, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		di := path[k].I - path[k-1].I
		dj := path[k].J - path[k-1].J
		assert.True(t, di >= 0 && dj >= 0 && di+dj >= 1 && di <= 1 && dj <= 1,
			"step %d must advance by one in at least one curve", k)
		assert.GreaterOrEqual(t, path[k].I, 0)
		assert.GreaterOrEqual(t, path[k].J, 0)
	}
}

// TestElasticDistance_Guards pins the error surface.
func TestElasticDistance_Guards(t *testing.T) {
	opts := metric.DefaultWarpOptions()

	_, _, err := metric.ElasticDistance(nil, []float64{1}, &opts)
	assert.ErrorIs(t, err, metric.ErrNoPoints, "empty first curve")
	_, _, err = metric.ElasticDistance([]float64{1}, nil, &opts)
	assert.ErrorIs(t, err, metric.ErrNoPoints, "empty second curve")

	opts.ReturnPath = true
	_, _, err = metric.ElasticDistance([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, metric.ErrPathNeedsFull, "path needs the full matrix")
}

// TestElasticDistance_SlopePenaltyBiasesDiagonal: a positive penalty makes
// the stretched match cost more than the unpenalized one.
func TestElasticDistance_SlopePenaltyBiasesDiagonal(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}

	free := metric.DefaultWarpOptions()
	taxed := free
	taxed.SlopePenalty = 0.5

	df, _, err := metric.ElasticDistance(a, b, &free)
	require.NoError(t, err)
	dtx, _, err := metric.ElasticDistance(a, b, &taxed)
	require.NoError(t, err)
	assert.Less(t, df, dtx, "penalized stretch must cost more")
}

// TestPairwiseElastic: symmetric, zero diagonal, and non-negative.
func TestPairwiseElastic(t *testing.T) {
	g, err := grid.New(mat.NewDense(3, 4, []float64{
		0, 1, 2, 1,
		0, 0, 1, 2,
		2, 1, 0, 0,
	}), []float64{0, 0.33, 0.66, 1})
	require.NoError(t, err)

	d, err := metric.PairwiseElastic(g, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, d.At(i, i), "zero diagonal at %d", i)
		for j := 0; j < 3; j++ {
			assert.GreaterOrEqual(t, d.At(i, j), 0.0)
			assert.Equal(t, d.At(j, i), d.At(i, j), "symmetry at (%d,%d)", i, j)
		}
	}
	assert.Greater(t, d.At(0, 2), 0.0, "distinct curves are apart")
}
