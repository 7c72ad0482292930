package register_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/basis"
	"github.com/katalvlaran/fda/register"
)

var unit = basis.Domain{A: 0, B: 1}

// sinusoids builds x_i(t) = sin(2π(t + s_i)) exactly in a 3-function
// Fourier basis on the unit interval.
func sinusoids(t *testing.T, shifts []float64) *basis.FDataBasis {
	t.Helper()
	four, err := basis.NewFourier(unit, 3, 0)
	require.NoError(t, err)

	// sin(2πt + θ) = cosθ·sin(2πt) + sinθ·cos(2πt); the basis carries
	// √2·sin and √2·cos, so divide by √2
	coefs := mat.NewDense(len(shifts), 3, nil)
	for i, s := range shifts {
		theta := 2 * math.Pi * s
		coefs.Set(i, 1, math.Cos(theta)/math.Sqrt2)
		coefs.Set(i, 2, math.Sin(theta)/math.Sqrt2)
	}
	fd, err := basis.New(four, coefs)
	require.NoError(t, err)
	return fd
}

// TestShiftRegisterShifts_RecoversKnownOffsets: curves generated with
// known phase offsets must come back (negated) from a zero start within
// the default 5 rounds and 1e-2 tolerance.
func TestShiftRegisterShifts_RecoversKnownOffsets(t *testing.T) {
	known := []float64{0, 0.05, -0.05, 0.02}
	fd := sinusoids(t, known)

	opts := register.DefaultOptions()
	delta, err := register.ShiftRegisterShifts(fd, &opts)
	require.NoError(t, err)
	require.Len(t, delta, len(known))

	// aligning undoes the generation shift up to a common phase; with
	// offsets centered near zero that phase is ~0
	for i, s := range known {
		assert.InDelta(t, -s, delta[i], 2e-2, "recovered shift for sample %d", i)
	}
}

// TestShiftRegister_AlignsCurves: after registration the curves are nearly
// indistinguishable pointwise.
func TestShiftRegister_AlignsCurves(t *testing.T) {
	fd := sinusoids(t, []float64{0.04, -0.04, 0.08})

	opts := register.DefaultOptions()
	opts.MaxIter = 20
	opts.Tol = 1e-5
	reg, err := register.ShiftRegister(fd, &opts)
	require.NoError(t, err)
	require.Equal(t, 3, reg.NSamples())

	points := []float64{0.1, 0.3, 0.55, 0.8}
	v, err := reg.Evaluate(points, 0)
	require.NoError(t, err)
	for j := range points {
		lo, hi := v.At(0, j), v.At(0, j)
		for i := 1; i < 3; i++ {
			lo = math.Min(lo, v.At(i, j))
			hi = math.Max(hi, v.At(i, j))
		}
		assert.Less(t, hi-lo, 1e-2, "registered spread at t=%g", points[j])
	}
}

// TestShiftRegister_OptionGuards pins the option validation errors.
func TestShiftRegister_OptionGuards(t *testing.T) {
	fd := sinusoids(t, []float64{0, 0.05})

	opts := register.DefaultOptions()
	opts.MaxIter = 0
	_, err := register.ShiftRegisterShifts(fd, &opts)
	assert.ErrorIs(t, err, register.ErrBadOption, "MaxIter < 1 must error")

	opts = register.DefaultOptions()
	opts.Tol = -1
	_, err = register.ShiftRegisterShifts(fd, &opts)
	assert.ErrorIs(t, err, register.ErrBadOption, "non-positive tolerance must error")

	opts = register.DefaultOptions()
	opts.Initial = []float64{0.1}
	_, err = register.ShiftRegisterShifts(fd, &opts)
	assert.ErrorIs(t, err, register.ErrDimensionMismatch, "initial shifts must be one per sample")

	opts = register.DefaultOptions()
	opts.Extension = register.Extension(99)
	_, err = register.ShiftRegisterShifts(fd, &opts)
	assert.ErrorIs(t, err, register.ErrBadExtension, "unknown policy must error")
}

// TestShiftRegister_SliceExtensionOnSplines: a non-periodic family under
// ExtSlice still converges on offset ramps (against the shrinking window).
func TestShiftRegister_SliceExtensionOnSplines(t *testing.T) {
	mono, err := basis.NewMonomial(unit, 2)
	require.NoError(t, err)
	// x_i(t) = t + c_i: pure vertical offsets have no phase to remove
	fd, err := basis.New(mono, mat.NewDense(2, 2, []float64{0, 1, 0.3, 1}))
	require.NoError(t, err)

	opts := register.DefaultOptions()
	opts.Extension = register.ExtSlice
	delta, err := register.ShiftRegisterShifts(fd, &opts)
	require.NoError(t, err)

	// vertical offsets of a shared unit slope align by moving ±c/2 in time
	assert.InDelta(t, 0.15, delta[0], 2e-2)
	assert.InDelta(t, -0.15, delta[1], 2e-2)
}

// TestShiftRegister_InitialBeyondDomain: starting shifts wider than the
// interval leave the slice-extension window without mesh points; that is
// an error, not a panic.
func TestShiftRegister_InitialBeyondDomain(t *testing.T) {
	mono, err := basis.NewMonomial(unit, 2)
	require.NoError(t, err)
	fd, err := basis.New(mono, mat.NewDense(2, 2, []float64{0, 1, 0.5, 1}))
	require.NoError(t, err)

	opts := register.DefaultOptions()
	opts.Extension = register.ExtSlice
	opts.Initial = []float64{2, 2}
	_, err = register.ShiftRegisterShifts(fd, &opts)
	assert.ErrorIs(t, err, register.ErrEmptyWindow, "over-shifted start must surface as an error")

	// one-sided overshoot collapses the window just the same
	opts.Initial = []float64{-1.5, 0}
	_, err = register.ShiftRegisterShifts(fd, &opts)
	assert.ErrorIs(t, err, register.ErrEmptyWindow)
}

// TestLandmarkShifts_MinimizeExactness: landmarks {0.2, 0.8} with the
// extreme-midpoint target give shifts {−0.3, +0.3}.
func TestLandmarkShifts_MinimizeExactness(t *testing.T) {
	fd := sinusoids(t, []float64{0, 0})

	delta, err := register.LandmarkShifts(fd, []float64{0.2, 0.8}, register.LocMinimize())
	require.NoError(t, err)
	assert.InDelta(t, -0.3, delta[0], 1e-12)
	assert.InDelta(t, 0.3, delta[1], 1e-12)
}

// TestLandmarkShifts_Targets walks the remaining location policies.
func TestLandmarkShifts_Targets(t *testing.T) {
	fd := sinusoids(t, []float64{0, 0, 0})
	landmarks := []float64{0.1, 0.3, 0.8}

	delta, err := register.LandmarkShifts(fd, landmarks, register.LocMean())
	require.NoError(t, err)
	assert.InDelta(t, 0.1-0.4, delta[0], 1e-12, "mean target")

	delta, err = register.LandmarkShifts(fd, landmarks, register.LocMedian())
	require.NoError(t, err)
	assert.InDelta(t, 0.8-0.3, delta[2], 1e-12, "median target")

	delta, err = register.LandmarkShifts(fd, landmarks, register.LocMiddle())
	require.NoError(t, err)
	assert.InDelta(t, 0.3-0.5, delta[1], 1e-12, "domain-midpoint target")

	delta, err = register.LandmarkShifts(fd, landmarks, register.LocAt(0.25))
	require.NoError(t, err)
	assert.InDelta(t, 0.1-0.25, delta[0], 1e-12, "explicit target")
}

// TestLandmarkShifts_Guards pins the validation errors.
func TestLandmarkShifts_Guards(t *testing.T) {
	fd := sinusoids(t, []float64{0, 0})

	_, err := register.LandmarkShifts(fd, []float64{0.5}, register.LocMean())
	assert.ErrorIs(t, err, register.ErrDimensionMismatch, "one landmark per sample")

	_, err = register.LandmarkShifts(fd, []float64{0.2, 0.8}, register.LocAt(math.NaN()))
	assert.ErrorIs(t, err, register.ErrBadLocation, "NaN explicit target must error")
}

// TestLandmarkShift_MovesLandmarks: after alignment the curves peak where
// the target says.
func TestLandmarkShift_MovesLandmarks(t *testing.T) {
	// x_i peaks (sin = 1) at t = 1/4 − s_i
	shifts := []float64{-0.05, 0.1}
	fd := sinusoids(t, shifts)
	landmarks := []float64{0.25 + 0.05, 0.25 - 0.1}

	aligned, err := register.LandmarkShift(fd, landmarks, register.LocAt(0.25), basis.Cholesky)
	require.NoError(t, err)

	v, err := aligned.Evaluate([]float64{0.25}, 0)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		assert.InDelta(t, 1.0, v.At(i, 0), 1e-6, "peak of sample %d sits on the target", i)
	}
}
