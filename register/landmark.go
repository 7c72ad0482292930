// Package register: closed-form landmark alignment.

package register

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/fda/basis"
	"gonum.org/v1/gonum/floats"
)

// LandmarkShifts turns one landmark time per curve into the shifts that
// move every landmark onto the target described by loc:
//
//	δ_i = landmark_i − target
//
// Fails with ErrDimensionMismatch when len(landmarks) != fd.NSamples()
// and ErrBadLocation for a non-finite LocAt target.
func LandmarkShifts(fd *basis.FDataBasis, landmarks []float64, loc Location) ([]float64, error) {
	if len(landmarks) != fd.NSamples() {
		return nil, ErrDimensionMismatch
	}
	if len(landmarks) == 0 {
		return nil, ErrDimensionMismatch
	}
	target, err := loc.resolve(landmarks, fd.Domain())
	if err != nil {
		return nil, err
	}
	delta := make([]float64, len(landmarks))
	for i, l := range landmarks {
		delta[i] = l - target
	}
	return delta, nil
}

// LandmarkShift aligns the curves of fd so every landmark coincides with
// the target location, re-projecting onto a domain-rescaled copy of the
// basis. See LandmarkShifts for the shift formula and failure modes.
func LandmarkShift(fd *basis.FDataBasis, landmarks []float64, loc Location, method basis.SolveMethod) (*basis.FDataBasis, error) {
	delta, err := LandmarkShifts(fd, landmarks, loc)
	if err != nil {
		return nil, err
	}
	return fd.Shift(delta, &basis.ShiftOptions{Method: method})
}

// resolve computes the concrete target time for a landmark vector.
func (l Location) resolve(landmarks []float64, d basis.Domain) (float64, error) {
	switch l.kind {
	case locMinimize:
		return (floats.Max(landmarks) + floats.Min(landmarks)) / 2, nil
	case locMean:
		return stats.Mean(landmarks)
	case locMedian:
		return stats.Median(landmarks)
	case locMiddle:
		return (d.A + d.B) / 2, nil
	case locAt:
		if math.IsNaN(l.target) || math.IsInf(l.target, 0) {
			return 0, ErrBadLocation
		}
		return l.target, nil
	default:
		return 0, ErrBadLocation
	}
}
