// Package register: options, extension policies and landmark locations.

package register

import (
	"math"

	"github.com/katalvlaran/fda/basis"
)

// DEFAULTS - single source of truth for the Newton–Raphson iteration.
const (
	// DefaultMaxIter bounds the number of Newton–Raphson rounds.
	DefaultMaxIter = 5

	// DefaultTol stops the iteration once every shift update is smaller.
	DefaultTol = 1e-2

	// DefaultAlpha is the Newton–Raphson step size.
	DefaultAlpha = 1.0
)

// Extension controls how curves are evaluated beyond the domain ends when
// a candidate shift pushes the evaluation grid outside [a, b].
//
//   - ExtDefault  — decided by the basis: periodic families (Fourier) wrap
//     in their own period, everything else behaves like ExtSlice.
//   - ExtBasis    — wrap periodically using the basis's declared period.
//   - ExtPeriodic — wrap periodically using the domain length as period.
//   - ExtSlice    — no wraparound: the working window shrinks each
//     iteration to the sub-interval valid for every shifted curve.
type Extension int

const (
	ExtDefault Extension = iota
	ExtBasis
	ExtPeriodic
	ExtSlice
)

// resolve maps the policy onto (periodic?, period) for a concrete basis.
func (e Extension) resolve(b basis.Basis) (periodic bool, period float64, err error) {
	switch e {
	case ExtDefault:
		if b.Periodic() {
			return true, b.Period(), nil
		}
		return false, 0, nil
	case ExtBasis:
		return true, b.Period(), nil
	case ExtPeriodic:
		return true, b.Domain().Length(), nil
	case ExtSlice:
		return false, 0, nil
	default:
		return false, 0, ErrBadExtension
	}
}

// Options configures ShiftRegister.
//
// Fields:
//   - MaxIter   — maximum Newton–Raphson rounds (default 5).
//   - Tol       — convergence tolerance on max |update| (default 1e-2).
//   - Alpha     — step size of the update (default 1).
//   - Extension — beyond-domain evaluation policy, see Extension.
//   - Initial   — starting shifts, one per sample; nil means all zero.
//   - Mesh      — evaluation grid; nil means max(10·nBasis+1, 201) evenly
//     spaced points over the domain.
//   - Method    — least-squares solver for the final re-projection.
type Options struct {
	MaxIter   int
	Tol       float64
	Alpha     float64
	Extension Extension
	Initial   []float64
	Mesh      []float64
	Method    basis.SolveMethod
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter, Tol: DefaultTol, Alpha: DefaultAlpha}
}

// validate enforces option invariants against a concrete sample count.
func (o *Options) validate(nSamples int) error {
	if o.MaxIter < 1 || o.Tol <= 0 || o.Alpha <= 0 || math.IsNaN(o.Tol) || math.IsNaN(o.Alpha) {
		return ErrBadOption
	}
	if o.Mesh != nil && len(o.Mesh) < 2 {
		return ErrBadOption
	}
	if o.Initial != nil && len(o.Initial) != nSamples {
		return ErrDimensionMismatch
	}
	return nil
}

type locationKind int

const (
	locMinimize locationKind = iota
	locMean
	locMedian
	locMiddle
	locAt
)

// Location is the target a landmark alignment shifts every landmark onto.
// Build one with LocMinimize, LocMean, LocMedian, LocMiddle or LocAt.
type Location struct {
	kind   locationKind
	target float64
}

// LocMinimize targets the midpoint of the landmark extremes
// (max+min)/2 — the choice minimizing the largest shift.
func LocMinimize() Location { return Location{kind: locMinimize} }

// LocMean targets the landmark mean.
func LocMean() Location { return Location{kind: locMean} }

// LocMedian targets the landmark median.
func LocMedian() Location { return Location{kind: locMedian} }

// LocMiddle targets the domain midpoint.
func LocMiddle() Location { return Location{kind: locMiddle} }

// LocAt targets an explicit time.
func LocAt(t float64) Location { return Location{kind: locAt, target: t} }
