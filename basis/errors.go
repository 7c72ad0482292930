// Package basis: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); tests and callers match them
// with errors.Is. Panics are reserved for programmer errors in private
// helpers.

package basis

import "errors"

var (
	// ErrBadDomain indicates a malformed domain interval (a >= b, or a
	// NaN/Inf bound), including the empty window produced by an
	// over-restricted shift.
	ErrBadDomain = errors.New("basis: domain interval is not well-defined")

	// ErrBadNBasis indicates a non-positive number of basis functions, or a
	// count incompatible with a family constraint (e.g. a B-spline with
	// fewer basis functions than its order, an even-sized Fourier basis).
	ErrBadNBasis = errors.New("basis: invalid number of basis functions")

	// ErrBadKnots indicates a B-spline knot sequence that is too short,
	// decreasing, or not anchored at the domain endpoints.
	ErrBadKnots = errors.New("basis: invalid knot sequence")

	// ErrNegativeOrder is returned when a derivative order is negative.
	ErrNegativeOrder = errors.New("basis: derivative order must be non-negative")

	// ErrNaNPoint is returned when an evaluation point is NaN.
	ErrNaNPoint = errors.New("basis: evaluation points must not contain NaN")

	// ErrNoPoints is returned when an evaluation point set is empty.
	ErrNoPoints = errors.New("basis: evaluation points must be non-empty")

	// ErrBadWeights indicates a weight vector that sums to zero, so a
	// weighted mean is undefined.
	ErrBadWeights = errors.New("basis: weights must not sum to zero")

	// ErrDimensionMismatch indicates incompatible shapes: a coefficient
	// matrix whose column count differs from the basis size, a per-sample
	// vector whose length differs from the sample count, and the like.
	ErrDimensionMismatch = errors.New("basis: dimension mismatch")

	// ErrDomainMismatch indicates that an operation requires both operands
	// to share a domain range and they do not.
	ErrDomainMismatch = errors.New("basis: domain ranges differ")

	// ErrBasisMismatch indicates that an operation requires the exact same
	// basis on every operand (e.g. coefficient-wise addition, concatenation)
	// and the bases differ.
	ErrBasisMismatch = errors.New("basis: bases differ")

	// ErrUnsupported marks an operation that is not defined for the given
	// operand combination, e.g. dividing by a functional object.
	ErrUnsupported = errors.New("basis: operation not supported for this operand")

	// ErrSingular is returned when a least-squares system cannot be solved
	// (rank-deficient design matrix, fewer sample points than basis
	// functions). The underlying linear-algebra failure is wrapped, not
	// retried.
	ErrSingular = errors.New("basis: singular least-squares system")

	// ErrBadMethod is returned for an unrecognized SolveMethod value.
	ErrBadMethod = errors.New("basis: unknown least-squares method")
)
