package grid

import "errors"

var (
	// ErrDimensionMismatch indicates that the value matrix width differs
	// from the number of sample points.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrBadPoints indicates fewer than two sample points, a
	// non-increasing point sequence, or NaN points.
	ErrBadPoints = errors.New("grid: sample points must be strictly increasing")

	// ErrNaNPoint is returned when an evaluation point is NaN.
	ErrNaNPoint = errors.New("grid: evaluation points must not contain NaN")

	// ErrNoPoints is returned when an evaluation point set is empty.
	ErrNoPoints = errors.New("grid: evaluation points must be non-empty")

	// ErrBadWeights indicates a weight vector that sums to zero, so a
	// weighted mean is undefined.
	ErrBadWeights = errors.New("grid: weights must not sum to zero")

	// ErrNonPositive is returned by GMean when a value is not strictly
	// positive, so the geometric mean is undefined.
	ErrNonPositive = errors.New("grid: geometric mean requires strictly positive values")
)
