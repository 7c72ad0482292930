package regress

import "errors"

var (
	// ErrBetaCount indicates a covariate list whose length differs from
	// the number of coefficient bases, or a nil entry in either.
	ErrBetaCount = errors.New("regress: covariate count must match coefficient-basis count")

	// ErrDimensionMismatch indicates covariates whose sample counts
	// disagree with the outcome's.
	ErrDimensionMismatch = errors.New("regress: covariate and outcome sample counts differ")

	// ErrBadWeights indicates a weight vector with negative entries or a
	// length other than the sample count.
	ErrBadWeights = errors.New("regress: weights must be non-negative, one per sample")

	// ErrSingular is returned when the normal-equation matrix cannot be
	// inverted. The underlying linear-algebra failure is wrapped.
	ErrSingular = errors.New("regress: normal-equation matrix is singular")
)
