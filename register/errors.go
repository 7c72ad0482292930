package register

import "errors"

var (
	// ErrDimensionMismatch indicates an initial-shift or landmark vector
	// whose length differs from the number of samples.
	ErrDimensionMismatch = errors.New("register: vector length differs from sample count")

	// ErrBadExtension is returned for an unrecognized Extension value.
	ErrBadExtension = errors.New("register: unknown extension policy")

	// ErrBadLocation is returned for an unrecognized or non-finite landmark
	// target location.
	ErrBadLocation = errors.New("register: invalid landmark target location")

	// ErrBadOption indicates a nonsensical option value (MaxIter < 1,
	// Tol <= 0, a mesh with fewer than two points).
	ErrBadOption = errors.New("register: invalid option value")

	// ErrEmptyWindow is returned when the shifts (initial or iterated)
	// exceed the domain length, so the restricted working window keeps
	// fewer than two mesh points and the criterion cannot be integrated.
	ErrEmptyWindow = errors.New("register: shifts leave no usable mesh window")
)
