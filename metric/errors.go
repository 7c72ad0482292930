package metric

import "errors"

var (
	// ErrNoPoints indicates an empty curve sample.
	ErrNoPoints = errors.New("metric: curves must be non-empty")

	// ErrDimensionMismatch indicates curves or grids of different lengths
	// where equal lengths are required.
	ErrDimensionMismatch = errors.New("metric: curve and grid lengths differ")

	// ErrBadOrder indicates an Lp order below 1.
	ErrBadOrder = errors.New("metric: Lp order must be >= 1")

	// ErrPathNeedsFull indicates ReturnPath combined with two-row storage.
	ErrPathNeedsFull = errors.New("metric: ReturnPath requires MemoryFull")
)
