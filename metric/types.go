// Package metric: elastic-distance options.

package metric

// MemoryMode controls how the elastic-distance dynamic program stores its
// cost matrix.
//
//   - MemoryFull    — keep the whole (n+1)×(m+1) matrix. Supports path
//     recovery. Space: O(n·m).
//   - MemoryTwoRows — keep only the current and previous row. Space:
//     O(m), no path recovery.
type MemoryMode int

const (
	MemoryFull MemoryMode = iota
	MemoryTwoRows
)

// WarpStep is one matched index pair (I into the first curve, J into the
// second) on an optimal warping path.
type WarpStep struct {
	I, J int
}

// WarpOptions configures ElasticDistance.
//
// Fields:
//   - Window       — Sakoe–Chiba band half-width: matches with |i−j|
//     beyond it are forbidden. Zero or negative means unconstrained.
//   - SlopePenalty — extra cost on insertion/deletion steps, biasing the
//     path toward the diagonal.
//   - ReturnPath   — recover the optimal path (needs MemoryFull).
//   - MemoryMode   — see MemoryMode.
type WarpOptions struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultWarpOptions returns an unconstrained, distance-only setup.
func DefaultWarpOptions() WarpOptions {
	return WarpOptions{MemoryMode: MemoryTwoRows}
}
