// Package basis: time translation of basis-expanded curves. A shifted
// curve x(t+δ) rarely stays inside the original basis, so shifting
// discretizes each curve on a fine mesh, evaluates it at its own shifted
// grid and re-projects onto a domain-rescaled basis.

package basis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ShiftOptions configures Shift and ShiftConst.
//
//   - RestrictDomain — shrink the usable domain to the window every
//     shifted curve can cover without extrapolation:
//     [a - min(0, min δ), b - max(0, max δ)].
//   - EvalPoints — discretization grid; nil means an evenly spaced mesh of
//     max(10·nBasis+1, 201) points over the domain.
//   - Method — least-squares solver for the re-projection (default
//     Cholesky).
//
// A nil *ShiftOptions means all defaults.
type ShiftOptions struct {
	RestrictDomain bool
	EvalPoints     []float64
	Method         SolveMethod
}

// shiftMesh returns the discretization grid for shift-like operations.
func (fd *FDataBasis) shiftMesh(opts *ShiftOptions) []float64 {
	if opts != nil && opts.EvalPoints != nil {
		mesh := make([]float64, len(opts.EvalPoints))
		copy(mesh, opts.EvalPoints)
		return mesh
	}
	n := max(BasisMinFactor*fd.NBasis()+1, NPointsCoarseMesh)
	mesh := make([]float64, n)
	floats.Span(mesh, fd.Domain().A, fd.Domain().B)
	return mesh
}

// ShiftConst translates every sample by the same delta. The whole domain
// moves with the curves, so the result lives on [a+delta, b+delta] and no
// extrapolation is involved.
func (fd *FDataBasis) ShiftConst(delta float64, opts *ShiftOptions) (*FDataBasis, error) {
	var method SolveMethod
	if opts != nil {
		method = opts.Method
	}
	mesh := fd.shiftMesh(opts)
	values, err := fd.Evaluate(mesh, 0)
	if err != nil {
		return nil, err
	}
	d := fd.Domain()
	rb, err := fd.basis.Rescale(Domain{A: d.A + delta, B: d.B + delta})
	if err != nil {
		return nil, err
	}
	shifted := make([]float64, len(mesh))
	copy(shifted, mesh)
	floats.AddConst(delta, shifted)
	return FromData(values, shifted, rb, method)
}

// Shift translates sample i by shifts[i] and re-projects onto a
// domain-rescaled copy of the basis. len(shifts) must equal the sample
// count (ErrDimensionMismatch).
//
// With RestrictDomain the mesh and domain shrink to the common validity
// window so no curve is evaluated beyond its original support; an
// over-restricted window (no mesh points left, or an empty interval) fails
// with ErrBadDomain. Without it, curves are evaluated past the domain ends
// under the family's natural extension.
func (fd *FDataBasis) Shift(shifts []float64, opts *ShiftOptions) (*FDataBasis, error) {
	if len(shifts) != fd.NSamples() {
		return nil, fmt.Errorf("%d shifts for %d samples: %w",
			len(shifts), fd.NSamples(), ErrDimensionMismatch)
	}
	var method SolveMethod
	restrict := false
	if opts != nil {
		method = opts.Method
		restrict = opts.RestrictDomain
	}
	mesh := fd.shiftMesh(opts)
	domain := fd.Domain()

	if restrict {
		a := domain.A - min(floats.Min(shifts), 0)
		b := domain.B - max(floats.Max(shifts), 0)
		domain = Domain{A: a, B: b}
		if !domain.Valid() {
			return nil, fmt.Errorf("restricted window [%g, %g] is empty: %w", a, b, ErrBadDomain)
		}
		kept := mesh[:0]
		for _, t := range mesh {
			if t >= a && t <= b {
				kept = append(kept, t)
			}
		}
		mesh = kept
		if len(mesh) < fd.NBasis() {
			return nil, fmt.Errorf("restricted window keeps %d mesh points: %w",
				len(mesh), ErrBadDomain)
		}
	}

	points := mat.NewDense(fd.NSamples(), len(mesh), nil)
	for i := 0; i < fd.NSamples(); i++ {
		row := points.RawRowView(i)
		copy(row, mesh)
		floats.AddConst(shifts[i], row)
	}
	values, err := fd.EvaluateShifted(points, 0)
	if err != nil {
		return nil, err
	}
	rb, err := fd.basis.Rescale(domain)
	if err != nil {
		return nil, err
	}
	return FromData(values, mesh, rb, method)
}
