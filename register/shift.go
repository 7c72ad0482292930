// Package register: Newton–Raphson shift alignment.
//
// Criterion: REGSSE = Σ_i ∫ [x_i(t+δ_i) − μ̂(t)]² dt, where μ̂ is the mean
// of the currently shifted curves. Each round updates
//
//	δ_i ← δ_i − α · d1_i / d2_i
//
// with d1_i = ∫ [x_i(t+δ_i) − μ̂(t)]·x_i′(t) dt and d2_i = ∫ x_i′(t)² dt.
// d2 keeps only the diagonal term of the criterion's second derivative;
// the cross term is dropped deliberately (see package doc).

package register

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/basis"
)

// workspace pre-allocates every buffer the iteration writes into, sized
// for the full mesh; windowed rounds reslice instead of reallocating.
type workspace struct {
	delta  []float64  // current shift per sample
	update []float64  // last Newton–Raphson step per sample
	d2     []float64  // ∫ x_i′² denominator per sample
	mu     []float64  // cross-sample mean on the working mesh
	sq     []float64  // squared-derivative scratch row
	meshW  []float64  // working mesh (view into a full-size buffer)
	d1W    *mat.Dense // derivative values restricted to the window
	points *mat.Dense // per-sample shifted mesh rows
}

func newWorkspace(n, m int) *workspace {
	return &workspace{
		delta:  make([]float64, n),
		update: make([]float64, n),
		d2:     make([]float64, n),
		mu:     make([]float64, m),
		sq:     make([]float64, m),
		meshW:  make([]float64, 0, m),
		d1W:    mat.NewDense(n, m, nil),
		points: mat.NewDense(n, m, nil),
	}
}

// ShiftRegisterShifts estimates the per-curve shifts without building the
// registered curves; see ShiftRegister.
func ShiftRegisterShifts(fd *basis.FDataBasis, opts *Options) ([]float64, error) {
	delta, _, err := shiftRegister(fd, opts)
	return delta, err
}

// ShiftRegister aligns the curves of fd by shift registration and returns
// them re-projected onto a domain-rescaled copy of the basis. The shifts
// are estimated on an evenly spaced mesh (Options.Mesh to override),
// starting from Options.Initial (zeros by default), for at most
// Options.MaxIter Newton–Raphson rounds.
//
// Fails with ErrDimensionMismatch when Options.Initial has the wrong
// length, ErrBadExtension for an unknown extension policy, and
// ErrEmptyWindow when shifts wider than the domain (initial or produced
// by the iteration) leave the non-periodic working window without mesh
// points. Reaching MaxIter without convergence is not an error.
func ShiftRegister(fd *basis.FDataBasis, opts *Options) (*basis.FDataBasis, error) {
	delta, mesh, err := shiftRegister(fd, opts)
	if err != nil {
		return nil, err
	}
	var method basis.SolveMethod
	if opts != nil {
		method = opts.Method
	}
	return fd.Shift(delta, &basis.ShiftOptions{EvalPoints: mesh, Method: method})
}

// shiftRegister runs the iteration and returns the estimated shifts along
// with the final working mesh.
func shiftRegister(fd *basis.FDataBasis, opts *Options) ([]float64, []float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	n := fd.NSamples()
	if err := o.validate(n); err != nil {
		return nil, nil, err
	}
	periodic, period, err := o.Extension.resolve(fd.Basis())
	if err != nil {
		return nil, nil, err
	}

	domain := fd.Domain()
	mesh := o.Mesh
	if mesh == nil {
		mesh = make([]float64, max(basis.BasisMinFactor*fd.NBasis()+1, basis.NPointsCoarseMesh))
		floats.Span(mesh, domain.A, domain.B)
	}

	// first derivatives on the full mesh; the denominator is re-derived
	// from these fixed values when the window shrinks, never re-evaluated
	d1Full, err := fd.Evaluate(mesh, 1)
	if err != nil {
		return nil, nil, err
	}

	ws := newWorkspace(n, len(mesh))
	if o.Initial != nil {
		copy(ws.delta, o.Initial)
	}

	meshW, d1W := mesh, d1Full
	for iter := 0; iter < o.MaxIter; iter++ {
		if !periodic {
			meshW, d1W = ws.restrict(mesh, d1Full, domain)
			if len(meshW) < 2 {
				return nil, nil, fmt.Errorf("shifts in [%g, %g] on domain [%g, %g]: %w",
					floats.Min(ws.delta), floats.Max(ws.delta), domain.A, domain.B, ErrEmptyWindow)
			}
		}
		for i := 0; i < n; i++ {
			row := d1W.RawRowView(i)
			sq := ws.sq[:len(meshW)]
			for j, v := range row {
				sq[j] = v * v
			}
			ws.d2[i] = integrate.Trapezoidal(meshW, sq)
		}

		// every curve on its own shifted grid, wrapped when periodic
		pts := ws.points.Slice(0, n, 0, len(meshW)).(*mat.Dense)
		for i := 0; i < n; i++ {
			row := pts.RawRowView(i)
			for j, t := range meshW {
				s := t + ws.delta[i]
				if periodic {
					s = wrap(s, domain.A, period)
				}
				row[j] = s
			}
		}
		x, err := fd.EvaluateShifted(pts, 0)
		if err != nil {
			return nil, nil, err
		}

		mu := ws.mu[:len(meshW)]
		for j := range mu {
			var s float64
			for i := 0; i < n; i++ {
				s += x.At(i, j)
			}
			mu[j] = s / float64(n)
		}

		// d1_i = ∫ (x_i − μ̂)·x_i′ and the Newton–Raphson step
		maxDiff := 0.0
		for i := 0; i < n; i++ {
			xr := x.RawRowView(i)
			dr := d1W.RawRowView(i)
			for j := range xr {
				xr[j] = (xr[j] - mu[j]) * dr[j]
			}
			d1 := integrate.Trapezoidal(meshW, xr)
			ws.update[i] = o.Alpha * d1 / ws.d2[i]
			ws.delta[i] -= ws.update[i]
			maxDiff = math.Max(maxDiff, math.Abs(ws.update[i]))
		}
		if maxDiff < o.Tol {
			break
		}
	}

	finalMesh := make([]float64, len(meshW))
	copy(finalMesh, meshW)
	delta := make([]float64, n)
	copy(delta, ws.delta)
	return delta, finalMesh, nil
}

// restrict shrinks the working mesh to the sub-interval still valid for
// every curve under the current shifts,
// [a − min(0, min δ), b − max(0, max δ)], and restricts the fixed
// derivative values to it.
func (ws *workspace) restrict(mesh []float64, d1Full *mat.Dense, d basis.Domain) ([]float64, *mat.Dense) {
	lo := d.A - min(floats.Min(ws.delta), 0)
	hi := d.B - max(floats.Max(ws.delta), 0)

	n, _ := d1Full.Dims()
	meshW := ws.meshW[:0]
	kept := 0
	for j, t := range mesh {
		if t < lo || t > hi {
			continue
		}
		meshW = append(meshW, t)
		for i := 0; i < n; i++ {
			ws.d1W.Set(i, kept, d1Full.At(i, j))
		}
		kept++
	}
	ws.meshW = meshW
	return meshW, ws.d1W.Slice(0, n, 0, kept).(*mat.Dense)
}

// wrap maps t into [a, a+period) by periodic extension.
func wrap(t, a, period float64) float64 {
	w := math.Mod(t-a, period)
	if w < 0 {
		w += period
	}
	return a + w
}
