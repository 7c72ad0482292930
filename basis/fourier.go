// Package basis: the Fourier family over a period T with angular frequency
// ω = 2π/T:
//
//	φ_0(t) = 1/√T
//	φ_{2h-1}(t) = sin(hωt)·√(2/T)
//	φ_{2h}(t)   = cos(hωt)·√(2/T)
//
// The size must be odd so every sine keeps its cosine partner; that keeps
// the family closed under differentiation. When the period equals the
// domain length the system is orthonormal and the Gram matrix is the
// identity.

package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Fourier is the trigonometric basis. The zero period in NewFourier means
// "use the domain length", which is the usual, orthonormal configuration.
type Fourier struct {
	domain Domain
	nBasis int
	period float64
	cache  gramCache
}

// NewFourier constructs a Fourier basis of nBasis functions over d. period
// <= 0 defaults to the domain length. nBasis must be odd (constant plus
// whole sin/cos harmonic pairs); ErrBadNBasis otherwise.
func NewFourier(d Domain, nBasis int, period float64) (*Fourier, error) {
	if !d.Valid() {
		return nil, ErrBadDomain
	}
	if nBasis < 1 || nBasis%2 == 0 {
		return nil, ErrBadNBasis
	}
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		period = d.Length()
	}
	return &Fourier{domain: d, nBasis: nBasis, period: period}, nil
}

// Domain returns the basis interval.
func (f *Fourier) Domain() Domain { return f.domain }

// NBasis returns the number of basis functions.
func (f *Fourier) NBasis() int { return f.nBasis }

// Periodic reports true.
func (f *Fourier) Periodic() bool { return true }

// Period returns the declared period.
func (f *Fourier) Period() float64 { return f.period }

// Rescale returns a Fourier basis of the same size and period on a new
// domain. The period is kept: a pure time translation does not change it.
func (f *Fourier) Rescale(d Domain) (Basis, error) { return NewFourier(d, f.nBasis, f.period) }

// Equal reports structural equality.
func (f *Fourier) Equal(other Basis) bool {
	o, ok := other.(*Fourier)
	return ok && sameFamilyEqual(f, o)
}

// Gram returns the identity when the period spans the domain exactly
// (orthonormal system); otherwise it falls back to numeric integration.
func (f *Fourier) Gram() *mat.SymDense {
	return f.cache.load(func() *mat.SymDense {
		if f.period == f.domain.Length() {
			g := mat.NewSymDense(f.nBasis, nil)
			for i := 0; i < f.nBasis; i++ {
				g.SetSym(i, i, 1)
			}
			return g
		}
		return numericGram(f)
	})
}

func (f *Fourier) evaluate(points []float64, derivative int) *mat.Dense {
	omega := 2 * math.Pi / f.period
	normConst := 1 / math.Sqrt(f.period)
	normPair := math.Sqrt(2 / f.period)
	phase := float64(derivative) * math.Pi / 2 // shift: d/dt sin(x) = sin(x+π/2)

	v := mat.NewDense(f.nBasis, len(points), nil)
	if derivative == 0 {
		for j := range points {
			v.Set(0, j, normConst)
		}
	}
	for h := 1; 2*h-1 < f.nBasis; h++ {
		w := float64(h) * omega
		amp := math.Pow(w, float64(derivative))
		for j, t := range points {
			v.Set(2*h-1, j, normPair*amp*math.Sin(w*t+phase))
			v.Set(2*h, j, normPair*amp*math.Cos(w*t+phase))
		}
	}
	return v
}

func (f *Fourier) derive(coefs *mat.Dense, order int) (Basis, *mat.Dense) {
	r, _ := coefs.Dims()
	omega := 2 * math.Pi / f.period
	nc := mat.DenseCopyOf(coefs)
	for o := 0; o < order; o++ {
		for i := 0; i < r; i++ {
			nc.Set(i, 0, 0)
			for h := 1; 2*h-1 < f.nBasis; h++ {
				w := float64(h) * omega
				a, b := nc.At(i, 2*h-1), nc.At(i, 2*h)
				// d/dt [a·sin(wt) + b·cos(wt)] = -wb·sin(wt) + wa·cos(wt)
				nc.Set(i, 2*h-1, -w*b)
				nc.Set(i, 2*h, w*a)
			}
		}
	}
	nb, _ := NewFourier(f.domain, f.nBasis, f.period)
	return nb, nc
}

func (f *Fourier) productBasis(other Basis) (Basis, bool) {
	o, ok := other.(*Fourier)
	if !ok || o.period != f.period {
		return nil, false
	}
	// harmonics add: K1 + K2 harmonics need 2(K1+K2)+1 = n1+n2-1 functions
	p, err := NewFourier(f.domain, f.nBasis+o.nBasis-1, f.period)
	if err != nil {
		return nil, false
	}
	return p, true
}

func (f *Fourier) addConstant(coefs *mat.Dense, c []float64) bool {
	// φ_0 = 1/√T, so a constant c contributes c·√T to slot 0.
	scale := math.Sqrt(f.period)
	for i := range c {
		coefs.Set(i, 0, coefs.At(i, 0)+c[i]*scale)
	}
	return true
}
