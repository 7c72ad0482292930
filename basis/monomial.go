// Package basis: the monomial (power) family 1, t, t², …, t^{K-1}.

package basis

import "gonum.org/v1/gonum/mat"

// Monomial is the power basis φ_k(t) = t^k, k = 0..K-1. It is closed under
// differentiation and under pointwise products, and its Gram matrix has a
// closed form.
type Monomial struct {
	domain Domain
	nBasis int
	cache  gramCache
}

// NewMonomial constructs a monomial basis of nBasis functions over d.
func NewMonomial(d Domain, nBasis int) (*Monomial, error) {
	if !d.Valid() {
		return nil, ErrBadDomain
	}
	if nBasis < 1 {
		return nil, ErrBadNBasis
	}
	return &Monomial{domain: d, nBasis: nBasis}, nil
}

// Domain returns the basis interval.
func (m *Monomial) Domain() Domain { return m.domain }

// NBasis returns the number of basis functions.
func (m *Monomial) NBasis() int { return m.nBasis }

// Periodic reports false: powers are not periodic.
func (m *Monomial) Periodic() bool { return false }

// Period returns the domain length.
func (m *Monomial) Period() float64 { return m.domain.Length() }

// Rescale returns a monomial basis of the same size on a new domain.
func (m *Monomial) Rescale(d Domain) (Basis, error) { return NewMonomial(d, m.nBasis) }

// Equal reports structural equality.
func (m *Monomial) Equal(other Basis) bool {
	o, ok := other.(*Monomial)
	return ok && sameFamilyEqual(m, o)
}

// Gram returns the closed-form Gram matrix
// G_ij = (B^{i+j+1} - A^{i+j+1}) / (i+j+1).
func (m *Monomial) Gram() *mat.SymDense {
	return m.cache.load(func() *mat.SymDense {
		g := mat.NewSymDense(m.nBasis, nil)
		pows := make([]float64, 2*m.nBasis) // pows[p-1] = (B^p - A^p)/p
		a, b := 1.0, 1.0
		for p := 1; p <= 2*m.nBasis-1; p++ {
			a *= m.domain.A
			b *= m.domain.B
			pows[p-1] = (b - a) / float64(p)
		}
		for i := 0; i < m.nBasis; i++ {
			for j := i; j < m.nBasis; j++ {
				g.SetSym(i, j, pows[i+j])
			}
		}
		return g
	})
}

func (m *Monomial) evaluate(points []float64, derivative int) *mat.Dense {
	v := mat.NewDense(m.nBasis, len(points), nil)
	for k := 0; k < m.nBasis; k++ {
		if k < derivative {
			continue // derivative annihilates t^k
		}
		// factor = k·(k-1)···(k-derivative+1)
		factor := 1.0
		for f := k; f > k-derivative; f-- {
			factor *= float64(f)
		}
		for j, t := range points {
			p := 1.0
			for e := 0; e < k-derivative; e++ {
				p *= t
			}
			v.Set(k, j, factor*p)
		}
	}
	return v
}

func (m *Monomial) derive(coefs *mat.Dense, order int) (Basis, *mat.Dense) {
	r, _ := coefs.Dims()
	newN := max(m.nBasis-order, 1)
	nc := mat.NewDense(r, newN, nil)
	if m.nBasis-order >= 1 {
		for i := 0; i < r; i++ {
			for k := 0; k < newN; k++ {
				// d^order/dt^order of t^{k+order} is (k+order)!/k! · t^k
				factor := 1.0
				for f := k + order; f > k; f-- {
					factor *= float64(f)
				}
				nc.Set(i, k, coefs.At(i, k+order)*factor)
			}
		}
	}
	nb, _ := NewMonomial(m.domain, newN)
	return nb, nc
}

func (m *Monomial) productBasis(other Basis) (Basis, bool) {
	o, ok := other.(*Monomial)
	if !ok {
		return nil, false
	}
	// product of degrees (n-1) and (k-1) has degree n+k-2
	p, err := NewMonomial(m.domain, m.nBasis+o.nBasis-1)
	if err != nil {
		return nil, false
	}
	return p, true
}

func (m *Monomial) addConstant(coefs *mat.Dense, c []float64) bool {
	for i := range c {
		coefs.Set(i, 0, coefs.At(i, 0)+c[i])
	}
	return true
}
