// Package basis: the one-function constant family φ(t) = 1.

package basis

import "gonum.org/v1/gonum/mat"

// Constant is the single-function basis φ(t) = 1, used to represent plain
// numbers as functional data (regression intercepts, all-ones weight
// functions).
type Constant struct {
	domain Domain
	cache  gramCache
}

// NewConstant constructs the constant basis over d.
func NewConstant(d Domain) (*Constant, error) {
	if !d.Valid() {
		return nil, ErrBadDomain
	}
	return &Constant{domain: d}, nil
}

// Domain returns the basis interval.
func (c *Constant) Domain() Domain { return c.domain }

// NBasis returns 1.
func (c *Constant) NBasis() int { return 1 }

// Periodic reports false.
func (c *Constant) Periodic() bool { return false }

// Period returns the domain length.
func (c *Constant) Period() float64 { return c.domain.Length() }

// Rescale returns the constant basis on a new domain.
func (c *Constant) Rescale(d Domain) (Basis, error) { return NewConstant(d) }

// Equal reports structural equality.
func (c *Constant) Equal(other Basis) bool {
	o, ok := other.(*Constant)
	return ok && sameFamilyEqual(c, o)
}

// Gram returns the 1×1 matrix [B - A].
func (c *Constant) Gram() *mat.SymDense {
	return c.cache.load(func() *mat.SymDense {
		g := mat.NewSymDense(1, nil)
		g.SetSym(0, 0, c.domain.Length())
		return g
	})
}

func (c *Constant) evaluate(points []float64, derivative int) *mat.Dense {
	v := mat.NewDense(1, len(points), nil)
	if derivative == 0 {
		for j := range points {
			v.Set(0, j, 1)
		}
	}
	return v
}

func (c *Constant) derive(coefs *mat.Dense, order int) (Basis, *mat.Dense) {
	r, _ := coefs.Dims()
	nb, _ := NewConstant(c.domain)
	return nb, mat.NewDense(r, 1, nil)
}

func (c *Constant) productBasis(other Basis) (Basis, bool) {
	// 1·f = f: the other basis already spans the product
	return other, true
}

func (c *Constant) addConstant(coefs *mat.Dense, add []float64) bool {
	for i := range add {
		coefs.Set(i, 0, coefs.At(i, 0)+add[i])
	}
	return true
}
