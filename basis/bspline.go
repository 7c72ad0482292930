// Package basis: the B-spline family. Basis functions are evaluated with
// the Cox–de Boor recursion (The NURBS Book, alg. 2.2) on a clamped knot
// vector; derivatives drop to a spline of one order less through the
// standard coefficient-difference formula.

package basis

import "gonum.org/v1/gonum/mat"

// BSpline is a spline basis of a given order (degree+1) over a clamped
// knot sequence that spans the domain. Outside the domain every basis
// function evaluates to zero.
type BSpline struct {
	domain Domain
	nBasis int
	order  int
	knots  []float64 // endpoint-inclusive, len = nBasis - order + 2
	ext    []float64 // clamped vector, len = nBasis + order
	cache  gramCache
}

// NewBSpline constructs a B-spline basis with uniformly spaced knots.
// order is the spline order (4 for cubic); nBasis must be at least order.
func NewBSpline(d Domain, nBasis, order int) (*BSpline, error) {
	if !d.Valid() {
		return nil, ErrBadDomain
	}
	if order < 1 || nBasis < order {
		return nil, ErrBadNBasis
	}
	knots := make([]float64, nBasis-order+2)
	step := d.Length() / float64(len(knots)-1)
	for i := range knots {
		knots[i] = d.A + float64(i)*step
	}
	knots[len(knots)-1] = d.B
	return newBSplineChecked(d, knots, order)
}

// NewBSplineKnots constructs a B-spline basis over an explicit knot
// sequence, endpoints included. The domain is the interval the knots span,
// and the basis has len(knots)+order-2 functions.
func NewBSplineKnots(knots []float64, order int) (*BSpline, error) {
	if order < 1 {
		return nil, ErrBadNBasis
	}
	if len(knots) < 2 {
		return nil, ErrBadKnots
	}
	d := Domain{A: knots[0], B: knots[len(knots)-1]}
	if !d.Valid() {
		return nil, ErrBadDomain
	}
	ks := make([]float64, len(knots))
	copy(ks, knots)
	return newBSplineChecked(d, ks, order)
}

// newBSplineChecked validates the knot sequence and builds the clamped
// extended vector. Takes ownership of knots.
func newBSplineChecked(d Domain, knots []float64, order int) (*BSpline, error) {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil, ErrBadKnots
		}
	}
	if knots[0] != d.A || knots[len(knots)-1] != d.B {
		return nil, ErrBadKnots
	}
	nBasis := len(knots) + order - 2

	ext := make([]float64, 0, nBasis+order)
	for i := 0; i < order-1; i++ {
		ext = append(ext, d.A)
	}
	ext = append(ext, knots...)
	for i := 0; i < order-1; i++ {
		ext = append(ext, d.B)
	}
	return &BSpline{domain: d, nBasis: nBasis, order: order, knots: knots, ext: ext}, nil
}

// Domain returns the basis interval.
func (b *BSpline) Domain() Domain { return b.domain }

// NBasis returns the number of basis functions.
func (b *BSpline) NBasis() int { return b.nBasis }

// Order returns the spline order (degree + 1).
func (b *BSpline) Order() int { return b.order }

// Knots returns a copy of the endpoint-inclusive knot sequence.
func (b *BSpline) Knots() []float64 {
	ks := make([]float64, len(b.knots))
	copy(ks, b.knots)
	return ks
}

// Periodic reports false: the clamped spline basis is not periodic.
func (b *BSpline) Periodic() bool { return false }

// Period returns the domain length.
func (b *BSpline) Period() float64 { return b.domain.Length() }

// Rescale returns a basis of the same size and order with the knot
// sequence mapped affinely onto the new domain.
func (b *BSpline) Rescale(d Domain) (Basis, error) {
	if !d.Valid() {
		return nil, ErrBadDomain
	}
	scale := d.Length() / b.domain.Length()
	knots := make([]float64, len(b.knots))
	for i, k := range b.knots {
		knots[i] = d.A + (k-b.domain.A)*scale
	}
	knots[len(knots)-1] = d.B
	return newBSplineChecked(d, knots, b.order)
}

// Equal reports structural equality.
func (b *BSpline) Equal(other Basis) bool {
	o, ok := other.(*BSpline)
	return ok && sameFamilyEqual(b, o)
}

// Gram falls back to numeric pairwise integration; the spline family has
// no convenient closed form over arbitrary knot sequences.
func (b *BSpline) Gram() *mat.SymDense {
	return b.cache.load(func() *mat.SymDense { return numericGram(b) })
}

// span returns the knot-span index i with ext[i] <= t < ext[i+1], clamped
// to the valid range [order-1, nBasis-1]. t must lie inside the domain.
func (b *BSpline) span(t float64) int {
	i := b.order - 1
	for i < b.nBasis-1 && t >= b.ext[i+1] {
		i++
	}
	return i
}

// evaluate0 computes the undifferentiated basis functions at each point.
func (b *BSpline) evaluate0(points []float64) *mat.Dense {
	v := mat.NewDense(b.nBasis, len(points), nil)
	p := b.order - 1
	n := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	for col, t := range points {
		if t < b.domain.A || t > b.domain.B {
			continue // zero outside the clamped support
		}
		i := b.span(t)

		// Cox–de Boor: the p+1 basis functions alive on span i
		n[0] = 1
		for j := 1; j <= p; j++ {
			left[j] = t - b.ext[i+1-j]
			right[j] = b.ext[i+j] - t
			saved := 0.0
			for r := 0; r < j; r++ {
				tmp := n[r] / (right[r+1] + left[j-r])
				n[r] = saved + right[r+1]*tmp
				saved = left[j-r] * tmp
			}
			n[j] = saved
		}
		for r := 0; r <= p; r++ {
			v.Set(i-p+r, col, n[r])
		}
	}
	return v
}

func (b *BSpline) evaluate(points []float64, derivative int) *mat.Dense {
	if derivative == 0 {
		return b.evaluate0(points)
	}
	if derivative >= b.order {
		return mat.NewDense(b.nBasis, len(points), nil)
	}
	// express the derivative of each basis function in the lower-order
	// family, then evaluate there
	identity := mat.NewDense(b.nBasis, b.nBasis, nil)
	for i := 0; i < b.nBasis; i++ {
		identity.Set(i, i, 1)
	}
	db, dc := b.derive(identity, derivative)
	lower := db.(*BSpline).evaluate0(points)

	out := mat.NewDense(b.nBasis, len(points), nil)
	out.Mul(dc, lower)
	return out
}

func (b *BSpline) derive(coefs *mat.Dense, order int) (Basis, *mat.Dense) {
	cur := b
	c := mat.DenseCopyOf(coefs)
	r, _ := c.Dims()

	for o := 0; o < order; o++ {
		if cur.order == 1 {
			// piecewise constants: the derivative vanishes a.e.
			return cur, mat.NewDense(r, cur.nBasis, nil)
		}
		p := float64(cur.order - 1)
		nc := mat.NewDense(r, cur.nBasis-1, nil)
		for i := 0; i < r; i++ {
			for k := 0; k < cur.nBasis-1; k++ {
				denom := cur.ext[k+cur.order] - cur.ext[k+1]
				if denom != 0 {
					nc.Set(i, k, p*(c.At(i, k+1)-c.At(i, k))/denom)
				}
			}
		}
		next, _ := newBSplineChecked(cur.domain, cur.Knots(), cur.order-1)
		cur, c = next, nc
	}
	return cur, c
}

func (b *BSpline) productBasis(Basis) (Basis, bool) {
	// no closed form; ProductBasis falls back to the default spline policy
	return nil, false
}

func (b *BSpline) addConstant(coefs *mat.Dense, c []float64) bool {
	// clamped B-splines partition unity: Σ_k φ_k(t) = 1, so a constant adds
	// uniformly to every coefficient
	_, nc := coefs.Dims()
	for i := range c {
		for k := 0; k < nc; k++ {
			coefs.Set(i, k, coefs.At(i, k)+c[i])
		}
	}
	return true
}
