// Package basis: inner products between FDataBasis collections.

package basis

import "gonum.org/v1/gonum/mat"

// InnerProduct returns the matrix of pairwise inner products
//
//	out[i][j] = ∫ x_i(t)·y_j(t) dt
//
// over the shared domain (ErrDomainMismatch otherwise). weight, when not
// nil, is a single-sample weight function multiplied into the second
// operand first (ErrDimensionMismatch if it has more than one sample).
//
// Two computation paths exist and the cheaper one is picked by the cost
// crossover
//
//	nSamples(fd)·nSamples(other) > nBasis(fd)·nBasis(other)
//
// When the inequality holds, the basis-pair inner-product matrix is built
// once and amortized over every sample pair (C_fd · M · C_otherᵀ);
// otherwise each pair is integrated directly by quadrature, which is
// cheaper when samples are few but the shared matrix would be large. The
// inequality is empirical and deliberately kept in exactly this
// orientation.
func (fd *FDataBasis) InnerProduct(other *FDataBasis, weight *FDataBasis) (*mat.Dense, error) {
	if fd.Domain() != other.Domain() {
		return nil, ErrDomainMismatch
	}
	if weight != nil {
		if weight.NSamples() != 1 {
			return nil, ErrDimensionMismatch
		}
		weighted, err := other.Times(weight)
		if err != nil {
			return nil, err
		}
		other = weighted
	}
	if fd.NSamples()*other.NSamples() > fd.NBasis()*other.NBasis() {
		return fd.innerViaMatrix(other)
	}
	return fd.innerIntegrate(other)
}

// innerViaMatrix is the amortized path: C_fd · InnerMatrix · C_otherᵀ.
func (fd *FDataBasis) innerViaMatrix(other *FDataBasis) (*mat.Dense, error) {
	im, err := InnerMatrix(fd.basis, other.basis)
	if err != nil {
		return nil, err
	}
	var tmp, out mat.Dense
	tmp.Mul(fd.coefs, im)
	out.Mul(&tmp, other.coefs.T())
	return &out, nil
}

// innerIntegrate is the direct path: quadrature of every sample pair's
// pointwise product.
func (fd *FDataBasis) innerIntegrate(other *FDataBasis) (*mat.Dense, error) {
	xs, ws := legendreNodes(fd.Domain(), quadMeshSize(fd.NBasis(), other.NBasis()))
	vx, err := fd.Evaluate(xs, 0)
	if err != nil {
		return nil, err
	}
	vy, err := other.Evaluate(xs, 0)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(fd.NSamples(), other.NSamples(), nil)
	for i := 0; i < fd.NSamples(); i++ {
		for j := 0; j < other.NSamples(); j++ {
			var s float64
			for k := range xs {
				s += ws[k] * vx.At(i, k) * vy.At(j, k)
			}
			out.Set(i, j, s)
		}
	}
	return out, nil
}
