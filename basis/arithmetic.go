// Package basis: arithmetic over FDataBasis objects. Each operator is one
// function consuming a tagged operand — scalar, per-sample vector, or
// functional object — instead of dynamic dispatch on the operand's type.

package basis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type operandKind int

const (
	operandScalar operandKind = iota
	operandPerSample
	operandFunctional
)

// Operand is the right-hand side of an arithmetic operation: a single
// number applied to every sample, one number per sample, or another
// functional object. Build one with Scalar, PerSample or Functional.
type Operand struct {
	kind   operandKind
	scalar float64
	vec    []float64
	fd     *FDataBasis
}

// Scalar wraps a constant applied uniformly to all samples.
func Scalar(c float64) Operand { return Operand{kind: operandScalar, scalar: c} }

// PerSample wraps one value per sample.
func PerSample(v []float64) Operand { return Operand{kind: operandPerSample, vec: v} }

// Functional wraps another FDataBasis.
func Functional(fd *FDataBasis) Operand { return Operand{kind: operandFunctional, fd: fd} }

// perSample expands the operand into one value per sample for the
// scalar-like kinds.
func (op Operand) perSample(n int) ([]float64, error) {
	switch op.kind {
	case operandScalar:
		v := make([]float64, n)
		for i := range v {
			v[i] = op.scalar
		}
		return v, nil
	case operandPerSample:
		if len(op.vec) != n {
			return nil, ErrDimensionMismatch
		}
		v := make([]float64, n)
		copy(v, op.vec)
		return v, nil
	default:
		return nil, ErrUnsupported
	}
}

// Add returns fd + op. A functional operand must share the exact basis
// (coefficient-wise addition, ErrBasisMismatch otherwise) and have either
// the same sample count or exactly one sample on one side (broadcast). A
// constant operand folds into the basis's constant coefficient slot when
// the family has a closed form, and falls back to discretize-and-reproject
// otherwise.
func (fd *FDataBasis) Add(op Operand) (*FDataBasis, error) {
	if op.kind == operandFunctional {
		return fd.addFunctional(op.fd, 1)
	}
	return fd.addConstOperand(op, 1)
}

// Sub returns fd - op, with the same operand rules as Add.
func (fd *FDataBasis) Sub(op Operand) (*FDataBasis, error) {
	if op.kind == operandFunctional {
		return fd.addFunctional(op.fd, -1)
	}
	return fd.addConstOperand(op, -1)
}

// SubFrom returns op - fd, i.e. (-1·fd) + op.
func (fd *FDataBasis) SubFrom(op Operand) (*FDataBasis, error) {
	neg, err := fd.Mul(Scalar(-1))
	if err != nil {
		return nil, err
	}
	return neg.Add(op)
}

// Mul returns fd scaled by a constant or per-sample operand. Pointwise
// products with another functional object are a different operation — see
// Times — so a functional operand fails with ErrUnsupported.
func (fd *FDataBasis) Mul(op Operand) (*FDataBasis, error) {
	v, err := op.perSample(fd.NSamples())
	if err != nil {
		return nil, err
	}
	out := mat.DenseCopyOf(fd.coefs)
	for i, s := range v {
		floats.Scale(s, out.RawRowView(i))
	}
	return fd.withCoefs(out), nil
}

// Div returns fd divided by a constant or per-sample operand. Division by
// a functional object is not defined (ErrUnsupported).
func (fd *FDataBasis) Div(op Operand) (*FDataBasis, error) {
	v, err := op.perSample(fd.NSamples())
	if err != nil {
		return nil, err
	}
	for i := range v {
		v[i] = 1 / v[i]
	}
	return fd.Mul(PerSample(v))
}

func (fd *FDataBasis) addFunctional(other *FDataBasis, sign float64) (*FDataBasis, error) {
	if !fd.basis.Equal(other.basis) {
		return nil, ErrBasisMismatch
	}
	a, b, err := broadcast(fd, other)
	if err != nil {
		return nil, err
	}
	out := mat.DenseCopyOf(a.coefs)
	var scaled mat.Dense
	scaled.Scale(sign, b.coefs)
	out.Add(out, &scaled)
	return fd.withCoefs(out), nil
}

func (fd *FDataBasis) addConstOperand(op Operand, sign float64) (*FDataBasis, error) {
	v, err := op.perSample(fd.NSamples())
	if err != nil {
		return nil, err
	}
	floats.Scale(sign, v)
	out := mat.DenseCopyOf(fd.coefs)
	if fd.basis.addConstant(out, v) {
		return fd.withCoefs(out), nil
	}
	// no constant slot: discretize, add, re-project
	mesh := fd.shiftMesh(nil)
	values, err := fd.Evaluate(mesh, 0)
	if err != nil {
		return nil, err
	}
	for i, c := range v {
		floats.AddConst(c, values.RawRowView(i))
	}
	return FromData(values, mesh, fd.basis, Cholesky)
}

// broadcast aligns sample counts, repeating a single-sample operand
// against a many-sample one. Counts must otherwise match.
func broadcast(a, b *FDataBasis) (*FDataBasis, *FDataBasis, error) {
	na, nb := a.NSamples(), b.NSamples()
	switch {
	case na == nb:
		return a, b, nil
	case na == 1:
		return a.repeatRows(nb), b, nil
	case nb == 1:
		return a, b.repeatRows(na), nil
	default:
		return nil, nil, ErrDimensionMismatch
	}
}

func (fd *FDataBasis) repeatRows(n int) *FDataBasis {
	out := mat.NewDense(n, fd.NBasis(), nil)
	for i := 0; i < n; i++ {
		out.SetRow(i, fd.coefs.RawRowView(0))
	}
	return fd.withCoefs(out)
}

// Times returns the pointwise product fd·other. Both operands must share a
// domain (ErrDomainMismatch); single-sample operands broadcast against the
// other side. The product rarely stays inside either basis, so both
// operands are discretized on a shared fine grid
// (max(8·max(nBasis)+1, 201) points), multiplied pointwise and
// re-projected onto ProductBasis(fd, other).
func (fd *FDataBasis) Times(other *FDataBasis) (*FDataBasis, error) {
	if fd.Domain() != other.Domain() {
		return nil, ErrDomainMismatch
	}
	product, err := ProductBasis(fd.basis, other.basis)
	if err != nil {
		return nil, err
	}
	a, b, err := broadcast(fd, other)
	if err != nil {
		return nil, err
	}

	n := max(ProductMeshFactor*max(fd.NBasis(), other.NBasis())+1, NPointsCoarseMesh)
	mesh := make([]float64, n)
	floats.Span(mesh, fd.Domain().A, fd.Domain().B)

	va, err := a.Evaluate(mesh, 0)
	if err != nil {
		return nil, err
	}
	vb, err := b.Evaluate(mesh, 0)
	if err != nil {
		return nil, err
	}
	va.MulElem(va, vb)
	return FromData(va, mesh, product, Cholesky)
}
