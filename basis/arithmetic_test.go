package basis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/basis"
)

// TestArithmetic_Closure pins the coefficient-space arithmetic on a
// 2-function power basis: [1,0] + [0,1] = [1,1] and [1,0]·2 = [2,0].
func TestArithmetic_Closure(t *testing.T) {
	b := mono2(t)
	c1, err := basis.NewRow(b, []float64{1, 0})
	require.NoError(t, err)
	c2, err := basis.NewRow(b, []float64{0, 1})
	require.NoError(t, err)

	sum, err := c1.Add(basis.Functional(c2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum.Coefficients().At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, sum.Coefficients().At(0, 1), 1e-12)

	twice, err := c1.Mul(basis.Scalar(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, twice.Coefficients().At(0, 0), 1e-12)
	assert.InDelta(t, 0.0, twice.Coefficients().At(0, 1), 1e-12)
}

// TestArithmetic_ConstantFoldsIntoBasis: adding a scalar lands in the
// constant coefficient slot for families that have one.
func TestArithmetic_ConstantFoldsIntoBasis(t *testing.T) {
	fd, err := basis.NewRow(mono2(t), []float64{1, 2})
	require.NoError(t, err)

	up, err := fd.Add(basis.Scalar(3))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, up.Coefficients().At(0, 0), 1e-12, "constant slot absorbs the addend")
	assert.InDelta(t, 2.0, up.Coefficients().At(0, 1), 1e-12, "slope untouched")

	down, err := fd.Sub(basis.Scalar(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, down.Coefficients().At(0, 0), 1e-12)

	flipped, err := fd.SubFrom(basis.Scalar(1))
	require.NoError(t, err)
	v, err := flipped.Evaluate([]float64{0.5}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1-(1+2*0.5), v.At(0, 0), 1e-12, "1 − x at t=0.5")
}

// TestArithmetic_ConstantAddWithoutSlot: the B-spline family has no single
// constant coefficient, yet adding a scalar must still shift the curve.
func TestArithmetic_ConstantAddWithoutSlot(t *testing.T) {
	bsp, err := basis.NewBSpline(unit, 6, 4)
	require.NoError(t, err)
	coefs := make([]float64, 6)
	for i := range coefs {
		coefs[i] = float64(i)
	}
	fd, err := basis.NewRow(bsp, coefs)
	require.NoError(t, err)

	up, err := fd.Add(basis.Scalar(2.5))
	require.NoError(t, err)
	before, err := fd.Evaluate([]float64{0.3, 0.7}, 0)
	require.NoError(t, err)
	after, err := up.Evaluate([]float64{0.3, 0.7}, 0)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		assert.InDelta(t, before.At(0, j)+2.5, after.At(0, j), 1e-8, "shifted value at column %d", j)
	}
}

// TestArithmetic_OperandGuards verifies the dimension and support errors
// of the tagged-operand surface.
func TestArithmetic_OperandGuards(t *testing.T) {
	b := mono2(t)
	fd, err := basis.New(b, mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)

	_, err = fd.Mul(basis.PerSample([]float64{2}))
	assert.ErrorIs(t, err, basis.ErrDimensionMismatch, "per-sample vector length must match")

	other, err := basis.NewRow(b, []float64{1, 1})
	require.NoError(t, err)
	_, err = fd.Mul(basis.Functional(other))
	assert.ErrorIs(t, err, basis.ErrUnsupported, "functional multiply lives in Times")
	_, err = fd.Div(basis.Functional(other))
	assert.ErrorIs(t, err, basis.ErrUnsupported, "functional division is undefined")

	tri, err := basis.NewRow(mustMonomial(t, 3), []float64{1, 1, 1})
	require.NoError(t, err)
	_, err = fd.Add(basis.Functional(tri))
	assert.ErrorIs(t, err, basis.ErrBasisMismatch, "addition needs the exact same basis")
}

// TestArithmetic_Broadcast: a single-sample operand stretches across a
// many-sample one.
func TestArithmetic_Broadcast(t *testing.T) {
	b := mono2(t)
	many, err := basis.New(b, mat.NewDense(3, 2, []float64{1, 0, 2, 0, 3, 0}))
	require.NoError(t, err)
	one, err := basis.NewRow(b, []float64{0, 1})
	require.NoError(t, err)

	sum, err := many.Add(basis.Functional(one))
	require.NoError(t, err)
	require.Equal(t, 3, sum.NSamples())
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, sum.Coefficients().At(i, 1), 1e-12, "row %d gains the slope", i)
	}
}

// TestTimes_ProjectsOntoProductBasis: (1)·(t) = t, carried by the product
// basis of the two operands.
func TestTimes_ProjectsOntoProductBasis(t *testing.T) {
	b := mono2(t)
	one, err := basis.NewRow(b, []float64{1, 0})
	require.NoError(t, err)
	ramp, err := basis.NewRow(b, []float64{0, 1})
	require.NoError(t, err)

	prod, err := one.Times(ramp)
	require.NoError(t, err)
	assert.Equal(t, 3, prod.NBasis(), "monomial product basis has n1+n2−1 functions")

	v, err := prod.Evaluate([]float64{0, 0.25, 0.5, 1}, 0)
	require.NoError(t, err)
	for j, tt := range []float64{0, 0.25, 0.5, 1} {
		assert.InDelta(t, tt, v.At(0, j), 1e-8, "product value at t=%g", tt)
	}
}

// TestTimes_DomainGuard: pointwise products require a shared domain.
func TestTimes_DomainGuard(t *testing.T) {
	a, err := basis.NewRow(mono2(t), []float64{1, 0})
	require.NoError(t, err)
	wide, err := basis.NewMonomial(basis.Domain{A: 0, B: 2}, 2)
	require.NoError(t, err)
	c, err := basis.NewRow(wide, []float64{1, 0})
	require.NoError(t, err)

	_, err = a.Times(c)
	assert.ErrorIs(t, err, basis.ErrDomainMismatch)
}
