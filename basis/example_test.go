package basis_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/basis"
)

// ExampleFromData shows the raw-data → functional-object flow: noiseless
// samples of x(t) = 1 + 2t are projected onto a 2-function power basis and
// the coefficients come back exactly.
func ExampleFromData() {
	b, _ := basis.NewMonomial(basis.Domain{A: 0, B: 1}, 2)

	points := []float64{0, 0.25, 0.5, 0.75, 1}
	values := make([]float64, len(points))
	for i, t := range points {
		values[i] = 1 + 2*t
	}

	fd, _ := basis.FromData(mat.NewDense(1, len(values), values), points, b, basis.Cholesky)
	c := fd.Coefficients()
	fmt.Printf("intercept=%.2f slope=%.2f\n", c.At(0, 0), c.At(0, 1))
	// Output:
	// intercept=1.00 slope=2.00
}

// ExampleFDataBasis_Mean averages two linear curves in coefficient space.
func ExampleFDataBasis_Mean() {
	b, _ := basis.NewMonomial(basis.Domain{A: 0, B: 1}, 2)

	flat, _ := basis.NewRow(b, []float64{1, 0})  // x(t) = 1
	steep, _ := basis.NewRow(b, []float64{0, 2}) // x(t) = 2t
	both, _ := flat.Concat(steep)

	mu, _ := both.Mean(nil)
	v, _ := mu.Evaluate([]float64{0, 0.5, 1}, 0)
	fmt.Printf("mean at 0, 1/2, 1: %.2f %.2f %.2f\n", v.At(0, 0), v.At(0, 1), v.At(0, 2))
	// Output:
	// mean at 0, 1/2, 1: 0.50 1.00 1.50
}
