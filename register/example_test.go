package register_test

import (
	"fmt"

	"github.com/katalvlaran/fda/basis"
	"github.com/katalvlaran/fda/register"
)

// ExampleLandmarkShifts aligns two curves whose peaks were located at
// t=0.2 and t=0.8 onto the midpoint of the landmark extremes.
func ExampleLandmarkShifts() {
	b, _ := basis.NewFourier(basis.Domain{A: 0, B: 1}, 3, 0)
	coefs := [][]float64{{0, 1, 0}, {0, 0, 1}}
	c1, _ := basis.NewRow(b, coefs[0])
	c2, _ := basis.NewRow(b, coefs[1])
	fd, _ := c1.Concat(c2)

	delta, _ := register.LandmarkShifts(fd, []float64{0.2, 0.8}, register.LocMinimize())
	fmt.Printf("shifts: %.2f %.2f\n", delta[0], delta[1])
	// Output:
	// shifts: -0.30 0.30
}
