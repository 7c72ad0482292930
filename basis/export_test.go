package basis

import "gonum.org/v1/gonum/mat"

// Test-only bridges to the private inner-product kernels, so the
// crossover dispatch can be verified path-by-path from basis_test.

func (fd *FDataBasis) InnerViaMatrix_TestOnly(other *FDataBasis) (*mat.Dense, error) {
	return fd.innerViaMatrix(other)
}

func (fd *FDataBasis) InnerIntegrate_TestOnly(other *FDataBasis) (*mat.Dense, error) {
	return fd.innerIntegrate(other)
}
