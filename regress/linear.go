package regress

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fda/basis"
)

// Linear is the functional linear regression estimator. Construct it with
// NewLinear, then Fit; Beta returns the fitted coefficient functions.
type Linear struct {
	// BetaBasis fixes the expansion basis of each coefficient function,
	// one per covariate.
	BetaBasis []basis.Basis

	beta []*basis.FDataBasis
}

// NewLinear builds an unfitted estimator over the given coefficient bases.
func NewLinear(betaBasis ...basis.Basis) *Linear {
	return &Linear{BetaBasis: betaBasis}
}

// ScalarCovariate lifts a per-sample scalar column into a constant-basis
// functional covariate over d, so scalar and functional predictors share
// one model.
func ScalarCovariate(d basis.Domain, values []float64) (*basis.FDataBasis, error) {
	cb, err := basis.NewConstant(d)
	if err != nil {
		return nil, err
	}
	return basis.New(cb, mat.NewDense(len(values), 1, values))
}

// Fit estimates the coefficient functions from covariates X and outcome y.
// Weights default to all ones; they must be non-negative with one entry
// per sample.
//
// The normal-equation matrix is assembled block by block from weighted
// inner products, symmetrized, and inverted. Fit fails with ErrBetaCount,
// ErrDimensionMismatch or ErrBadWeights on malformed input and with
// ErrSingular when the system cannot be inverted.
func (l *Linear) Fit(X []*basis.FDataBasis, y *basis.FDataBasis, weights []float64) error {
	weights, err := l.argCheck(X, y, weights)
	if err != nil {
		return err
	}

	cb, err := basis.NewConstant(y.Domain())
	if err != nil {
		return err
	}
	ones, err := basis.NewRow(cb, []float64{1})
	if err != nil {
		return err
	}

	nCoef := 0
	offsets := make([]int, len(l.BetaBasis)+1)
	for j, b := range l.BetaBasis {
		offsets[j] = nCoef
		nCoef += b.NBasis()
	}
	offsets[len(l.BetaBasis)] = nCoef

	cMat := mat.NewDense(nCoef, nCoef, nil)
	dMat := mat.NewDense(nCoef, 1, nil)

	for j := range X {
		xwj, err := X[j].Mul(basis.PerSample(weights))
		if err != nil {
			return err
		}

		// D_j: ⟨θ_j, 1⟩ weighted by Σ_i w_i·X_ij·y_i
		xy, err := xwj.Times(y)
		if err != nil {
			return err
		}
		dBlock, err := basis.AsFData(l.BetaBasis[j]).InnerProduct(ones, xy.Sum())
		if err != nil {
			return err
		}
		cMatCopyBlock(dMat, dBlock, offsets[j], 0)

		// lower triangle of C, mirrored as it is filled
		for k := 0; k <= j; k++ {
			xx, err := xwj.Times(X[k])
			if err != nil {
				return err
			}
			cBlock, err := basis.AsFData(l.BetaBasis[j]).
				InnerProduct(basis.AsFData(l.BetaBasis[k]), xx.Sum())
			if err != nil {
				return err
			}
			cMatCopyBlock(cMat, cBlock, offsets[j], offsets[k])
			if k != j {
				var tr mat.Dense
				tr.CloneFrom(cBlock.T())
				cMatCopyBlock(cMat, &tr, offsets[k], offsets[j])
			}
		}
	}

	// cancel quadrature round-off asymmetry before inverting
	var sym mat.Dense
	sym.Add(cMat, cMat.T())
	sym.Scale(0.5, &sym)

	var inv mat.Dense
	if err := inv.Inverse(&sym); err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}
	var coefs mat.Dense
	coefs.Mul(inv.T(), dMat)

	beta := make([]*basis.FDataBasis, len(l.BetaBasis))
	for j, b := range l.BetaBasis {
		row := make([]float64, b.NBasis())
		for i := range row {
			row[i] = coefs.At(offsets[j]+i, 0)
		}
		if beta[j], err = basis.NewRow(b, row); err != nil {
			return err
		}
	}
	l.beta = beta
	return nil
}

// Beta returns the fitted coefficient functions, one per covariate, or
// nil before a successful Fit.
func (l *Linear) Beta() []*basis.FDataBasis {
	if l.beta == nil {
		return nil
	}
	out := make([]*basis.FDataBasis, len(l.beta))
	copy(out, l.beta)
	return out
}

// argCheck validates shapes and defaults the weights to all ones.
func (l *Linear) argCheck(X []*basis.FDataBasis, y *basis.FDataBasis, weights []float64) ([]float64, error) {
	if y == nil || len(X) != len(l.BetaBasis) || len(X) == 0 {
		return nil, ErrBetaCount
	}
	for j := range X {
		if X[j] == nil || l.BetaBasis[j] == nil {
			return nil, ErrBetaCount
		}
		if X[j].NSamples() != y.NSamples() {
			return nil, ErrDimensionMismatch
		}
	}
	if weights == nil {
		weights = make([]float64, y.NSamples())
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != y.NSamples() {
		return nil, ErrBadWeights
	}
	for _, w := range weights {
		if w < 0 {
			return nil, ErrBadWeights
		}
	}
	return weights, nil
}

// cMatCopyBlock writes src into dst at row/col offset (r0, c0).
func cMatCopyBlock(dst, src *mat.Dense, r0, c0 int) {
	r, c := src.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(r0+i, c0+j, src.At(i, j))
		}
	}
}
