// Package regress fits linear models with functional covariates.
//
// 🚀 Model
//
//	y(t) = Σ_j ⟨X_j, β_j⟩(t) + ε
//
// Each covariate X_j is a functional sample and each coefficient β_j is
// itself a function, expanded in a caller-chosen basis. Fit assembles the
// weighted normal equations blockwise —
//
//	C_jk = ⟨θ_j, θ_k⟩ weighted by Σ_i w_i·X_ij·X_ik
//	D_j  = ⟨θ_j, 1⟩  weighted by Σ_i w_i·X_ij·y_i
//
// where θ_j are the coefficient-basis functions — symmetrizes C to cancel
// quadrature round-off, and solves C·β = D by dense inversion. A
// non-invertible system surfaces as ErrSingular; there is no internal
// regularization or retry.
//
// ⚙️ Usage:
//
//	model := regress.NewLinear(betaBasis1, betaBasis2)
//	if err := model.Fit([]*basis.FDataBasis{x1, x2}, y, nil); err != nil { ... }
//	betas := model.Beta()
//
// Scalar covariates enter the same model as constant functions; wrap a
// per-sample value column with ScalarCovariate.
//
// Prediction and scoring live with the caller's estimator surface; this
// package only fits.
package regress
