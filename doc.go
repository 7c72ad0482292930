// Package fda is a toolkit for functional data analysis — curves sampled
// or basis-expanded into coefficient vectors become first-class numeric
// objects you can evaluate, differentiate, align and regress on.
//
// 🚀 What is fda?
//
//	A pure-Go library (gonum for the linear algebra) that brings together:
//		• Basis systems: Monomial, Fourier, B-spline & Constant families
//		• FDataBasis: coefficient-matrix functional data with evaluation,
//		  arithmetic, inner products, derivatives and resampling
//		• Registration: Newton–Raphson shift alignment & landmark shifts
//		• Regression: linear functional regression via block normal equations
//		• Metrics: Lp and elastic (DTW) distances over discretized curves
//
// ✨ Why choose fda?
//
//   - Closed-form where it exists – Gram matrices, derivatives and products
//     use family-specific formulas, numeric quadrature only as fallback
//   - Predictable cost – inner products pick the cheaper of the matrix-product
//     and direct-integration paths automatically
//   - Pure numerics – no I/O, no services, every operation copy-on-write
//
// Under the hood, everything is organized under five subpackages:
//
//	basis/    — basis-function systems & the FDataBasis representation
//	grid/     — discretized functional data (the conversion boundary)
//	metric/   — distances between discretized curves (Lp, DTW)
//	register/ — shift registration & landmark alignment
//	regress/  — linear functional regression
//
// Quick sketch of the data flow:
//
//	raw samples ──▶ grid.FData ──▶ basis.FromGrid ──▶ basis.FDataBasis
//	                                              │
//	                      register / regress / metric consumers
//
// Dive into README.md for full examples and each package's doc.go for the
// underlying math.
//
//	go get github.com/katalvlaran/fda
package fda
