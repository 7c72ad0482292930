// Package basis implements basis-function systems and the basis-expanded
// representation of functional data.
//
// 🚀 What is a basis representation?
//
//	A curve x(t) is stored as a coefficient vector c over a fixed finite
//	family of functions φ₁..φ_K:
//
//	    x(t) = Σ_k c_k · φ_k(t)
//
//	Four families are provided:
//	  • Monomial — powers 1, t, t², …
//	  • Fourier  — 1, sin(ωt), cos(ωt), sin(2ωt), … (optionally with an
//	    explicit period)
//	  • BSpline  — spline basis functions of a given order over a knot
//	    sequence (Cox–de Boor recursion)
//	  • Constant — the single function 1 (regression intercept carrier)
//
// ✨ Key features:
//   - FDataBasis: many samples sharing one basis, evaluation on shared or
//     per-sample grids, derivatives, arithmetic, time shifts
//   - Least-squares projection from discretized data (Cholesky normal
//     equations or QR, caller's choice)
//   - Inner products with an automatic cost crossover between the
//     Gram-matrix path and direct pairwise quadrature
//   - Gram matrices cached per basis instance, closed forms where the
//     family admits one
//
// All values are immutable after construction: every operation returns a
// new object and leaves its inputs untouched. The set of basis families is
// closed — the Basis interface carries unexported kernel methods, so new
// families live in this package.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fda/basis"
//
//	b, _ := basis.NewMonomial(basis.Domain{A: 0, B: 1}, 3)
//	fd, _ := basis.New(b, mat.NewDense(1, 3, []float64{1, 2, 3})) // 1+2t+3t²
//	ys, _ := fd.Evaluate([]float64{0, 0.5, 1}, 0)
//
// Numerical policies, in brief: discretize-and-reproject operations use an
// evenly spaced mesh of max(10·nBasis+1, 201) points (8·nBasis+1 for
// functional products, max(501, 10·nBasis) for the grid statistics);
// pairwise quadrature is Gauss–Legendre. See example_test.go for complete
// walkthroughs.
package basis
