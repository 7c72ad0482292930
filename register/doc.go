// Package register aligns a sample of curves in time.
//
// 🚀 What is registration?
//
//	Curves measured on a common interval often differ by phase: the same
//	feature happens a little earlier or later in each record. Registration
//	estimates a per-curve time shift δ_i so the translated curves
//	x_i(t+δ_i) line up.
//
// Two estimators are provided:
//
//   - ShiftRegister — iterative least-squares alignment: minimizes
//     Σ_i ∫ [x_i(t+δ_i) − μ̂(t)]² dt against the evolving cross-sample
//     mean μ̂ with a modified Newton–Raphson update (Ramsay & Silverman,
//     Functional Data Analysis, ch. 7). The second-derivative term keeps
//     only the per-curve diagonal ∫(x_i′)² — the cross term is dropped on
//     purpose, trading a weaker local-optimality guarantee for stable
//     convergence.
//   - LandmarkShift — closed form: given one landmark time per curve and a
//     target location policy, δ_i = landmark_i − target.
//
// ⚙️ Usage:
//
//	opts := register.DefaultOptions()
//	registered, err := register.ShiftRegister(fd, &opts)
//	shifts, err := register.ShiftRegisterShifts(fd, &opts)
//
// Convergence: the iteration stops when the largest update falls under
// Tol or after MaxIter rounds, whichever comes first. Non-convergence is
// not an error — the best estimate so far is returned, and callers who
// need a guarantee must check the residual themselves.
package register
