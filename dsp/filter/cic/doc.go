// Package cic models the theoretical frequency response of a Cascaded
// Integrator-Comb (CIC) decimation filter and derives its design metrics.
//
// A CIC decimator is described by a [Spec]: the number of integrator/comb
// stage pairs N, the comb delay (interpolation factor) M, the decimation
// ratio R and the input sample rate fs. Frequencies passed to the
// closed-form responses are expressed in cycles per decimated output
// sample, so f = 1 corresponds to fs/R Hz.
//
// The magnitude-squared response is
//
//	P(f) = (sin(pi*M*f) / sin(pi*f/R))^(2N)
//
// and the sinc approximation used as a cross-check is
//
//	P_est(f) = (R*M * sin(pi*M*f) / (pi*M*f))^(2N)
//
// Both forms are 0/0 at f = 0 (and P at every integer multiple of R). The
// package returns the analytic limit (R*M)^(2N) at those points, so no NaN
// ever reaches a [Curve].
//
// Typical workflow:
//
//	spec := cic.Spec{Order: 4, InterpolationFactor: 1, DecimationRatio: 16, SampleRate: 1.024e6}
//	curve, _ := cic.Evaluate(spec)
//	fc, _ := cic.CutoffFrequency(curve)
//	folds, _ := cic.AliasingAttenuation(spec, 8000, curve)
//	bits, _ := cic.MinimumBitWidth(spec)
//
// The package performs no filtering of signals; it only evaluates the
// filter's transfer function.
package cic
