package cic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PowerResponse returns the magnitude-squared response
// P(f) = (sin(pi*M*f) / sin(pi*f/R))^(2N) at normalized frequency f
// (cycles per output sample). Where f is an integer multiple of R the
// expression is 0/0 and the analytic limit (R*M)^(2N) is returned.
//
// The spec is not validated; use [Spec.Validate] first.
func PowerResponse(s Spec, f float64) float64 {
	return math.Pow(combRatio(s, f), 2*float64(s.Order))
}

// PowerResponseEstimate returns the sinc approximation
// P_est(f) = (R*M * sin(pi*M*f) / (pi*M*f))^(2N). The limit at f = 0 is
// (R*M)^(2N).
func PowerResponseEstimate(s Spec, f float64) float64 {
	return math.Pow(sincRatio(s, f), 2*float64(s.Order))
}

// PowerResponseDB returns 10*log10(|P(f)|), evaluated in the log domain
// so that large orders do not overflow.
func PowerResponseDB(s Spec, f float64) float64 {
	return 20 * float64(s.Order) * math.Log10(math.Abs(combRatio(s, f)))
}

// PowerResponseEstimateDB returns 10*log10(|P_est(f)|).
func PowerResponseEstimateDB(s Spec, f float64) float64 {
	return 20 * float64(s.Order) * math.Log10(math.Abs(sincRatio(s, f)))
}

// combRatio is sin(pi*M*f) / sin(pi*f/R), the per-stage amplitude.
func combRatio(s Spec, f float64) float64 {
	r := float64(s.DecimationRatio)
	if math.Mod(f, r) == 0 {
		return s.Gain()
	}
	m := float64(s.InterpolationFactor)
	return math.Sin(math.Pi*m*f) / math.Sin(math.Pi*f/r)
}

// sincRatio is R*M * sin(pi*M*f) / (pi*M*f).
func sincRatio(s Spec, f float64) float64 {
	if f == 0 {
		return s.Gain()
	}
	x := math.Pi * float64(s.InterpolationFactor) * f
	return s.Gain() * math.Sin(x) / x
}

// EvaluateResponse samples P on numPoints uniformly spaced normalized
// frequencies in [0, maxNormalizedFreq], converts to dB, drops the DC
// point and normalizes the result so that its maximum is exactly 0 dB.
// Frequencies of the returned curve are in Hz (f * fs / R).
func EvaluateResponse(s Spec, numPoints int, maxNormalizedFreq float64) (Curve, error) {
	return evaluate(s, numPoints, maxNormalizedFreq, PowerResponseDB)
}

// EvaluateEstimate is [EvaluateResponse] applied to the sinc
// approximation P_est.
func EvaluateEstimate(s Spec, numPoints int, maxNormalizedFreq float64) (Curve, error) {
	return evaluate(s, numPoints, maxNormalizedFreq, PowerResponseEstimateDB)
}

// Evaluate samples P using the defaults of [WithPoints] and [WithSpan]
// unless overridden.
func Evaluate(s Spec, opts ...Option) (Curve, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	cfg := applyOptions(s, opts)
	return EvaluateResponse(s, cfg.points, cfg.span)
}

func evaluate(s Spec, numPoints int, span float64, db func(Spec, float64) float64) (Curve, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if numPoints < 2 {
		return nil, fmt.Errorf("%w: number of points must be >= 2: %d", ErrInvalidParameter, numPoints)
	}
	if !(span > 0) || math.IsInf(span, 0) {
		return nil, fmt.Errorf("%w: frequency span must be > 0: %f", ErrInvalidParameter, span)
	}

	// DC is sampled on the grid but excluded from the curve.
	n := numPoints - 1
	freqs := make([]float64, n)
	levels := make([]float64, n)
	step := span / float64(numPoints-1)
	for i := range n {
		f := float64(i+1) * step
		if i == n-1 {
			f = span
		}
		freqs[i] = f
		levels[i] = db(s, f)
	}

	floats.AddConst(-floats.Max(levels), levels)

	toHz := s.SampleRate / float64(s.DecimationRatio)
	curve := make(Curve, n)
	for i := range curve {
		curve[i] = Point{FrequencyHz: freqs[i] * toHz, AttenuationDB: levels[i]}
	}
	return curve, nil
}

// EvaluateAt evaluates P at the given frequencies in Hz, which must be
// positive and strictly increasing, normalizes the result to a 0 dB
// maximum and clamps it at [FloorDB]. It pairs with [SampledResponse] for
// consistency checks.
func EvaluateAt(s Spec, freqsHz []float64) (Curve, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(freqsHz) == 0 {
		return nil, ErrEmptyCurve
	}

	toNorm := float64(s.DecimationRatio) / s.SampleRate
	levels := make([]float64, len(freqsHz))
	for i, hz := range freqsHz {
		if !(hz > 0) || math.IsInf(hz, 0) || (i > 0 && !(hz > freqsHz[i-1])) {
			return nil, fmt.Errorf("%w: frequencies must be positive and strictly increasing at index %d", ErrInvalidParameter, i)
		}
		levels[i] = PowerResponseDB(s, hz*toNorm)
	}
	floats.AddConst(-floats.Max(levels), levels)
	clampFloor(levels)

	curve := make(Curve, len(freqsHz))
	for i := range curve {
		curve[i] = Point{FrequencyHz: freqsHz[i], AttenuationDB: levels[i]}
	}
	return curve, nil
}
