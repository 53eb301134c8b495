package cic

import "math"

// DefaultPoints is the number of frequency samples used by [Evaluate].
const DefaultPoints = 1000

type config struct {
	points int
	span   float64
}

// Option configures [Evaluate] and [Analyze].
type Option func(*config)

// WithPoints sets the number of uniformly spaced frequency samples,
// including the DC sample that is dropped from the curve.
func WithPoints(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.points = n
		}
	}
}

// WithSpan sets the upper end of the evaluated normalized frequency range
// (cycles per output sample).
func WithSpan(maxNormalizedFreq float64) Option {
	return func(cfg *config) {
		if maxNormalizedFreq > 0 && !math.IsInf(maxNormalizedFreq, 0) {
			cfg.span = maxNormalizedFreq
		}
	}
}

// DefaultSpan returns R/(2M), which covers every aliasing fold up to the
// input Nyquist frequency.
func DefaultSpan(s Spec) float64 {
	return float64(s.DecimationRatio) / (2 * float64(s.InterpolationFactor))
}

func applyOptions(s Spec, opts []Option) config {
	cfg := config{
		points: DefaultPoints,
		span:   DefaultSpan(s),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
