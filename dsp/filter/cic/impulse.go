package cic

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// ImpulseResponse returns the impulse response of the cascade at the input
// rate, before decimation: N convolutions of a length R*M boxcar. The
// result has N*(R*M-1)+1 taps and sums to (R*M)^N.
func ImpulseResponse(s Spec) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	width := s.DecimationRatio * s.InterpolationFactor

	h := []float64{1}
	prefix := make([]float64, 0, s.Order*(width-1)+2)
	for range s.Order {
		prefix = prefix[:0]
		prefix = append(prefix, 0)
		for _, v := range h {
			prefix = append(prefix, prefix[len(prefix)-1]+v)
		}

		next := make([]float64, len(h)+width-1)
		for k := range next {
			hi := min(k, len(h)-1) + 1
			lo := max(0, k-width+1)
			next[k] = prefix[hi] - prefix[lo]
		}
		h = next
	}
	return h, nil
}

// FloorDB is the lowest attenuation reported by [SampledResponse] and
// [EvaluateAt]. Comb nulls are exact zeros of the transform, and float64
// rounding noise of the FFT sits far below this level.
const FloorDB = -200.0

func clampFloor(levels []float64) {
	for i, v := range levels {
		levels[i] = max(v, FloorDB)
	}
}

// DefaultFFTSize returns the FFT length used for [SampledResponse] by the
// tools: at least 8192 and no shorter than the impulse response.
func DefaultFFTSize(s Spec) int {
	taps := s.Order*(s.DecimationRatio*s.InterpolationFactor-1) + 1
	n := 8192
	for n < taps {
		n <<= 1
	}
	return n
}

// SampledResponse evaluates the filter by transforming its impulse
// response with an FFT of fftSize points. The returned curve covers bins
// 1..fftSize/2 (fs/fftSize Hz apart), is normalized to a 0 dB maximum and
// is clamped at [FloorDB], so it can be compared against [EvaluateAt] as a
// consistency check.
// fftSize must be a power of two no shorter than the impulse response.
func SampledResponse(s Spec, fftSize int) (Curve, error) {
	h, err := ImpulseResponse(s)
	if err != nil {
		return nil, err
	}
	if fftSize < 4 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: fft size must be a power of two >= 4: %d", ErrInvalidParameter, fftSize)
	}
	if fftSize < len(h) {
		return nil, fmt.Errorf("%w: fft size %d shorter than impulse response %d", ErrInvalidParameter, fftSize, len(h))
	}

	in := make([]complex128, fftSize)
	for i, v := range h {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("cic: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("cic: fft: %w", err)
	}

	n := fftSize / 2
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range n {
		re[i] = real(out[i+1])
		im[i] = imag(out[i+1])
	}
	power := make([]float64, n)
	vecmath.Power(power, re, im)

	for i, p := range power {
		power[i] = 10 * math.Log10(max(p, math.SmallestNonzeroFloat64))
	}
	floats.AddConst(-floats.Max(power), power)
	clampFloor(power)

	binHz := s.SampleRate / float64(fftSize)
	curve := make(Curve, n)
	for i := range curve {
		curve[i] = Point{FrequencyHz: float64(i+1) * binHz, AttenuationDB: power[i]}
	}
	return curve, nil
}
