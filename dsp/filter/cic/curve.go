package cic

import (
	"fmt"
	"math"
)

// CutoffAttenuationDB is the attenuation that defines the cutoff frequency.
const CutoffAttenuationDB = -3.0

// Point is one sample of a response curve.
type Point struct {
	FrequencyHz   float64
	AttenuationDB float64
}

// Curve is a normalized attenuation response ordered by strictly
// increasing frequency. The DC point is never part of a curve.
type Curve []Point

// Len returns the number of points.
func (c Curve) Len() int { return len(c) }

// At returns the point at index i.
func (c Curve) At(i int) Point { return c[i] }

// Frequencies returns the frequency axis in Hz.
func (c Curve) Frequencies() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.FrequencyHz
	}
	return out
}

// Attenuations returns the attenuation axis in dB.
func (c Curve) Attenuations() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.AttenuationDB
	}
	return out
}

// Nearest returns the index of the point whose frequency is closest to hz.
// Ties resolve to the lower frequency. Returns -1 for an empty curve.
func (c Curve) Nearest(hz float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range c {
		if d := math.Abs(p.FrequencyHz - hz); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// CutoffFrequency returns the frequency in Hz whose attenuation is closest
// to -3 dB. If the curve never crosses -3 dB the closest point is still
// returned; callers that care should inspect the attenuation at that
// frequency.
func CutoffFrequency(c Curve) (float64, error) {
	i, err := closestAttenuation(c, CutoffAttenuationDB)
	if err != nil {
		return 0, err
	}
	return c[i].FrequencyHz, nil
}

// CutoffPoint is [CutoffFrequency] returning the full point.
func CutoffPoint(c Curve) (Point, error) {
	i, err := closestAttenuation(c, CutoffAttenuationDB)
	if err != nil {
		return Point{}, err
	}
	return c[i], nil
}

func closestAttenuation(c Curve, db float64) (int, error) {
	if len(c) == 0 {
		return 0, ErrEmptyCurve
	}
	best := 0
	bestDist := math.Inf(1)
	for i, p := range c {
		if d := math.Abs(p.AttenuationDB - db); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

// MaxDeviationDB returns the largest absolute difference in dB between two
// curves sampled on the same frequencies, considering points up to maxHz.
func MaxDeviationDB(a, b Curve, maxHz float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyCurve
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d points", ErrCurveMismatch, len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if a[i].FrequencyHz != b[i].FrequencyHz {
			return 0, fmt.Errorf("%w: index %d", ErrCurveMismatch, i)
		}
		if a[i].FrequencyHz > maxHz {
			break
		}
		if d := math.Abs(a[i].AttenuationDB - b[i].AttenuationDB); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
