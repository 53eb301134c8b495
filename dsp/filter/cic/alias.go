package cic

import (
	"fmt"
	"math"
)

// FoldAttenuation is the attenuation applied to the band that aliases onto
// the passband edge from the given fold of the decimated spectrum.
type FoldAttenuation struct {
	// Fold is the image index r, starting at 1.
	Fold int
	// TargetHz is r*fs/R - fc, the frequency that folds onto fc.
	TargetHz float64
	// SampleHz is the curve frequency actually used for the lookup.
	SampleHz float64
	// AttenuationDB is the curve attenuation at SampleHz.
	AttenuationDB float64
}

// AliasingAttenuation reports, for every fold r in 1..R/2, the attenuation
// at the curve sample closest to r*fr - fc, where fr = fs/R is the output
// rate and fc the passband edge in Hz. Targets beyond the curve span
// resolve to the last curve point; compare TargetHz and SampleHz to detect
// that.
func AliasingAttenuation(s Spec, fc float64, c Curve) ([]FoldAttenuation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return nil, ErrEmptyCurve
	}
	fr := s.OutputRate()
	if !(fc > 0) || fc >= fr || math.IsInf(fc, 0) {
		return nil, fmt.Errorf("%w: passband edge must be in (0, %g): %g", ErrInvalidParameter, fr, fc)
	}

	folds := make([]FoldAttenuation, 0, s.DecimationRatio/2)
	for r := 1; r <= s.DecimationRatio/2; r++ {
		target := float64(r)*fr - fc
		i := c.Nearest(target)
		folds = append(folds, FoldAttenuation{
			Fold:          r,
			TargetHz:      target,
			SampleHz:      c[i].FrequencyHz,
			AttenuationDB: c[i].AttenuationDB,
		})
	}
	return folds, nil
}

// WorstAliasing returns the fold with the least attenuation, i.e. the one
// that lets the most out-of-band energy back into the passband. It returns
// the zero value for an empty slice.
func WorstAliasing(folds []FoldAttenuation) FoldAttenuation {
	if len(folds) == 0 {
		return FoldAttenuation{}
	}
	worst := folds[0]
	for _, f := range folds[1:] {
		if f.AttenuationDB > worst.AttenuationDB {
			worst = f
		}
	}
	return worst
}
