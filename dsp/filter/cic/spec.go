package cic

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter indicates a filter or evaluation parameter out of range.
	ErrInvalidParameter = errors.New("cic: invalid parameter")
	// ErrEmptyCurve indicates an operation that needs at least one curve point.
	ErrEmptyCurve = errors.New("cic: empty response curve")
	// ErrCurveMismatch indicates two curves that do not share a frequency grid.
	ErrCurveMismatch = errors.New("cic: curves sampled on different frequencies")
)

// Spec describes a CIC decimation filter.
type Spec struct {
	// Order is the number of cascaded integrator/comb stage pairs (N).
	Order int
	// InterpolationFactor is the differential delay of each comb stage (M).
	InterpolationFactor int
	// DecimationRatio is the rate change factor (R). Must be at least 2.
	DecimationRatio int
	// SampleRate is the filter input rate in Hz (fs).
	SampleRate float64
}

// Validate reports whether all fields are in range.
func (s Spec) Validate() error {
	if s.Order <= 0 {
		return fmt.Errorf("%w: order must be > 0: %d", ErrInvalidParameter, s.Order)
	}
	if s.InterpolationFactor <= 0 {
		return fmt.Errorf("%w: interpolation factor must be > 0: %d", ErrInvalidParameter, s.InterpolationFactor)
	}
	if s.DecimationRatio < 2 {
		return fmt.Errorf("%w: decimation ratio must be >= 2: %d", ErrInvalidParameter, s.DecimationRatio)
	}
	if !(s.SampleRate > 0) || math.IsInf(s.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParameter, s.SampleRate)
	}
	return nil
}

// OutputRate returns the decimated per-channel sample rate fs/R in Hz.
func (s Spec) OutputRate() float64 {
	return s.SampleRate / float64(s.DecimationRatio)
}

// Gain returns the DC gain R*M of a single integrator/comb pair.
func (s Spec) Gain() float64 {
	return float64(s.DecimationRatio) * float64(s.InterpolationFactor)
}

// String formats the spec as used in design reports.
func (s Spec) String() string {
	return fmt.Sprintf("N=%d M=%d R=%d fs=%g", s.Order, s.InterpolationFactor, s.DecimationRatio, s.SampleRate)
}
