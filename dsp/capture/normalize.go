package capture

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Normalize removes the DC offset of an offset-coded channel and scales it
// to [-1, 1].
//
// The offset is the midpoint (max+min)/2 of the channel, and the scale is
// the largest absolute value after centering, so at least one output
// sample is exactly -1 or +1. A channel whose samples are all identical
// (or that is empty) yields ErrDegenerateSignal.
func Normalize[T Sample](channel []T) ([]float64, error) {
	if len(channel) == 0 {
		return nil, ErrDegenerateSignal
	}

	out := make([]float64, len(channel))
	for i, v := range channel {
		out[i] = float64(v)
	}

	mid := (floats.Max(out) + floats.Min(out)) / 2
	floats.AddConst(-mid, out)

	scale := vecmath.MaxAbs(out)
	if scale == 0 {
		return nil, ErrDegenerateSignal
	}

	// Divide rather than multiply by 1/scale so the peak maps to exactly ±1.
	for i := range out {
		out[i] /= scale
	}
	return out, nil
}
