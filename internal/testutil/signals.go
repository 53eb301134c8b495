package testutil

import (
	"math"
	"math/rand"
)

// DeterministicChannel generates length samples uniformly distributed in
// [lo, hi] with a fixed seed, mimicking offset-coded ADC output.
func DeterministicChannel(seed int64, lo, hi uint32, length int) []uint32 {
	out := make([]uint32, length)
	rng := rand.New(rand.NewSource(seed))
	span := int64(hi) - int64(lo) + 1
	for i := range out {
		out[i] = lo + uint32(rng.Int63n(span))
	}
	return out
}

// OffsetSine generates an offset-coded sine: mid + amplitude*sin(...),
// rounded to the nearest integer.
func OffsetSine(freqHz, sampleRate float64, mid, amplitude uint32, length int) []uint32 {
	out := make([]uint32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = uint32(math.Round(float64(mid) + float64(amplitude)*math.Sin(step*float64(i))))
	}
	return out
}

// Interleave merges equally long channels into one frame-major buffer.
// It panics if the channel lengths differ.
func Interleave[T any](channels [][]T) []T {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]T, 0, frames*len(channels))
	for _, ch := range channels {
		if len(ch) != frames {
			panic("testutil: channels must have equal length")
		}
	}
	for f := range frames {
		for _, ch := range channels {
			out = append(out, ch[f])
		}
	}
	return out
}

// Narrow converts samples to a smaller unsigned type, truncating high bits.
func Narrow[T ~uint8 | ~uint16](in []uint32) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}
