package wav

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

var (
	// ErrInvalidBitDepth indicates an unsupported integer PCM bit depth.
	ErrInvalidBitDepth = errors.New("wav: bit depth must be 16, 24 or 32")
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("wav: sample rate must be > 0")
)

// pcmFormat is the WAVE_FORMAT_PCM tag.
const pcmFormat = 1

// WriteChannel encodes samples as a mono PCM WAV at sampleRate Hz with the
// given integer bit depth.
func WriteChannel(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	if err := validate(sampleRate, bitDepth); err != nil {
		return err
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           Quantize(samples, bitDepth),
		SourceBitDepth: bitDepth,
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	return nil
}

// ChannelFileName returns the file name used for channel index (0-based):
// <prefix>_chan<index+1>.wav.
func ChannelFileName(prefix string, index int) string {
	return fmt.Sprintf("%s_chan%d.wav", prefix, index+1)
}

// WriteChannels writes one WAV file per channel into dir and returns the
// created paths in channel order.
func WriteChannels(dir, prefix string, channels [][]float64, sampleRate, bitDepth int) ([]string, error) {
	if err := validate(sampleRate, bitDepth); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(channels))
	for i, ch := range channels {
		path := filepath.Join(dir, ChannelFileName(prefix, i))
		if err := writeFile(path, ch, sampleRate, bitDepth); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, samples []float64, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: create %s: %w", path, err)
	}
	if err := WriteChannel(f, samples, sampleRate, bitDepth); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Quantize maps samples in [-1, 1] to signed integers of the given bit
// depth, rounding to nearest and clamping out-of-range input.
func Quantize(samples []float64, bitDepth int) []int {
	full := float64(int64(1)<<(bitDepth-1) - 1)
	out := make([]int, len(samples))
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v))
		out[i] = int(math.Round(v * full))
	}
	return out
}

func validate(sampleRate, bitDepth int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	switch bitDepth {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}
}
