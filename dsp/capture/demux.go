package capture

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInvalidParameter indicates a channel count or drop offset out of range.
	ErrInvalidParameter = errors.New("capture: invalid parameter")
	// ErrMisalignedBuffer indicates a buffer that is not a whole number of frames.
	ErrMisalignedBuffer = errors.New("capture: buffer length not a multiple of channel count")
	// ErrDegenerateSignal indicates a channel without dynamic range.
	ErrDegenerateSignal = errors.New("capture: degenerate signal")
)

// Sample is the set of raw sample word types a capture can hold.
type Sample interface {
	~uint8 | ~uint16 | ~uint32
}

// Demultiplex drops the first leadingSamplesToDrop raw samples and splits
// the rest into channelCount sequences, channel i holding every
// channelCount-th sample starting at offset i.
//
// The remaining length must be a whole number of frames; a trailing
// partial frame yields ErrMisalignedBuffer instead of being truncated.
func Demultiplex[T Sample](raw []T, channelCount, leadingSamplesToDrop int) ([][]T, error) {
	body, err := frames(len(raw), channelCount, leadingSamplesToDrop)
	if err != nil {
		return nil, err
	}
	data := raw[leadingSamplesToDrop:]

	out := make([][]T, channelCount)
	for ch := range out {
		samples := make([]T, body)
		for f := range samples {
			samples[f] = data[f*channelCount+ch]
		}
		out[ch] = samples
	}
	return out, nil
}

// DemultiplexNormalized demultiplexes raw and normalizes every channel.
// Channels are normalized concurrently; failures are reported per channel.
func DemultiplexNormalized[T Sample](raw []T, channelCount, leadingSamplesToDrop int) ([][]float64, error) {
	channels, err := Demultiplex(raw, channelCount, leadingSamplesToDrop)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, channelCount)
	errs := make([]error, channelCount)
	var wg sync.WaitGroup
	for i := range channels {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			norm, err := Normalize(channels[i])
			if err != nil {
				errs[i] = fmt.Errorf("channel %d: %w", i, err)
				return
			}
			out[i] = norm
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// frames validates the layout and returns the number of frames.
func frames(length, channelCount, drop int) (int, error) {
	if channelCount <= 0 {
		return 0, fmt.Errorf("%w: channel count must be > 0: %d", ErrInvalidParameter, channelCount)
	}
	if drop < 0 || drop > length {
		return 0, fmt.Errorf("%w: leading drop must be in [0, %d]: %d", ErrInvalidParameter, length, drop)
	}
	n := length - drop
	if n%channelCount != 0 {
		return 0, fmt.Errorf("%w: %d samples, %d channels", ErrMisalignedBuffer, n, channelCount)
	}
	return n / channelCount, nil
}
