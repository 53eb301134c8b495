package capture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncatedSample indicates a raw stream that ends inside a sample word.
var ErrTruncatedSample = errors.New("capture: truncated sample")

// Width is the word size of a raw capture sample.
type Width int

const (
	// Width16 is a 16-bit sample word.
	Width16 Width = 16
	// Width32 is a 32-bit sample word.
	Width32 Width = 32
)

// Bytes returns the word size in bytes.
func (w Width) Bytes() int { return int(w) / 8 }

// Valid reports whether w is a supported width.
func (w Width) Valid() bool { return w == Width16 || w == Width32 }

// ReadRaw16 reads little-endian 16-bit samples until EOF.
func ReadRaw16(r io.Reader) ([]uint16, error) {
	data, err := readWords(r, Width16)
	if err != nil {
		return nil, err
	}
	n := len(data) / 2
	out := make([]uint16, n)
	for i := range n {
		out[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return out, nil
}

// ReadRaw32 reads little-endian 32-bit samples until EOF.
func ReadRaw32(r io.Reader) ([]uint32, error) {
	data, err := readWords(r, Width32)
	if err != nil {
		return nil, err
	}
	n := len(data) / 4
	out := make([]uint32, n)
	for i := range n {
		out[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return out, nil
}

func readWords(r io.Reader, w Width) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("capture: read: %w", err)
	}
	if rem := len(data) % w.Bytes(); rem != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes for %d-bit words", ErrTruncatedSample, rem, w)
	}
	return data, nil
}
