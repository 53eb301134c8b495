package capture

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadRaw16(t *testing.T) {
	got, err := ReadRaw16(bytes.NewReader([]byte{0x01, 0x00, 0xff, 0xff, 0x34, 0x12}))
	if err != nil {
		t.Fatalf("ReadRaw16() error = %v", err)
	}
	want := []uint16{1, 0xffff, 0x1234}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestReadRaw32(t *testing.T) {
	got, err := ReadRaw32(bytes.NewReader([]byte{0x78, 0x56, 0x34, 0x12, 0x00, 0x00, 0x00, 0x80}))
	if err != nil {
		t.Fatalf("ReadRaw32() error = %v", err)
	}
	if len(got) != 2 || got[0] != 0x12345678 || got[1] != 0x80000000 {
		t.Fatalf("ReadRaw32() = %#x", got)
	}
}

func TestReadRaw_Empty(t *testing.T) {
	got, err := ReadRaw32(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadRaw32() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestReadRaw_Truncated(t *testing.T) {
	if _, err := ReadRaw16(bytes.NewReader([]byte{1, 2, 3})); !errors.Is(err, ErrTruncatedSample) {
		t.Fatalf("ReadRaw16() error = %v, want ErrTruncatedSample", err)
	}
	if _, err := ReadRaw32(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6})); !errors.Is(err, ErrTruncatedSample) {
		t.Fatalf("ReadRaw32() error = %v, want ErrTruncatedSample", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadRaw_ReaderError(t *testing.T) {
	if _, err := ReadRaw32(failingReader{}); err == nil {
		t.Fatal("expected read error")
	}
}

func TestWidth(t *testing.T) {
	if Width16.Bytes() != 2 || Width32.Bytes() != 4 {
		t.Fatalf("Bytes() = %d/%d, want 2/4", Width16.Bytes(), Width32.Bytes())
	}
	if !Width16.Valid() || !Width32.Valid() || Width(24).Valid() {
		t.Fatal("unexpected Valid() result")
	}
}
