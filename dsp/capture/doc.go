// Package capture converts raw interleaved microphone-array captures into
// normalized per-channel sample sequences.
//
// A capture is a frame-major buffer of fixed-width unsigned samples as
// written by the CIC decimation front-end: frame k holds one sample per
// channel. The samples are offset-coded, so every channel carries a DC
// bias that [Normalize] removes before rescaling to [-1, 1].
//
// Workflow:
//
//	raw, _ := capture.ReadRaw32(f)
//	channels, _ := capture.DemultiplexNormalized(raw, 6, 24)
//
// All functions treat their inputs as read-only and allocate fresh output
// slices. Normalization is a whole-buffer, two-pass operation.
package capture
