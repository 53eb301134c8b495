// Package wav stores normalized capture channels as mono integer PCM WAV
// files.
//
// It uses the github.com/go-audio library for encoding. Samples in [-1, 1]
// are quantized to the requested bit depth; values outside the range are
// clamped.
package wav
