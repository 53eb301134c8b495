// Command pcm2wav converts a raw interleaved microphone-array capture into
// one normalized WAV file per channel.
//
// Usage:
//
//	pcm2wav [flags] -in capture.pcm
//
// Each channel is written as <out>/<prefix>_chan<i>.wav at the decimated
// rate fs/R. The front-end filter given by -order, -m, -r and -fs is
// validated and its register width logged before conversion.
//
// Examples:
//
//	pcm2wav -in interface.pcm -channels 6 -drop 24
//	pcm2wav -in 16bits_8chan_long.pcm -width 16 -channels 8
//	pcm2wav -in out.pcm -channels 1 -drop 20000 -bits 32
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-cic/dsp/capture"
	"github.com/cwbudde/algo-cic/dsp/filter/cic"
	"github.com/cwbudde/algo-cic/formats/wav"
	"github.com/cwbudde/algo-cic/internal/cli"
)

type options struct {
	in       string
	outDir   string
	prefix   string
	channels int
	width    capture.Width
	drop     int
	spec     cic.Spec
	bitDepth int
}

func main() {
	in := flag.String("in", "", "raw capture file (required)")
	outDir := flag.String("out", ".", "output directory")
	prefix := flag.String("prefix", "", "output file prefix (default: input base name)")
	channels := flag.Int("channels", 6, "number of interleaved channels")
	width := flag.Int("width", 32, "raw sample width in bits (16 or 32)")
	drop := flag.Int("drop", 0, "leading raw samples to discard")
	fs := flag.Float64("fs", 64*16e3, "CIC input sample rate in Hz")
	r := flag.Int("r", 16, "CIC decimation ratio")
	order := flag.Int("order", 4, "CIC order (N) of the capture front-end")
	m := flag.Int("m", 1, "CIC comb differential delay (M) of the capture front-end")
	bits := flag.Int("bits", 16, "WAV bit depth (16, 24 or 32)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pcm2wav [flags] -in capture.pcm\n\n")
		fmt.Fprintf(os.Stderr, "Splits a raw interleaved capture into normalized per-channel WAV files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := cli.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := options{
		in:       *in,
		outDir:   *outDir,
		prefix:   *prefix,
		channels: *channels,
		width:    capture.Width(*width),
		drop:     *drop,
		spec:     cic.Spec{Order: *order, InterpolationFactor: *m, DecimationRatio: *r, SampleRate: *fs},
		bitDepth: *bits,
	}
	paths, err := run(opts, log)
	if err != nil {
		log.Fatal("conversion failed", zap.String("in", *in), zap.Error(err))
	}
	log.Info("done", zap.Strings("files", paths))
}

func run(o options, log *zap.Logger) ([]string, error) {
	bits, err := cic.MinimumBitWidth(o.spec)
	if err != nil {
		return nil, err
	}
	log.Info("front-end filter",
		zap.Stringer("spec", o.spec),
		zap.Int("register_bits", bits),
		zap.Float64("output_rate", o.spec.OutputRate()),
	)
	if !o.width.Valid() {
		return nil, fmt.Errorf("%w: sample width must be 16 or 32: %d", capture.ErrInvalidParameter, o.width)
	}
	rate := int(math.Round(o.spec.OutputRate()))
	prefix := o.prefix
	if prefix == "" {
		prefix = strings.TrimSuffix(filepath.Base(o.in), filepath.Ext(o.in))
	}

	f, err := os.Open(o.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var channels [][]float64
	switch o.width {
	case capture.Width16:
		raw, err := capture.ReadRaw16(f)
		if err != nil {
			return nil, err
		}
		log.Debug("read capture", zap.Int("samples", len(raw)), zap.Int("width", int(o.width)))
		channels, err = capture.DemultiplexNormalized(raw, o.channels, o.drop)
		if err != nil {
			return nil, err
		}
	default:
		raw, err := capture.ReadRaw32(f)
		if err != nil {
			return nil, err
		}
		log.Debug("read capture", zap.Int("samples", len(raw)), zap.Int("width", int(o.width)))
		channels, err = capture.DemultiplexNormalized(raw, o.channels, o.drop)
		if err != nil {
			return nil, err
		}
	}

	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}
	log.Info("demultiplexed",
		zap.Int("channels", len(channels)),
		zap.Int("frames", frames),
		zap.Int("rate", rate),
		zap.Float64("seconds", float64(frames)/o.spec.OutputRate()),
	)

	return wav.WriteChannels(o.outDir, prefix, channels, rate, o.bitDepth)
}
