// Command cicinfo prints design metrics of CIC decimation filters.
//
// Usage:
//
//	cicinfo [flags] [decimation-ratio ...]
//
// Without arguments it reports the filter given by -r. Passing several
// ratios compares them side by side with the other parameters fixed.
//
// Examples:
//
//	cicinfo
//	cicinfo -order 5 -fs 3.072e6 -r 64
//	cicinfo -passband 4000 8 16 32
//	cicinfo -folds -r 16
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-cic/dsp/filter/cic"
	"github.com/cwbudde/algo-cic/internal/cli"
)

type options struct {
	order    int
	m        int
	ratios   []int
	fs       float64
	points   int
	span     float64
	passband float64
	fftSize  int
	folds    bool
}

func main() {
	order := flag.Int("order", 4, "number of integrator/comb stages (N)")
	m := flag.Int("m", 1, "comb differential delay (M)")
	r := flag.Int("r", 16, "decimation ratio (R)")
	fs := flag.Float64("fs", 64*16e3, "input sample rate in Hz")
	points := flag.Int("points", cic.DefaultPoints, "number of frequency samples")
	span := flag.Float64("span", 0, "evaluated span in output-rate cycles (0 = R/(2M))")
	passband := flag.Float64("passband", 8000, "passband edge in Hz for the aliasing analysis")
	fftSize := flag.Int("fft", 0, "FFT size for the impulse-response cross-check (0 = auto)")
	folds := flag.Bool("folds", false, "print aliasing attenuation per fold")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cicinfo [flags] [decimation-ratio ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints design metrics of CIC decimation filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cicinfo -order 5 -fs 3.072e6 -r 64\n")
		fmt.Fprintf(os.Stderr, "  cicinfo -passband 4000 8 16 32\n")
		fmt.Fprintf(os.Stderr, "  cicinfo -folds -r 16\n")
	}
	flag.Parse()

	log, err := cli.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ratios, err := parseRatios(flag.Args(), *r)
	if err != nil {
		log.Fatal("invalid decimation ratio", zap.Error(err))
	}

	opts := options{
		order:    *order,
		m:        *m,
		ratios:   ratios,
		fs:       *fs,
		points:   *points,
		span:     *span,
		passband: *passband,
		fftSize:  *fftSize,
		folds:    *folds,
	}
	if err := run(opts, os.Stdout, log); err != nil {
		log.Fatal("analysis failed", zap.Error(err))
	}
}

func parseRatios(args []string, def int) ([]int, error) {
	if len(args) == 0 {
		return []int{def}, nil
	}
	ratios := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", a, err)
		}
		ratios = append(ratios, v)
	}
	return ratios, nil
}

type report struct {
	design  cic.Design
	estDev  float64
	fftDev  float64
	fftSize int
}

func analyze(spec cic.Spec, o options, log *zap.Logger) (report, error) {
	evalOpts := []cic.Option{cic.WithPoints(o.points)}
	if o.span > 0 {
		evalOpts = append(evalOpts, cic.WithSpan(o.span))
	}

	d, err := cic.Analyze(spec, o.passband, evalOpts...)
	if err != nil {
		return report{}, err
	}

	span := o.span
	if span <= 0 {
		span = cic.DefaultSpan(spec)
	}
	est, err := cic.EvaluateEstimate(spec, o.points, span)
	if err != nil {
		return report{}, err
	}
	estDev, err := cic.MaxDeviationDB(d.Curve, est, o.passband)
	if err != nil {
		return report{}, err
	}

	size := o.fftSize
	if size <= 0 {
		size = cic.DefaultFFTSize(spec)
	}
	sampled, err := cic.SampledResponse(spec, size)
	if err != nil {
		return report{}, err
	}
	closed, err := cic.EvaluateAt(spec, sampled.Frequencies())
	if err != nil {
		return report{}, err
	}
	fftDev, err := cic.MaxDeviationDB(sampled, closed, o.passband)
	if err != nil {
		return report{}, err
	}

	log.Debug("analyzed",
		zap.Stringer("spec", spec),
		zap.Int("points", d.Curve.Len()),
		zap.Int("fft", size),
		zap.Float64("cutoff_db", d.Cutoff.AttenuationDB),
	)
	return report{design: d, estDev: estDev, fftDev: fftDev, fftSize: size}, nil
}

func run(o options, w io.Writer, log *zap.Logger) error {
	reports := make([]report, 0, len(o.ratios))
	for _, r := range o.ratios {
		spec := cic.Spec{Order: o.order, InterpolationFactor: o.m, DecimationRatio: r, SampleRate: o.fs}
		rep, err := analyze(spec, o, log)
		if err != nil {
			return fmt.Errorf("%s: %w", spec, err)
		}
		reports = append(reports, rep)
	}

	if err := printSummary(w, reports); err != nil {
		return err
	}
	if o.folds {
		for _, rep := range reports {
			if err := printFolds(w, rep.design); err != nil {
				return err
			}
		}
	}
	return nil
}

func printSummary(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "N\tM\tR\tBits\tOut Rate [Hz]\tCutoff [Hz]\tWorst Alias [dB]\tFold\tP/P_est [dB]\tFFT [dB]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t-\t-\t----\t-------------\t-----------\t----------------\t----\t------------\t--------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rep := range reports {
		d := rep.design
		worst := d.WorstFold()
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.1f\t%.1f\t%.2f\t%d\t%.4f\t%.2e\n",
			d.Spec.Order,
			d.Spec.InterpolationFactor,
			d.Spec.DecimationRatio,
			d.BitWidth,
			d.OutputRate,
			d.Cutoff.FrequencyHz,
			worst.AttenuationDB,
			worst.Fold,
			rep.estDev,
			rep.fftDev,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func printFolds(w io.Writer, d cic.Design) error {
	if _, err := fmt.Fprintf(w, "\n%s, passband %.0f Hz\n", d.Spec, d.PassbandHz); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Fold\tTarget [Hz]\tSample [Hz]\tAttenuation [dB]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, f := range d.Folds {
		if _, err := fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.2f\n", f.Fold, f.TargetHz, f.SampleHz, f.AttenuationDB); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
