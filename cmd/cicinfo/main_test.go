package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-cic/dsp/filter/cic"
)

func defaultOptions() options {
	return options{
		order:    4,
		m:        1,
		ratios:   []int{16},
		fs:       1.024e6,
		points:   cic.DefaultPoints,
		passband: 8000,
	}
}

func TestRun_Summary(t *testing.T) {
	var buf bytes.Buffer
	if err := run(defaultOptions(), &buf, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	fields := strings.Fields(lines[2])
	if fields[0] != "4" || fields[1] != "1" || fields[2] != "16" || fields[3] != "17" || fields[4] != "64000.0" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestRun_CompareRatiosWithFolds(t *testing.T) {
	o := defaultOptions()
	o.ratios = []int{8, 16, 32}
	o.folds = true

	var buf bytes.Buffer
	if err := run(o, &buf, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"N=4 M=1 R=8", "N=4 M=1 R=32", "Fold", "Target [Hz]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_InvalidSpec(t *testing.T) {
	o := defaultOptions()
	o.ratios = []int{1}
	if err := run(o, &bytes.Buffer{}, zap.NewNop()); !errors.Is(err, cic.ErrInvalidParameter) {
		t.Fatalf("run() error = %v, want ErrInvalidParameter", err)
	}
}

func TestParseRatios(t *testing.T) {
	got, err := parseRatios(nil, 16)
	if err != nil || len(got) != 1 || got[0] != 16 {
		t.Fatalf("parseRatios(nil) = %v, %v", got, err)
	}
	got, err = parseRatios([]string{"8", "32"}, 16)
	if err != nil || len(got) != 2 || got[1] != 32 {
		t.Fatalf("parseRatios() = %v, %v", got, err)
	}
	if _, err := parseRatios([]string{"x"}, 16); err == nil {
		t.Fatal("expected error for non-numeric ratio")
	}
}

func TestRun_PassbandBeyondCombNull(t *testing.T) {
	o := defaultOptions()
	o.m = 2
	o.passband = 40000

	var buf bytes.Buffer
	if err := run(o, &buf, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := buf.String()
	for _, bad := range []string{"Inf", "NaN"} {
		if strings.Contains(out, bad) {
			t.Fatalf("report contains %s:\n%s", bad, out)
		}
	}
}
