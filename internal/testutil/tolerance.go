package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireStrictlyIncreasing fails t unless every element exceeds its
// predecessor.
func RequireStrictlyIncreasing(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if !(data[i] > data[i-1]) {
			t.Fatalf("index %d: %v not greater than %v", i, data[i], data[i-1])
		}
	}
}

// RequireUnitPeak fails t unless every element lies in [-1, 1] and at
// least one element is exactly -1 or +1.
func RequireUnitPeak(t *testing.T, data []float64) {
	t.Helper()
	peak := false
	for i, v := range data {
		if v < -1 || v > 1 {
			t.Fatalf("index %d: %v outside [-1, 1]", i, v)
		}
		if v == 1 || v == -1 {
			peak = true
		}
	}
	if !peak {
		t.Fatal("no sample reaches -1 or +1")
	}
}
