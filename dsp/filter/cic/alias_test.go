package cic

import (
	"errors"
	"testing"
)

func TestAliasingAttenuation_MicArray(t *testing.T) {
	s := micSpec()
	curve, err := Evaluate(s)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	folds, err := AliasingAttenuation(s, 8000, curve)
	if err != nil {
		t.Fatalf("AliasingAttenuation() error = %v", err)
	}
	if len(folds) != 8 {
		t.Fatalf("len(folds) = %d, want 8", len(folds))
	}

	for i, f := range folds {
		if f.Fold != i+1 {
			t.Fatalf("folds[%d].Fold = %d, want %d", i, f.Fold, i+1)
		}
		wantTarget := float64(i+1)*64000 - 8000
		if f.TargetHz != wantTarget {
			t.Fatalf("fold %d target = %v, want %v", f.Fold, f.TargetHz, wantTarget)
		}
		// Grid spacing is 8/999 * 64 kHz, about 512 Hz.
		if !almostEqual(f.SampleHz, f.TargetHz, 300) {
			t.Fatalf("fold %d sample = %v Hz, too far from target %v", f.Fold, f.SampleHz, f.TargetHz)
		}
		if f.AttenuationDB > -60 {
			t.Fatalf("fold %d attenuation = %v dB, want below -60", f.Fold, f.AttenuationDB)
		}
	}

	if w := WorstAliasing(folds); w.Fold != 1 {
		t.Fatalf("worst fold = %d, want 1", w.Fold)
	}
}

func TestAliasingAttenuation_OddRatio(t *testing.T) {
	s := Spec{Order: 3, InterpolationFactor: 1, DecimationRatio: 5, SampleRate: 80000}
	curve, err := Evaluate(s)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	folds, err := AliasingAttenuation(s, 4000, curve)
	if err != nil {
		t.Fatalf("AliasingAttenuation() error = %v", err)
	}
	if len(folds) != 2 {
		t.Fatalf("len(folds) = %d, want 2", len(folds))
	}
}

func TestAliasingAttenuation_TargetBeyondCurve(t *testing.T) {
	s := micSpec()
	curve, err := Evaluate(s, WithSpan(1))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	folds, err := AliasingAttenuation(s, 8000, curve)
	if err != nil {
		t.Fatalf("AliasingAttenuation() error = %v", err)
	}
	last := folds[len(folds)-1]
	if last.SampleHz != curve.At(curve.Len()-1).FrequencyHz {
		t.Fatalf("fold %d sample = %v, want clamp to last curve point", last.Fold, last.SampleHz)
	}
}

func TestAliasingAttenuation_Invalid(t *testing.T) {
	s := micSpec()
	curve := Curve{{1000, 0}, {2000, -1}}
	for _, fc := range []float64{0, -1, 64000, 70000} {
		if _, err := AliasingAttenuation(s, fc, curve); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("fc=%v: error = %v, want ErrInvalidParameter", fc, err)
		}
	}
	if _, err := AliasingAttenuation(s, 8000, nil); !errors.Is(err, ErrEmptyCurve) {
		t.Errorf("empty curve error = %v, want ErrEmptyCurve", err)
	}
	bad := Spec{Order: 1, InterpolationFactor: 1, DecimationRatio: 1, SampleRate: 1}
	if _, err := AliasingAttenuation(bad, 0.1, curve); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("invalid spec error = %v, want ErrInvalidParameter", err)
	}
}

func TestWorstAliasing(t *testing.T) {
	folds := []FoldAttenuation{
		{Fold: 1, AttenuationDB: -80},
		{Fold: 2, AttenuationDB: -45},
		{Fold: 3, AttenuationDB: -100},
	}
	if w := WorstAliasing(folds); w.Fold != 2 {
		t.Fatalf("worst fold = %d, want 2", w.Fold)
	}
	if w := WorstAliasing(nil); w != (FoldAttenuation{}) {
		t.Fatalf("WorstAliasing(nil) = %+v, want zero value", w)
	}
}
