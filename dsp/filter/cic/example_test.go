package cic_test

import (
	"fmt"

	"github.com/cwbudde/algo-cic/dsp/filter/cic"
)

func ExampleMinimumBitWidth() {
	spec := cic.Spec{Order: 4, InterpolationFactor: 1, DecimationRatio: 16, SampleRate: 1.024e6}

	bits, err := cic.MinimumBitWidth(spec)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s: %d bits, output %.0f Hz\n", spec, bits, spec.OutputRate())

	// Output:
	// N=4 M=1 R=16 fs=1.024e+06: 17 bits, output 64000 Hz
}

func ExampleAliasingAttenuation() {
	spec := cic.Spec{Order: 4, InterpolationFactor: 1, DecimationRatio: 16, SampleRate: 1.024e6}

	curve, err := cic.Evaluate(spec)
	if err != nil {
		fmt.Println(err)
		return
	}

	folds, err := cic.AliasingAttenuation(spec, 8000, curve)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, f := range folds[:3] {
		fmt.Printf("fold %d aliases %.0f Hz onto the passband edge\n", f.Fold, f.TargetHz)
	}

	// Output:
	// fold 1 aliases 56000 Hz onto the passband edge
	// fold 2 aliases 120000 Hz onto the passband edge
	// fold 3 aliases 184000 Hz onto the passband edge
}
