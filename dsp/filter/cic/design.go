package cic

// Design collects the metrics used to judge a CIC decimator configuration.
type Design struct {
	Spec Spec
	// BitWidth is the minimum register width, see [MinimumBitWidth].
	BitWidth int
	// OutputRate is fs/R in Hz.
	OutputRate float64
	// Cutoff is the curve point closest to -3 dB.
	Cutoff Point
	// PassbandHz is the passband edge the folds were evaluated against.
	PassbandHz float64
	// Folds holds the aliasing attenuation for folds 1..R/2.
	Folds []FoldAttenuation
	// Curve is the normalized response the metrics were read from.
	Curve Curve
}

// Analyze evaluates the response of s and derives all design metrics for
// the passband edge passbandHz.
func Analyze(s Spec, passbandHz float64, opts ...Option) (Design, error) {
	curve, err := Evaluate(s, opts...)
	if err != nil {
		return Design{}, err
	}
	bits, err := MinimumBitWidth(s)
	if err != nil {
		return Design{}, err
	}
	cutoff, err := CutoffPoint(curve)
	if err != nil {
		return Design{}, err
	}
	folds, err := AliasingAttenuation(s, passbandHz, curve)
	if err != nil {
		return Design{}, err
	}
	return Design{
		Spec:       s,
		BitWidth:   bits,
		OutputRate: s.OutputRate(),
		Cutoff:     cutoff,
		PassbandHz: passbandHz,
		Folds:      folds,
		Curve:      curve,
	}, nil
}

// WorstFold returns the least attenuated fold of the design.
func (d Design) WorstFold() FoldAttenuation {
	return WorstAliasing(d.Folds)
}
