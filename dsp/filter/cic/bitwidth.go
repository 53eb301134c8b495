package cic

import "math/big"

// MinimumBitWidth returns ceil(1 + N*log2(R*M)), the register width that
// cannot overflow through N integrator stages with gain R*M each.
//
// The ceiling is computed exactly: the result B is the smallest integer
// with 2^(B-1) >= (R*M)^N. No upper bound is imposed.
func MinimumBitWidth(s Spec) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	gain := new(big.Int).Mul(big.NewInt(int64(s.DecimationRatio)), big.NewInt(int64(s.InterpolationFactor)))
	growth := new(big.Int).Exp(gain, big.NewInt(int64(s.Order)), nil)

	// ceil(log2(x)) == bitlen(x-1) for x >= 1.
	growth.Sub(growth, big.NewInt(1))
	return 1 + growth.BitLen(), nil
}
