package models

import (
	"fmt"
	"math"
)

// AccelProfile describes the error characteristics of one accelerometer
// triad. Every per-axis vector has exactly three entries (x, y, z body
// axes); the fixed-size arrays enforce that at compile time.
type AccelProfile struct {
	// SampleFreqHz is the sensor output rate; the bias-instability
	// recursion uses dt = 1/SampleFreqHz.
	SampleFreqHz float64

	// WhiteNoiseStd is the per-axis standard deviation of the white
	// noise term, m/s² per sample.
	WhiteNoiseStd [3]float64

	// FixedBiasBound bounds the constant turn-on bias: one value per axis
	// is drawn uniformly in [-bound, +bound] once per simulation run.
	FixedBiasBound [3]float64

	// BiasCorrTimeS is the per-axis correlation time of the bias
	// instability process, seconds. A non-positive or +Inf entry means
	// "no correlation": that axis degrades to scaled white noise.
	BiasCorrTimeS [3]float64

	// BiasDriftStd is the steady-state standard deviation of the
	// bias instability (correlated case) or the direct per-sample
	// standard deviation (uncorrelated case), m/s².
	BiasDriftStd [3]float64
}

// CorrTimeFinite reports whether the given axis runs the first-order
// Gauss-Markov recursion (finite correlation time) rather than the
// uncorrelated branch. The check is per axis so profiles may mix.
func (p *AccelProfile) CorrTimeFinite(axis int) bool {
	tau := p.BiasCorrTimeS[axis]
	return tau > 0 && !math.IsInf(tau, 1)
}

// Validate fails fast on physically meaningless settings.
func (p *AccelProfile) Validate() error {
	if p.SampleFreqHz <= 0 {
		return fmt.Errorf("sample frequency must be positive, got %g", p.SampleFreqHz)
	}
	for ax := 0; ax < 3; ax++ {
		if p.WhiteNoiseStd[ax] < 0 {
			return fmt.Errorf("white noise std for axis %d is negative", ax)
		}
		if p.FixedBiasBound[ax] < 0 {
			return fmt.Errorf("fixed bias bound for axis %d is negative", ax)
		}
		if p.BiasDriftStd[ax] < 0 {
			return fmt.Errorf("bias drift std for axis %d is negative", ax)
		}
	}
	return nil
}
