package sim

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"accel-sim/models"
)

// errorTerms holds the three synthetic error sequences for one run.
type errorTerms struct {
	fixedBias [3]float64
	white     [][3]float64
	drift     [][3]float64
}

// synthesizeErrors draws every stochastic component from the single source
// rng, in a fixed order (fixed bias, white noise, drift innovations), so a
// seeded run is fully reproducible. The three per-axis drift recursions
// then scan concurrently over the pre-drawn innovations: each scan is
// inherently sequential in time but the axes are mutually independent.
func synthesizeErrors(n int, prof *models.AccelProfile, rng *rand.Rand) *errorTerms {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	e := &errorTerms{
		white: make([][3]float64, n),
		drift: make([][3]float64, n),
	}

	// Fixed bias: one uniform draw per axis per invocation, not per epoch.
	for ax := 0; ax < 3; ax++ {
		if b := prof.FixedBiasBound[ax]; b > 0 {
			e.fixedBias[ax] = distuv.Uniform{Min: -b, Max: b, Src: rng}.Rand()
		}
	}

	// White noise: independent across epochs and axes.
	for j := 0; j < n; j++ {
		for ax := 0; ax < 3; ax++ {
			e.white[j][ax] = prof.WhiteNoiseStd[ax] * norm.Rand()
		}
	}

	// Bias instability innovations, drawn up front on the caller's source.
	innov := make([][3]float64, n)
	for j := 0; j < n; j++ {
		for ax := 0; ax < 3; ax++ {
			innov[j][ax] = norm.Rand()
		}
	}

	dt := 1 / prof.SampleFreqHz
	var wg sync.WaitGroup
	for ax := 0; ax < 3; ax++ {
		wg.Add(1)
		go func(ax int) {
			defer wg.Done()
			driftAxis(e.drift, innov, ax, dt, prof)
		}(ax)
	}
	wg.Wait()

	return e
}

// driftAxis fills column ax of dst with the bias-instability sequence.
// Finite correlation time runs the discrete first-order Gauss-Markov
// recursion with state[0] = 0; otherwise the axis is plain scaled white
// noise (a random-walk-style uncorrelated drift). The branch is evaluated
// per axis, so profiles may mix finite and infinite correlation times.
func driftAxis(dst, innov [][3]float64, ax int, dt float64, prof *models.AccelProfile) {
	n := len(dst)
	std := prof.BiasDriftStd[ax]

	if !prof.CorrTimeFinite(ax) {
		for j := 0; j < n; j++ {
			dst[j][ax] = std * innov[j][ax]
		}
		return
	}

	beta := dt / prof.BiasCorrTimeS[ax]
	a1 := math.Exp(-beta)
	a2 := std * math.Sqrt(1-math.Exp(-2*beta))
	for j := 1; j < n; j++ {
		dst[j][ax] = a1*dst[j-1][ax] + a2*innov[j-1][ax]
	}
}
