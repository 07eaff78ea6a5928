package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"accel-sim/geo"
	"accel-sim/models"
)

// staticTraj builds an n-epoch trajectory at a fixed position with
// identity attitude and no optional fields set.
func staticTraj(n int) *models.RefTrajectory {
	t := &models.RefTrajectory{
		Time:        make([]float64, n),
		Lat:         make([]float64, n),
		Lon:         make([]float64, n),
		Height:      make([]float64, n),
		AttitudeDCM: make([][9]float64, n),
	}
	for j := 0; j < n; j++ {
		t.Time[j] = float64(j) * 0.01
		t.Lat[j] = 0.6
		t.Lon[j] = 1.3
		t.Height[j] = 500
		t.AttitudeDCM[j] = [9]float64(geo.IdentityDCM())
	}
	return t
}

func constVec(n int, v [3]float64) [][3]float64 {
	out := make([][3]float64, n)
	for j := range out {
		out[j] = v
	}
	return out
}

func quietProfile() *models.AccelProfile {
	return &models.AccelProfile{SampleFreqHz: 100}
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSimulateShapeInvariant(t *testing.T) {
	const n = 64

	cases := map[string]func(*models.RefTrajectory){
		"direct":           func(tr *models.RefTrajectory) { tr.SpecificForce = constVec(n, [3]float64{0, 0, -9.8}) },
		"velocity-derived": func(tr *models.RefTrajectory) { tr.VelNED = constVec(n, [3]float64{10, 0, 0}) },
		"position-derived": func(tr *models.RefTrajectory) {},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tr := staticTraj(n)
			mutate(tr)

			res, err := Simulate(tr, quietProfile(), seeded(1))
			require.NoError(t, err)
			assert.Len(t, res.Measurement, n)
			assert.Len(t, res.TrueAccel, n)
			assert.Len(t, res.GravityBody, n)
			assert.Len(t, res.CoriolisBody, n)
		})
	}
}

func TestSimulateZeroNoiseIdempotence(t *testing.T) {
	tr := staticTraj(32)
	tr.SpecificForce = constVec(32, [3]float64{0.1, -0.2, 9.75})

	res, err := Simulate(tr, quietProfile(), seeded(7))
	require.NoError(t, err)

	for j := range res.Measurement {
		for ax := 0; ax < 3; ax++ {
			want := res.TrueAccel[j][ax] - res.CoriolisBody[j][ax] + res.GravityBody[j][ax]
			assert.Equal(t, want, res.Measurement[j][ax], "epoch %d axis %d", j, ax)
		}
	}
	assert.Equal(t, [3]float64{}, res.FixedBias)
}

func TestSimulateResolverPrecedence(t *testing.T) {
	// Both specific force and velocity present: the stored specific force
	// must be used verbatim.
	tr := staticTraj(16)
	sf := [3]float64{1.5, -0.5, 9.0}
	tr.SpecificForce = constVec(16, sf)
	tr.VelNED = constVec(16, [3]float64{100, 100, 100})

	res, err := Simulate(tr, quietProfile(), seeded(3))
	require.NoError(t, err)

	assert.Equal(t, SourceDirect, res.Source)
	for j := range res.TrueAccel {
		assert.Equal(t, sf, res.TrueAccel[j])
	}
}

func TestSimulateConstantVelocityShortSeries(t *testing.T) {
	// N = 5, time 0..4 s, constant velocity, identity attitude: the
	// first-difference acceleration is identically zero even though the
	// series is far shorter than the smoothing window.
	tr := &models.RefTrajectory{
		Time:        []float64{0, 1, 2, 3, 4},
		Lat:         make([]float64, 5),
		Lon:         make([]float64, 5),
		Height:      make([]float64, 5),
		AttitudeDCM: make([][9]float64, 5),
		VelNED:      constVec(5, [3]float64{1, 0, 0}),
	}
	for j := range tr.AttitudeDCM {
		tr.AttitudeDCM[j] = [9]float64(geo.IdentityDCM())
	}

	prof := &models.AccelProfile{SampleFreqHz: 1}
	res, err := Simulate(tr, prof, seeded(9))
	require.NoError(t, err)
	require.Equal(t, SourceVelocity, res.Source)

	for j := range res.TrueAccel {
		for ax := 0; ax < 3; ax++ {
			assert.InDelta(t, 0, res.TrueAccel[j][ax], 1e-12, "epoch %d axis %d", j, ax)
		}
	}
	// With zero stochastic terms the measurement reduces to the
	// deterministic gravity/Coriolis contribution.
	for j := range res.Measurement {
		for ax := 0; ax < 3; ax++ {
			want := res.GravityBody[j][ax] - res.CoriolisBody[j][ax]
			assert.InDelta(t, want, res.Measurement[j][ax], 1e-12)
		}
	}
}

func TestSimulateVelocityBranchRotation(t *testing.T) {
	// 90° yaw throughout: a northward velocity ramp is a body-frame −y
	// acceleration after the nav→body rotation.
	const n = 100
	tr := staticTraj(n)
	tr.VelNED = make([][3]float64, n)
	yaw := geo.DCMFromEuler(0, 0, math.Pi/2)
	for j := 0; j < n; j++ {
		tr.VelNED[j] = [3]float64{2 * tr.Time[j], 0, 0} // 2 m/s² north ramp
		tr.AttitudeDCM[j] = [9]float64(yaw)
	}

	res, err := Simulate(tr, quietProfile(), seeded(11))
	require.NoError(t, err)
	require.Equal(t, SourceVelocity, res.Source)

	// Interior epochs: the smoothed derivative of a linear ramp is the
	// ramp slope (the zero-defined first epoch perturbs the leading edge).
	for j := 30; j < n-10; j++ {
		assert.InDelta(t, 0, res.TrueAccel[j][0], 1e-6, "epoch %d body x", j)
		assert.InDelta(t, -2, res.TrueAccel[j][1], 1e-6, "epoch %d body y", j)
		assert.InDelta(t, 0, res.TrueAccel[j][2], 1e-6, "epoch %d body z", j)
	}
}

func TestSimulateValidation(t *testing.T) {
	t.Run("shape mismatch fails fast", func(t *testing.T) {
		tr := staticTraj(10)
		tr.Lat = tr.Lat[:5]
		_, err := Simulate(tr, quietProfile(), seeded(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("bad profile fails fast", func(t *testing.T) {
		tr := staticTraj(10)
		tr.SpecificForce = constVec(10, [3]float64{})
		_, err := Simulate(tr, &models.AccelProfile{SampleFreqHz: 0}, seeded(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sample frequency")
	})

	t.Run("non-monotonic time rejected", func(t *testing.T) {
		tr := staticTraj(10)
		tr.Time[5] = tr.Time[4]
		_, err := Simulate(tr, quietProfile(), seeded(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strictly increasing")
	})
}

func TestSimulateReproducible(t *testing.T) {
	tr := staticTraj(256)
	tr.SpecificForce = constVec(256, [3]float64{0, 0, 9.8})
	prof := &models.AccelProfile{
		SampleFreqHz:   100,
		WhiteNoiseStd:  [3]float64{0.02, 0.02, 0.02},
		FixedBiasBound: [3]float64{0.05, 0.05, 0.05},
		BiasCorrTimeS:  [3]float64{100, 100, 100},
		BiasDriftStd:   [3]float64{0.005, 0.005, 0.005},
	}

	a, err := Simulate(tr, prof, seeded(42))
	require.NoError(t, err)
	b, err := Simulate(tr, prof, seeded(42))
	require.NoError(t, err)

	assert.Equal(t, a.FixedBias, b.FixedBias)
	assert.Equal(t, a.Measurement, b.Measurement)

	c, err := Simulate(tr, prof, seeded(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Measurement, c.Measurement)
}
