package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalGravity(t *testing.T) {
	t.Run("matches known values at the ellipsoid surface", func(t *testing.T) {
		assert.InDelta(t, 9.7803, NormalGravity(0, 0), 1e-3, "equator")
		assert.InDelta(t, 9.8322, NormalGravity(math.Pi/2, 0), 1e-3, "pole")
	})

	t.Run("decreases with height", func(t *testing.T) {
		lat := 45 * math.Pi / 180
		g0 := NormalGravity(lat, 0)
		g1 := NormalGravity(lat, 10000)
		assert.Less(t, g1, g0)
		// Free-air gradient is roughly 3.1e-6 (m/s²)/m.
		assert.InDelta(t, 3.1e-6, (g0-g1)/10000, 3e-7)
	})
}

func TestGravityNED(t *testing.T) {
	g := GravityNED(0.5, 100)
	assert.Zero(t, g[0])
	assert.Zero(t, g[1])
	assert.InDelta(t, NormalGravity(0.5, 100), g[2], 0)
}

func TestRadiiOfCurvature(t *testing.T) {
	t.Run("equator", func(t *testing.T) {
		rm, rn := RadiiOfCurvature(0)
		assert.InDelta(t, 6335439, rm, 1e3)
		assert.InDelta(t, SemiMajorAxis, rn, 1e-6)
	})

	t.Run("meridian radius grows toward the pole", func(t *testing.T) {
		rmEq, _ := RadiiOfCurvature(0)
		rmPole, _ := RadiiOfCurvature(math.Pi / 2)
		assert.Greater(t, rmPole, rmEq)
	})
}

func TestCoriolisNED(t *testing.T) {
	t.Run("zero velocity gives zero acceleration", func(t *testing.T) {
		c := CoriolisNED(0.7, [3]float64{0, 0, 0}, 500)
		assert.Zero(t, c[0])
		assert.Zero(t, c[1])
		assert.Zero(t, c[2])
	})

	t.Run("northward motion at mid latitude", func(t *testing.T) {
		lat := 45 * math.Pi / 180
		c := CoriolisNED(lat, [3]float64{100, 0, 0}, 0)

		// Dominant term is 2·ω_ie×v with ω_ie = Ω(cosφ, 0, −sinφ):
		// east component is −2·Ω·sin(φ)·v_N.
		want := -2 * EarthRate * math.Sin(lat) * 100
		assert.InDelta(t, want, c[1], 1e-5)
	})

	t.Run("magnitude scales linearly with speed", func(t *testing.T) {
		lat := 30 * math.Pi / 180
		c1 := CoriolisNED(lat, [3]float64{10, 0, 0}, 0)
		c2 := CoriolisNED(lat, [3]float64{20, 0, 0}, 0)
		require.NotZero(t, c1[1])
		assert.InEpsilon(t, 2, c2[1]/c1[1], 1e-6)
	})
}
