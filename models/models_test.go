package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrajectory(n int) *RefTrajectory {
	t := &RefTrajectory{
		Time:        make([]float64, n),
		Lat:         make([]float64, n),
		Lon:         make([]float64, n),
		Height:      make([]float64, n),
		AttitudeDCM: make([][9]float64, n),
	}
	for j := 0; j < n; j++ {
		t.Time[j] = float64(j) * 0.01
		t.AttitudeDCM[j] = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	}
	return t
}

func TestRefTrajectoryValidate(t *testing.T) {
	t.Run("accepts a well-formed trajectory", func(t *testing.T) {
		traj := validTrajectory(10)
		require.NoError(t, traj.Validate())
		assert.Equal(t, 10, traj.Epochs())
	})

	t.Run("optional fields may be nil or full length", func(t *testing.T) {
		traj := validTrajectory(10)
		assert.NoError(t, traj.Validate())
		traj.VelNED = make([][3]float64, 10)
		traj.SpecificForce = make([][3]float64, 10)
		assert.NoError(t, traj.Validate())
	})

	t.Run("rejects empty trajectory", func(t *testing.T) {
		var traj RefTrajectory
		assert.ErrorContains(t, traj.Validate(), "no epochs")
	})

	t.Run("rejects non-monotonic time", func(t *testing.T) {
		traj := validTrajectory(10)
		traj.Time[5] = traj.Time[4]
		assert.ErrorContains(t, traj.Validate(), "strictly increasing")
	})

	t.Run("rejects length mismatches", func(t *testing.T) {
		cases := map[string]func(*RefTrajectory){
			"latitude":       func(tr *RefTrajectory) { tr.Lat = tr.Lat[:5] },
			"longitude":      func(tr *RefTrajectory) { tr.Lon = tr.Lon[:5] },
			"height":         func(tr *RefTrajectory) { tr.Height = tr.Height[:5] },
			"attitude":       func(tr *RefTrajectory) { tr.AttitudeDCM = tr.AttitudeDCM[:5] },
			"velocity":       func(tr *RefTrajectory) { tr.VelNED = make([][3]float64, 5) },
			"specific force": func(tr *RefTrajectory) { tr.SpecificForce = make([][3]float64, 5) },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				traj := validTrajectory(10)
				mutate(traj)
				assert.ErrorContains(t, traj.Validate(), name)
			})
		}
	})
}

func TestAccelProfileValidate(t *testing.T) {
	t.Run("accepts a quiet profile", func(t *testing.T) {
		p := &AccelProfile{SampleFreqHz: 100}
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects bad settings", func(t *testing.T) {
		cases := map[string]*AccelProfile{
			"sample frequency": {},
			"white noise std":  {SampleFreqHz: 100, WhiteNoiseStd: [3]float64{0, -1, 0}},
			"fixed bias bound": {SampleFreqHz: 100, FixedBiasBound: [3]float64{-0.1, 0, 0}},
			"bias drift std":   {SampleFreqHz: 100, BiasDriftStd: [3]float64{0, 0, -1e-9}},
		}
		for name, p := range cases {
			t.Run(name, func(t *testing.T) {
				assert.ErrorContains(t, p.Validate(), name)
			})
		}
	})
}

func TestCorrTimeFinite(t *testing.T) {
	p := &AccelProfile{BiasCorrTimeS: [3]float64{300, 0, math.Inf(1)}}
	assert.True(t, p.CorrTimeFinite(0))
	assert.False(t, p.CorrTimeFinite(1), "non-positive sentinel")
	assert.False(t, p.CorrTimeFinite(2), "+Inf sentinel")
}

func TestCSVRowsMatchHeaders(t *testing.T) {
	accel := &AccelSample{TimeS: 1.5, Fx: 0.1, Fy: -0.2, Fz: 9.81}
	truth := &TruthSample{TimeS: 1.5}
	errs := &ErrorSample{TimeS: 1.5}

	assert.Len(t, accel.CSVRow(), len(accel.CSVHeader()))
	assert.Len(t, truth.CSVRow(), len(truth.CSVHeader()))
	assert.Len(t, errs.CSVRow(), len(errs.CSVHeader()))

	assert.Equal(t, "1.500000", accel.CSVRow()[0])
	assert.Equal(t, "9.810000000", accel.CSVRow()[3])
}
