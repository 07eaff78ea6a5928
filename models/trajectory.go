package models

import (
	"fmt"
)

// RefTrajectory describes the true motion and attitude of the sensor
// platform over N epochs. All per-epoch slices must have exactly N entries;
// VelNED and SpecificForce are optional (nil means "not provided").
//
// Units: Time in seconds, Lat/Lon in radians, Height in metres,
// velocities in m/s, specific force in m/s². AttitudeDCM rows are 3×3
// body-to-navigation rotation matrices flattened row-major, left to right,
// top to bottom.
type RefTrajectory struct {
	Time   []float64
	Lat    []float64
	Lon    []float64
	Height []float64

	// VelNED is the navigation-frame (north-east-down) velocity, optional.
	VelNED [][3]float64

	// SpecificForce is the true body-frame acceleration, optional.
	// When present it takes precedence over any derived computation.
	SpecificForce [][3]float64

	// AttitudeDCM holds one flattened body→nav rotation per epoch.
	AttitudeDCM [][9]float64
}

// Epochs returns N, the number of time samples.
func (t *RefTrajectory) Epochs() int { return len(t.Time) }

// Validate fails fast on shape mismatches before any computation runs.
// Non-finite values are deliberately not guarded; they propagate into the
// output unchanged.
func (t *RefTrajectory) Validate() error {
	n := len(t.Time)
	if n == 0 {
		return fmt.Errorf("trajectory has no epochs")
	}
	for j := 1; j < n; j++ {
		if t.Time[j] <= t.Time[j-1] {
			return fmt.Errorf("time must be strictly increasing (epoch %d: %g after %g)",
				j, t.Time[j], t.Time[j-1])
		}
	}
	if len(t.Lat) != n {
		return fmt.Errorf("latitude has %d epochs, want %d", len(t.Lat), n)
	}
	if len(t.Lon) != n {
		return fmt.Errorf("longitude has %d epochs, want %d", len(t.Lon), n)
	}
	if len(t.Height) != n {
		return fmt.Errorf("height has %d epochs, want %d", len(t.Height), n)
	}
	if len(t.AttitudeDCM) != n {
		return fmt.Errorf("attitude has %d epochs, want %d", len(t.AttitudeDCM), n)
	}
	if t.VelNED != nil && len(t.VelNED) != n {
		return fmt.Errorf("velocity has %d epochs, want %d", len(t.VelNED), n)
	}
	if t.SpecificForce != nil && len(t.SpecificForce) != n {
		return fmt.Errorf("specific force has %d epochs, want %d", len(t.SpecificForce), n)
	}
	return nil
}
