// Package traj builds reference trajectories from piecewise scenario
// definitions: each segment ramps the NED velocity and attitude linearly
// from the previous values to its targets while position is integrated
// over the WGS-84 ellipsoid. The output feeds the accelerometer
// synthesizer; the synthesizer itself never depends on this package.
package traj

import (
	"fmt"
	"math"

	"accel-sim/geo"
	"accel-sim/models"
)

// Segment describes one piecewise-linear leg of a scenario. Velocity and
// attitude are the values reached at the END of the segment; they ramp
// linearly from wherever the previous segment left off.
type Segment struct {
	DurationS   float64
	VelNED      [3]float64 // m/s, north-east-down
	AttitudeDeg [3]float64 // roll, pitch, yaw in degrees
}

// Scenario is a complete trajectory definition.
type Scenario struct {
	SampleRateHz float64

	// Initial geodetic position.
	LatDeg, LonDeg, HeightM float64

	// State at t = 0.
	InitialVelNED      [3]float64
	InitialAttitudeDeg [3]float64

	Segments []Segment
}

// Build samples the scenario at the configured rate and returns a fully
// populated reference trajectory (position, velocity and attitude).
func Build(sc *Scenario) (*models.RefTrajectory, error) {
	if sc.SampleRateHz <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sc.SampleRateHz)
	}
	if len(sc.Segments) == 0 {
		return nil, fmt.Errorf("scenario has no segments")
	}
	var total float64
	for i, seg := range sc.Segments {
		if seg.DurationS <= 0 {
			return nil, fmt.Errorf("segment %d has non-positive duration %g", i, seg.DurationS)
		}
		total += seg.DurationS
	}

	dt := 1 / sc.SampleRateHz
	n := int(total*sc.SampleRateHz) + 1

	t := &models.RefTrajectory{
		Time:        make([]float64, n),
		Lat:         make([]float64, n),
		Lon:         make([]float64, n),
		Height:      make([]float64, n),
		VelNED:      make([][3]float64, n),
		AttitudeDCM: make([][9]float64, n),
	}

	lat := sc.LatDeg * math.Pi / 180
	lon := sc.LonDeg * math.Pi / 180
	h := sc.HeightM

	for j := 0; j < n; j++ {
		now := float64(j) * dt
		vel, att := sc.stateAt(now)

		t.Time[j] = now
		t.Lat[j] = lat
		t.Lon[j] = lon
		t.Height[j] = h
		t.VelNED[j] = vel
		t.AttitudeDCM[j] = [9]float64(geo.DCMFromEuler(
			att[0]*math.Pi/180, att[1]*math.Pi/180, att[2]*math.Pi/180))

		// Integrate position forward over the ellipsoid.
		rm, rn := geo.RadiiOfCurvature(lat)
		lat += vel[0] / (rm + h) * dt
		lon += vel[1] / ((rn + h) * math.Cos(lat)) * dt
		h -= vel[2] * dt
	}
	return t, nil
}

// stateAt interpolates the scenario's velocity and attitude at time now.
func (sc *Scenario) stateAt(now float64) (vel, att [3]float64) {
	prevVel, prevAtt := sc.InitialVelNED, sc.InitialAttitudeDeg
	start := 0.0
	for _, seg := range sc.Segments {
		end := start + seg.DurationS
		if now <= end {
			f := (now - start) / seg.DurationS
			for i := 0; i < 3; i++ {
				vel[i] = prevVel[i] + f*(seg.VelNED[i]-prevVel[i])
				att[i] = prevAtt[i] + f*(seg.AttitudeDeg[i]-prevAtt[i])
			}
			return vel, att
		}
		prevVel, prevAtt = seg.VelNED, seg.AttitudeDeg
		start = end
	}
	// Past the last segment boundary (final epoch): hold the last targets.
	return prevVel, prevAtt
}
