package sim

import (
	"fmt"

	"accel-sim/geo"
	"accel-sim/models"
	"accel-sim/utils"
)

// Source identifies which trajectory fields supplied the true specific
// force. The resolver picks exactly one branch per invocation, in
// priority order.
type Source int

const (
	// SourceDirect: the trajectory carried SpecificForce, used unchanged.
	SourceDirect Source = iota
	// SourceVelocity: differentiated and smoothed from VelNED.
	SourceVelocity
	// SourcePosition: VelNED was absent too; velocity was first derived
	// from the geodetic position history.
	SourcePosition
)

var sourceNames = [...]string{"direct", "velocity-derived", "position-derived"}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return "unknown"
}

// Savitzky-Golay settings for the derived-acceleration branches.
const (
	smoothWindow = 45
	smoothOrder  = 10
)

// resolveTrueAccel produces the N×3 true body-frame specific force.
func resolveTrueAccel(traj *models.RefTrajectory) ([][3]float64, Source, error) {
	switch {
	case traj.SpecificForce != nil:
		a := make([][3]float64, len(traj.SpecificForce))
		copy(a, traj.SpecificForce)
		return a, SourceDirect, nil

	case traj.VelNED != nil:
		a, err := velToBodyAccel(traj, traj.VelNED)
		return a, SourceVelocity, err

	default:
		vel := geo.PosToVelNED(traj.Time, traj.Lat, traj.Lon, traj.Height)
		a, err := velToBodyAccel(traj, vel)
		return a, SourcePosition, err
	}
}

// velToBodyAccel differentiates the NED velocity by first differences
// (first epoch defined as zero), smooths each axis, and rotates the result
// into the body frame via the transpose of the stored body→nav attitude.
func velToBodyAccel(traj *models.RefTrajectory, vel [][3]float64) ([][3]float64, error) {
	n := traj.Epochs()
	accNav := make([][3]float64, n)
	for j := 1; j < n; j++ {
		dt := traj.Time[j] - traj.Time[j-1]
		for ax := 0; ax < 3; ax++ {
			accNav[j][ax] = (vel[j][ax] - vel[j-1][ax]) / dt
		}
	}

	for ax := 0; ax < 3; ax++ {
		col := make([]float64, n)
		for j := range accNav {
			col[j] = accNav[j][ax]
		}
		sm, shrunk, err := savGol(col, smoothWindow, smoothOrder)
		if err != nil {
			return nil, fmt.Errorf("smooth axis %d: %w", ax, err)
		}
		if shrunk && ax == 0 {
			utils.L().Warnf("smoothing window %d exceeds %d epochs, shrunk to fit", smoothWindow, n)
		}
		for j := range sm {
			accNav[j][ax] = sm[j]
		}
	}

	return geo.NavToBody(traj.AttitudeDCM, accNav), nil
}
