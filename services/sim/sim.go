// Package sim synthesizes accelerometer ("specific force") measurements in
// the sensor body frame from a reference trajectory and an error profile.
//
// The pipeline has four stages per invocation:
//  1. resolve the true body-frame specific force (direct, velocity-derived
//     or position-derived, in that priority order),
//  2. compute per-epoch gravity and Coriolis in the navigation frame and
//     rotate both into the body frame,
//  3. synthesize the stochastic error terms (fixed bias, white noise,
//     bias instability),
//  4. combine: meas = true − coriolis + gravity + white + bias + drift.
//
// Stages 1 and 2 are independent and run concurrently; stage 3 draws from
// the caller's random source; stage 4 is a pure elementwise sum.
package sim

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"accel-sim/geo"
	"accel-sim/models"
)

// Result carries the simulated measurement plus every intermediate
// sequence, so callers can export or validate each term separately.
type Result struct {
	// Measurement is the final N×3 simulated specific force, m/s².
	Measurement [][3]float64

	// Source records which resolver branch produced TrueAccel.
	Source Source

	TrueAccel    [][3]float64
	GravityBody  [][3]float64
	CoriolisBody [][3]float64

	FixedBias  [3]float64
	WhiteNoise [][3]float64
	BiasDrift  [][3]float64
}

// Simulate produces an N×3 simulated accelerometer output for the given
// reference trajectory and error profile. Inputs are read-only; the result
// is freshly allocated per call. rng may be nil, in which case a
// time-seeded source is used; pass a seeded source for reproducible runs.
func Simulate(traj *models.RefTrajectory, prof *models.AccelProfile, rng *rand.Rand) (*Result, error) {
	if err := traj.Validate(); err != nil {
		return nil, fmt.Errorf("trajectory: %w", err)
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("error profile: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	n := traj.Epochs()
	res := &Result{}

	// Stages 1 and 2 are independent of each other; stage 3 must stay on
	// this goroutine so all draws come from the caller's source in order.
	var g errgroup.Group
	g.Go(func() error {
		ta, src, err := resolveTrueAccel(traj)
		res.TrueAccel, res.Source = ta, src
		return err
	})
	g.Go(func() error {
		res.GravityBody, res.CoriolisBody = gravityCoriolisBody(traj)
		return nil
	})

	terms := synthesizeErrors(n, prof, rng)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.FixedBias = terms.fixedBias
	res.WhiteNoise = terms.white
	res.BiasDrift = terms.drift

	res.Measurement = make([][3]float64, n)
	for j := 0; j < n; j++ {
		for ax := 0; ax < 3; ax++ {
			res.Measurement[j][ax] = res.TrueAccel[j][ax] -
				res.CoriolisBody[j][ax] + res.GravityBody[j][ax] +
				terms.white[j][ax] + terms.fixedBias[ax] + terms.drift[j][ax]
		}
	}
	return res, nil
}

// gravityCoriolisBody computes gravity and Coriolis in NED per epoch and
// rotates both into the body frame with the same transpose convention the
// resolver uses. When the trajectory carries no velocity the Coriolis
// velocity is derived from the position history instead.
func gravityCoriolisBody(traj *models.RefTrajectory) (grav, cor [][3]float64) {
	n := traj.Epochs()
	vel := traj.VelNED
	if vel == nil {
		vel = geo.PosToVelNED(traj.Time, traj.Lat, traj.Lon, traj.Height)
	}

	grav = make([][3]float64, n)
	cor = make([][3]float64, n)
	for j := 0; j < n; j++ {
		c := geo.DCM(traj.AttitudeDCM[j])
		grav[j] = c.ApplyT(geo.GravityNED(traj.Lat[j], traj.Height[j]))
		cor[j] = c.ApplyT(geo.CoriolisNED(traj.Lat[j], vel[j], traj.Height[j]))
	}
	return grav, cor
}
