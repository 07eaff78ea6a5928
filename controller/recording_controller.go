package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"accel-sim/models"
	"accel-sim/services/sim"
	"accel-sim/utils"
	"accel-sim/views"
)

// RecordingController persists one simulation run into a fresh session
// directory:
//   - accel.csv  — the simulated specific-force measurements
//   - truth.csv  — true specific force plus body-frame gravity/Coriolis
//   - errors.csv — the per-epoch stochastic error terms
//
// The three products are independent column views of the same result, so
// they are written concurrently.
type RecordingController struct {
	outCfg     utils.OutputConfig
	sessionDir string

	accelWriter  *views.CSVWriter
	truthWriter  *views.CSVWriter
	errorsWriter *views.CSVWriter
}

// NewRecordingController sets up the session directory and CSV writers.
func NewRecordingController(outCfg utils.OutputConfig) (*RecordingController, error) {
	sess := utils.SessionName(outCfg.SessionPrefix)
	sessionDir := filepath.Join(outCfg.BaseDir, sess)

	if !outCfg.Overwrite {
		if _, err := os.Stat(sessionDir); err == nil {
			return nil, fmt.Errorf("session dir %s already exists (overwrite=false)", sessionDir)
		}
	}
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	bufSize := outCfg.CSV.BufferSizeKB * 1024
	rc := &RecordingController{outCfg: outCfg, sessionDir: sessionDir}

	var err error
	rc.accelWriter, err = views.NewCSVWriter(
		filepath.Join(sessionDir, views.OutputMeasurement.FileName()),
		bufSize, outCfg.CSV.WriteHeader, models.AccelSample{}.CSVHeader(),
	)
	if err != nil {
		return nil, err
	}
	rc.truthWriter, err = views.NewCSVWriter(
		filepath.Join(sessionDir, views.OutputTruth.FileName()),
		bufSize, outCfg.CSV.WriteHeader, models.TruthSample{}.CSVHeader(),
	)
	if err != nil {
		return nil, err
	}
	rc.errorsWriter, err = views.NewCSVWriter(
		filepath.Join(sessionDir, views.OutputErrors.FileName()),
		bufSize, outCfg.CSV.WriteHeader, models.ErrorSample{}.CSVHeader(),
	)
	if err != nil {
		return nil, err
	}

	utils.L().Infof("recording controller ready  session=%s", sessionDir)
	return rc, nil
}

// Write persists every epoch of the result and closes the writers.
func (rc *RecordingController) Write(traj *models.RefTrajectory, res *sim.Result) error {
	var g errgroup.Group

	g.Go(func() error {
		for j, m := range res.Measurement {
			s := models.AccelSample{TimeS: traj.Time[j], Fx: m[0], Fy: m[1], Fz: m[2]}
			rc.accelWriter.WriteRow(s.CSVRow())
		}
		return rc.accelWriter.Close()
	})

	g.Go(func() error {
		for j := range res.TrueAccel {
			s := models.TruthSample{
				TimeS: traj.Time[j],
				Ax:    res.TrueAccel[j][0], Ay: res.TrueAccel[j][1], Az: res.TrueAccel[j][2],
				GravX: res.GravityBody[j][0], GravY: res.GravityBody[j][1], GravZ: res.GravityBody[j][2],
				CorX: res.CoriolisBody[j][0], CorY: res.CoriolisBody[j][1], CorZ: res.CoriolisBody[j][2],
			}
			rc.truthWriter.WriteRow(s.CSVRow())
		}
		return rc.truthWriter.Close()
	})

	g.Go(func() error {
		for j := range res.WhiteNoise {
			s := models.ErrorSample{
				TimeS:  traj.Time[j],
				WhiteX: res.WhiteNoise[j][0], WhiteY: res.WhiteNoise[j][1], WhiteZ: res.WhiteNoise[j][2],
				BiasX: res.FixedBias[0], BiasY: res.FixedBias[1], BiasZ: res.FixedBias[2],
				DriftX: res.BiasDrift[j][0], DriftY: res.BiasDrift[j][1], DriftZ: res.BiasDrift[j][2],
			}
			rc.errorsWriter.WriteRow(s.CSVRow())
		}
		return rc.errorsWriter.Close()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	utils.L().Infof("recording complete      (rows=%d, session=%s)",
		rc.accelWriter.Rows(), rc.sessionDir)
	return nil
}

// SessionDir returns the path to the active session directory.
func (rc *RecordingController) SessionDir() string {
	return rc.sessionDir
}

// RowsWritten returns the number of measurement rows persisted.
func (rc *RecordingController) RowsWritten() uint64 {
	return rc.accelWriter.Rows()
}
