package models

// AccelSample holds one simulated specific-force measurement epoch.
type AccelSample struct {
	TimeS float64 `json:"time_s"`
	Fx    float64 `json:"fx"` // m/s², body x
	Fy    float64 `json:"fy"`
	Fz    float64 `json:"fz"`
}

func (AccelSample) CSVHeader() []string {
	return []string{"time_s", "fx_mps2", "fy_mps2", "fz_mps2"}
}

func (s *AccelSample) CSVRow() []string {
	return []string{
		ftoa(s.TimeS, 6),
		ftoa(s.Fx, 9), ftoa(s.Fy, 9), ftoa(s.Fz, 9),
	}
}

// TruthSample holds the deterministic part of one epoch: the true specific
// force plus the body-frame gravity and Coriolis projections that went into
// the measurement.
type TruthSample struct {
	TimeS              float64 `json:"time_s"`
	Ax, Ay, Az         float64 `json:"-"` // true specific force, body frame
	GravX, GravY, GravZ float64 `json:"-"`
	CorX, CorY, CorZ   float64 `json:"-"`
}

func (TruthSample) CSVHeader() []string {
	return []string{
		"time_s",
		"accel_x", "accel_y", "accel_z",
		"grav_bx", "grav_by", "grav_bz",
		"cor_bx", "cor_by", "cor_bz",
	}
}

func (s *TruthSample) CSVRow() []string {
	return []string{
		ftoa(s.TimeS, 6),
		ftoa(s.Ax, 9), ftoa(s.Ay, 9), ftoa(s.Az, 9),
		ftoa(s.GravX, 9), ftoa(s.GravY, 9), ftoa(s.GravZ, 9),
		ftoa(s.CorX, 9), ftoa(s.CorY, 9), ftoa(s.CorZ, 9),
	}
}

// ErrorSample holds the per-epoch stochastic error terms. The fixed bias
// is constant within a run but repeated per row so the file is
// self-contained.
type ErrorSample struct {
	TimeS                  float64
	WhiteX, WhiteY, WhiteZ float64
	BiasX, BiasY, BiasZ    float64
	DriftX, DriftY, DriftZ float64
}

func (ErrorSample) CSVHeader() []string {
	return []string{
		"time_s",
		"white_x", "white_y", "white_z",
		"bias_x", "bias_y", "bias_z",
		"drift_x", "drift_y", "drift_z",
	}
}

func (s *ErrorSample) CSVRow() []string {
	return []string{
		ftoa(s.TimeS, 6),
		ftoa(s.WhiteX, 9), ftoa(s.WhiteY, 9), ftoa(s.WhiteZ, 9),
		ftoa(s.BiasX, 9), ftoa(s.BiasY, 9), ftoa(s.BiasZ, 9),
		ftoa(s.DriftX, 9), ftoa(s.DriftY, 9), ftoa(s.DriftZ, 9),
	}
}
