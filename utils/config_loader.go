package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"accel-sim/models"
)

// ─── Scenario config ────────────────────────────────────────────────────

// SegmentConfig is one piecewise-linear leg of the scenario.
type SegmentConfig struct {
	DurationS   float64   `yaml:"duration_s"`
	VelocityNED []float64 `yaml:"velocity_ned"`
	AttitudeDeg []float64 `yaml:"attitude_deg"`
}

type InitialConfig struct {
	LatitudeDeg  float64   `yaml:"latitude_deg"`
	LongitudeDeg float64   `yaml:"longitude_deg"`
	HeightM      float64   `yaml:"height_m"`
	VelocityNED  []float64 `yaml:"velocity_ned"`
	AttitudeDeg  []float64 `yaml:"attitude_deg"`
}

type TrajectoryConfig struct {
	Name         string          `yaml:"name"`
	Seed         uint64          `yaml:"seed"`
	SampleRateHz float64         `yaml:"sample_rate_hz"`
	Initial      InitialConfig   `yaml:"initial"`
	Segments     []SegmentConfig `yaml:"segments"`
}

// AccelConfig mirrors models.AccelProfile in yaml form. Per-axis vectors
// are plain sequences so a wrong length surfaces as a descriptive shape
// error instead of a silent truncation.
type AccelConfig struct {
	WhiteNoiseStd  []float64 `yaml:"white_noise_std"`
	FixedBiasBound []float64 `yaml:"fixed_bias_bound"`
	BiasCorrTimeS  []float64 `yaml:"bias_corr_time_s"`
	BiasDriftStd   []float64 `yaml:"bias_drift_std"`
}

// ─── Output config ──────────────────────────────────────────────────────

type CSVStorageConfig struct {
	BufferSizeKB int  `yaml:"buffer_size_kb"`
	WriteHeader  bool `yaml:"write_header"`
}

type OutputConfig struct {
	BaseDir       string           `yaml:"base_dir"`
	SessionPrefix string           `yaml:"session_prefix"`
	Overwrite     bool             `yaml:"overwrite"`
	CSV           CSVStorageConfig `yaml:"csv"`
}

// ScenarioConfig is the top-level structure for scenario.yaml.
type ScenarioConfig struct {
	Scenario      TrajectoryConfig `yaml:"scenario"`
	Accelerometer AccelConfig      `yaml:"accelerometer"`
	Output        OutputConfig     `yaml:"output"`
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadScenarioConfig reads and parses scenario.yaml.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario config: %w", err)
	}
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scenario config: %w", err)
	}
	return &cfg, nil
}

// Profile converts the accelerometer section into a validated error
// profile, using the scenario sample rate as the sensor rate.
func (c *ScenarioConfig) Profile() (*models.AccelProfile, error) {
	p := &models.AccelProfile{SampleFreqHz: c.Scenario.SampleRateHz}

	var err error
	if p.WhiteNoiseStd, err = AxisVec("white_noise_std", c.Accelerometer.WhiteNoiseStd); err != nil {
		return nil, err
	}
	if p.FixedBiasBound, err = AxisVec("fixed_bias_bound", c.Accelerometer.FixedBiasBound); err != nil {
		return nil, err
	}
	if p.BiasCorrTimeS, err = AxisVec("bias_corr_time_s", c.Accelerometer.BiasCorrTimeS); err != nil {
		return nil, err
	}
	if p.BiasDriftStd, err = AxisVec("bias_drift_std", c.Accelerometer.BiasDriftStd); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// AxisVec enforces the three-entries-per-axis invariant on config vectors.
func AxisVec(name string, v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf("%s must have exactly 3 entries, got %d", name, len(v))
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}
