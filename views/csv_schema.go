package views

// OutputKind identifies one of the CSV products of a simulation session.
// The column layouts here are the single source of truth for ordering;
// the actual header writing is handled by each model's CSVHeader() method
// and validated against this table in tests.
type OutputKind int

const (
	OutputMeasurement OutputKind = iota // accel.csv — simulated specific force
	OutputTruth                         // truth.csv — true accel + body gravity/Coriolis
	OutputErrors                        // errors.csv — per-epoch stochastic terms
)

var outputNames = map[OutputKind]string{
	OutputMeasurement: "accel",
	OutputTruth:       "truth",
	OutputErrors:      "errors",
}

func (k OutputKind) String() string {
	if n, ok := outputNames[k]; ok {
		return n
	}
	return "unknown"
}

// FileName returns the CSV file name for this product.
func (k OutputKind) FileName() string {
	return k.String() + ".csv"
}

// SchemaColumns is the canonical column list per product.
var SchemaColumns = map[OutputKind][]string{
	OutputMeasurement: {
		"time_s", "fx_mps2", "fy_mps2", "fz_mps2",
	},
	OutputTruth: {
		"time_s",
		"accel_x", "accel_y", "accel_z",
		"grav_bx", "grav_by", "grav_bz",
		"cor_bx", "cor_by", "cor_bz",
	},
	OutputErrors: {
		"time_s",
		"white_x", "white_y", "white_z",
		"bias_x", "bias_y", "bias_z",
		"drift_x", "drift_y", "drift_z",
	},
}
