// Package geo provides the earth-model and coordinate-frame primitives the
// accelerometer synthesizer consumes: WGS-84 normal gravity, craft-rate
// Coriolis acceleration, ellipsoidal position→velocity derivation, and
// direction-cosine-matrix helpers.
package geo

import "math"

// WGS-84 ellipsoid and earth rotation constants.
const (
	SemiMajorAxis = 6378137.0             // m
	Flattening    = 1.0 / 298.257223563   //
	Eccentricity2 = Flattening * (2 - Flattening)
	EarthRate     = 7.292115e-5 // rad/s

	gravityEquator = 9.7803253359 // m/s², normal gravity at the equator
	somiglianaK    = 1.931852652458e-3
	gravityRatioM  = 3.44978650684e-3 // ω²a²b/GM
)

// NormalGravity returns the magnitude of normal gravity at geodetic
// latitude lat (rad) and height h (m): the Somigliana closed form on the
// ellipsoid surface plus the standard height correction.
func NormalGravity(lat, h float64) float64 {
	s2 := math.Sin(lat) * math.Sin(lat)
	g0 := gravityEquator * (1 + somiglianaK*s2) / math.Sqrt(1-Eccentricity2*s2)
	return g0 * (1 - 2/SemiMajorAxis*(1+Flattening+gravityRatioM-2*Flattening*s2)*h +
		3/(SemiMajorAxis*SemiMajorAxis)*h*h)
}

// GravityNED returns the local gravity vector in the north-east-down
// navigation frame. Normal gravity points along the down axis.
func GravityNED(lat, h float64) [3]float64 {
	return [3]float64{0, 0, NormalGravity(lat, h)}
}

// RadiiOfCurvature returns the meridian (north-south) and transverse
// (east-west) radii of curvature of the ellipsoid at latitude lat.
func RadiiOfCurvature(lat float64) (rm, rn float64) {
	s2 := math.Sin(lat) * math.Sin(lat)
	d := 1 - Eccentricity2*s2
	rn = SemiMajorAxis / math.Sqrt(d)
	rm = SemiMajorAxis * (1 - Eccentricity2) / (d * math.Sqrt(d))
	return rm, rn
}

// CoriolisNED returns the Coriolis acceleration (2ω_ie + ω_en) × v in the
// navigation frame for a craft moving at NED velocity vel at latitude lat
// (rad) and height h (m). ω_en is the transport rate of the local-level
// frame over the ellipsoid, which is why height enters.
func CoriolisNED(lat float64, vel [3]float64, h float64) [3]float64 {
	rm, rn := RadiiOfCurvature(lat)

	// Earth rate resolved in NED.
	wieN := EarthRate * math.Cos(lat)
	wieD := -EarthRate * math.Sin(lat)

	// Transport rate of the navigation frame.
	wenN := vel[1] / (rn + h)
	wenE := -vel[0] / (rm + h)
	wenD := -vel[1] * math.Tan(lat) / (rn + h)

	wN := 2*wieN + wenN
	wE := wenE
	wD := 2*wieD + wenD

	return [3]float64{
		wE*vel[2] - wD*vel[1],
		wD*vel[0] - wN*vel[2],
		wN*vel[1] - wE*vel[0],
	}
}
