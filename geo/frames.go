package geo

import "math"

// DCM is a 3×3 rotation matrix flattened row-major: entries are numbered
// left to right, top to bottom. Throughout this repo a DCM maps body-frame
// vectors into the navigation frame; the transpose maps the other way.
type DCM [9]float64

// IdentityDCM returns the no-rotation matrix.
func IdentityDCM() DCM {
	return DCM{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// DCMFromEuler builds the body→NED rotation for the ZYX convention:
// yaw about down, then pitch about east, then roll about north (rad).
func DCMFromEuler(roll, pitch, yaw float64) DCM {
	var (
		cphi, sphi = math.Cos(roll), math.Sin(roll)
		cth, sth   = math.Cos(pitch), math.Sin(pitch)
		cpsi, spsi = math.Cos(yaw), math.Sin(yaw)
	)
	return DCM{
		cpsi * cth, cpsi*sth*sphi - spsi*cphi, cpsi*sth*cphi + spsi*sphi,
		spsi * cth, spsi*sth*sphi + cpsi*cphi, spsi*sth*cphi - cpsi*sphi,
		-sth, cth * sphi, cth * cphi,
	}
}

// Apply rotates v by the matrix: r = C·v (body→nav for a body→nav DCM).
func (c DCM) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		c[0]*v[0] + c[1]*v[1] + c[2]*v[2],
		c[3]*v[0] + c[4]*v[1] + c[5]*v[2],
		c[6]*v[0] + c[7]*v[1] + c[8]*v[2],
	}
}

// ApplyT rotates v by the transpose: r = Cᵀ·v (nav→body for a body→nav
// DCM). Rotation matrices are orthonormal, so the transpose is the inverse.
func (c DCM) ApplyT(v [3]float64) [3]float64 {
	return [3]float64{
		c[0]*v[0] + c[3]*v[1] + c[6]*v[2],
		c[1]*v[0] + c[4]*v[1] + c[7]*v[2],
		c[2]*v[0] + c[5]*v[1] + c[8]*v[2],
	}
}

// NavToBody rotates a sequence of navigation-frame vectors into the body
// frame using the per-epoch flattened body→nav attitude rows.
func NavToBody(att [][9]float64, vecs [][3]float64) [][3]float64 {
	out := make([][3]float64, len(vecs))
	for j := range vecs {
		out[j] = DCM(att[j]).ApplyT(vecs[j])
	}
	return out
}

// PosToVelNED derives NED velocity from a geodetic position history by
// first differences over the ellipsoid. The first epoch's velocity is
// defined as zero, mirroring the first-difference acceleration convention.
func PosToVelNED(time, lat, lon, h []float64) [][3]float64 {
	n := len(time)
	vel := make([][3]float64, n)
	for j := 1; j < n; j++ {
		dt := time[j] - time[j-1]
		rm, rn := RadiiOfCurvature(lat[j-1])
		vel[j] = [3]float64{
			(lat[j] - lat[j-1]) * (rm + h[j-1]) / dt,
			(lon[j] - lon[j-1]) * (rn + h[j-1]) * math.Cos(lat[j-1]) / dt,
			-(h[j] - h[j-1]) / dt,
		}
	}
	return vel
}
