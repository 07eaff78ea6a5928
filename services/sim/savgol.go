package sim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// savGol smooths one axis with a Savitzky-Golay filter: a least-squares
// polynomial of the given order is fitted over a sliding window and
// evaluated at the centre sample. Near the edges the polynomial fitted
// over the first (or last) full window is evaluated at the off-centre
// offset instead, so the output always has len(y) samples.
//
// If the series is shorter than the window, the window shrinks to the
// largest odd value that fits and the order is clamped to window-1. The
// caller is warned through the returned shrink flag rather than a failure,
// so short constant-velocity scenarios still smooth cleanly.
func savGol(y []float64, window, order int) (out []float64, shrunk bool, err error) {
	n := len(y)
	if n < 3 {
		return nil, false, fmt.Errorf("smoothing needs at least 3 samples, got %d", n)
	}
	if window%2 == 0 {
		return nil, false, fmt.Errorf("smoothing window must be odd, got %d", window)
	}
	if window > n {
		window = n
		if window%2 == 0 {
			window--
		}
		shrunk = true
	}
	if order >= window {
		order = window - 1
	}

	p, err := smoothingMatrix(window, order)
	if err != nil {
		return nil, shrunk, err
	}

	half := window / 2
	out = make([]float64, n)
	for j := 0; j < n; j++ {
		row, start := half, j-half
		switch {
		case start < 0:
			row, start = j, 0
		case start+window > n:
			start = n - window
			row = j - start
		}
		w := p.RawRowView(row)
		var s float64
		for k := 0; k < window; k++ {
			s += w[k] * y[start+k]
		}
		out[j] = s
	}
	return out, shrunk, nil
}

// smoothingMatrix returns the window×window projection P = A·pinv(A) onto
// the space of polynomials of the given order sampled at the window
// points. Row i of P evaluates the window's fitted polynomial at offset i.
// The abscissae are scaled to [-1, 1] to keep the Vandermonde basis well
// conditioned at high orders.
func smoothingMatrix(window, order int) (*mat.Dense, error) {
	half := window / 2
	a := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i-half) / float64(half)
		v := 1.0
		for k := 0; k <= order; k++ {
			a.Set(i, k, v)
			v *= x
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	eye := mat.NewDense(window, window, nil)
	for i := 0; i < window; i++ {
		eye.Set(i, i, 1)
	}

	var pinv mat.Dense
	if err := qr.SolveTo(&pinv, false, eye); err != nil {
		return nil, fmt.Errorf("smoothing matrix: %w", err)
	}

	var p mat.Dense
	p.Mul(a, &pinv)
	return &p, nil
}
