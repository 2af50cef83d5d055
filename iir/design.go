package iir

import (
	"math"
)

// BiquadCoefficients holds unnormalized cookbook coefficients for
//
//	H(z) = (b0 + b1 z^-1 + b2 z^-2) / (a0 + a1 z^-1 + a2 z^-2)
type BiquadCoefficients struct {
	A0, A1, A2 float64
	B0, B1, B2 float64
}

// Normalized divides through by a0 and returns the coefficient vectors used
// by Linear. The feedback terms are negated because Linear adds them.
func (c BiquadCoefficients) Normalized() (input, output []float64) {
	input = []float64{c.B0 / c.A0, c.B1 / c.A0, c.B2 / c.A0}
	output = []float64{0, -c.A1 / c.A0, -c.A2 / c.A0}
	return input, output
}

// BiquadDesign computes biquad coefficients from parameters.
type BiquadDesign func(p BiquadParams) BiquadCoefficients

// LevelCoefficients returns the single input coefficient of a gain stage.
func LevelCoefficients(p LevelParams) (input, output []float64) {
	return []float64{p.Gain}, []float64{}
}

// LowPassAlpha returns c/(c+1) with c = 2*pi*f/fs, the smoothing factor of
// y[n] = alpha*x[n] + (1-alpha)*y[n-1].
func LowPassAlpha(p LowPassParams) float64 {
	c := 2 * math.Pi * p.Frequency / p.SampleRate
	return c / (c + 1)
}

// LowPassCoefficients returns the coefficient vectors for a one-pole low-pass.
func LowPassCoefficients(p LowPassParams) (input, output []float64) {
	alpha := LowPassAlpha(p)
	return []float64{alpha}, []float64{0, 1 - alpha}
}

// HighPassAlpha returns 1/(c+1) with c = 2*pi*f/fs, the factor of
// y[n] = alpha*y[n-1] + alpha*(x[n]-x[n-1]).
func HighPassAlpha(p HighPassParams) float64 {
	c := 2 * math.Pi * p.Frequency / p.SampleRate
	return 1 / (c + 1)
}

// HighPassCoefficients returns the coefficient vectors for a one-pole high-pass.
func HighPassCoefficients(p HighPassParams) (input, output []float64) {
	alpha := HighPassAlpha(p)
	return []float64{alpha, -alpha}, []float64{0, alpha}
}

// LowShelfCoefficients designs a cookbook low shelf.
func LowShelfCoefficients(p BiquadParams) BiquadCoefficients {
	a := p.A()
	omega0 := p.Omega0()
	alpha := p.Alpha(omega0)
	cosw := p.CosW(omega0)

	ap := a + 1
	am := a - 1
	rootA2Alpha := 2 * math.Sqrt(a) * alpha

	return BiquadCoefficients{
		B0: a * (ap - am*cosw + rootA2Alpha),
		B1: 2 * a * (am - ap*cosw),
		B2: a * (ap - am*cosw - rootA2Alpha),
		A0: ap + am*cosw + rootA2Alpha,
		A1: -2 * (am + ap*cosw),
		A2: ap + am*cosw - rootA2Alpha,
	}
}

// PeakingCoefficients designs a cookbook peaking EQ.
func PeakingCoefficients(p BiquadParams) BiquadCoefficients {
	a := p.A()
	omega0 := p.Omega0()
	alpha := p.Alpha(omega0)
	cosw := p.CosW(omega0)

	return BiquadCoefficients{
		B0: 1 + alpha*a,
		B1: -2 * cosw,
		B2: 1 - alpha*a,
		A0: 1 + alpha/a,
		A1: -2 * cosw,
		A2: 1 - alpha/a,
	}
}

// HighShelfCoefficients designs a cookbook high shelf.
func HighShelfCoefficients(p BiquadParams) BiquadCoefficients {
	a := p.A()
	omega0 := p.Omega0()
	alpha := p.Alpha(omega0)
	cosw := p.CosW(omega0)

	ap := a + 1
	am := a - 1
	rootA2Alpha := 2 * math.Sqrt(a) * alpha

	return BiquadCoefficients{
		B0: a * (ap + am*cosw + rootA2Alpha),
		B1: -2 * a * (am + ap*cosw),
		B2: a * (ap + am*cosw - rootA2Alpha),
		A0: ap - am*cosw + rootA2Alpha,
		A1: 2 * (am - ap*cosw),
		A2: ap - am*cosw - rootA2Alpha,
	}
}
