// Package engine implements the interpolation and spectral helpers used when
// preparing impulse responses.
package engine

import (
	"math"

	"github.com/tphakala/go-audio-dsp/internal/simdops"
)

// ResampleCubic converts input from inputRate to outputRate using cubic
// (4-point, 3rd order) Hermite interpolation.
//
// The signal is padded with one zero sample at each end so the first and last
// intervals still see a full interpolation window. Output sample k is taken at
// time k/outputRate and generation stops at the time of the last input sample,
// so the result spans the same duration as the input.
func ResampleCubic[F simdops.Float](input []F, inputRate, outputRate float64) []F {
	n := len(input)
	if n == 0 || inputRate <= 0 || outputRate <= 0 {
		return []F{}
	}

	padded := make([]float64, n+2*cubicEdgePadding)
	for i, v := range input {
		padded[i+cubicEdgePadding] = float64(v)
	}

	step := inputRate / outputRate
	last := float64(n - 1)
	outputSize := int(math.Floor(last/step)) + 1
	output := make([]F, 0, outputSize)

	for k := 0; ; k++ {
		t := float64(k) * step
		if t > last {
			break
		}
		pos := t + cubicEdgePadding
		i := int(pos)
		x := pos - float64(i)
		output = append(output, F(interpolate(
			sampleAt(padded, i-1),
			sampleAt(padded, i),
			sampleAt(padded, i+1),
			sampleAt(padded, i+2),
			x,
		)))
	}

	return output
}

// sampleAt returns s[i], or zero outside the slice.
func sampleAt(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// interpolate performs cubic Hermite interpolation between y1 and y2.
// Uses the formula: y = ((a*x + b)*x + c)*x + d
// where x is the fractional position between y1 and y2.
func interpolate(y0, y1, y2, y3, x float64) float64 {
	// Hermite basis functions
	// These coefficients provide smooth interpolation with continuous first derivative
	coefA := -hermiteCoeff0_5*y0 + hermiteCoeff1_5*y1 - hermiteCoeff1_5*y2 + hermiteCoeff0_5*y3
	coefB := y0 - hermiteCoeff2_5*y1 + 2*y2 - hermiteCoeff0_5*y3
	coefC := -hermiteCoeff0_5*y0 + hermiteCoeff0_5*y2
	coefD := y1

	// Evaluate polynomial
	return ((coefA*x+coefB)*x+coefC)*x + coefD
}
