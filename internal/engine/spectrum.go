package engine

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
const fftHermitianDivisor = 2

// MagnitudeSpectrum returns |X[k]| for k in [0, fftSize/2] of signal,
// zero-padded (or truncated) to fftSize samples.
func MagnitudeSpectrum(signal []float64, fftSize int) []float64 {
	if fftSize <= 0 {
		return []float64{}
	}

	padded := make([]float64, fftSize)
	copy(padded, signal)

	// gonum's forward transform is unnormalized, which is what a filter
	// response wants: an impulse has a flat magnitude of 1.
	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, padded)

	mags := make([]float64, fftSize/fftHermitianDivisor+1)
	for k := range mags {
		mags[k] = cmplx.Abs(coeffs[k])
	}
	return mags
}
