package impulse

import (
	"github.com/tphakala/go-audio-dsp/internal/engine"
)

// MagnitudeResponse returns the linear magnitude of the prepared filter at
// fftSize/2+1 evenly spaced frequencies from DC to Nyquist. Bin k lies at
// k*SampleRate()/fftSize Hz. Taps beyond fftSize are ignored.
func (ir *ImpulseResponse[F]) MagnitudeResponse(fftSize int) []float64 {
	// Undo the reversal to recover the impulse response in time order.
	taps := make([]float64, len(ir.weights))
	for i, w := range ir.weights {
		taps[len(taps)-1-i] = float64(w)
	}
	return engine.MagnitudeSpectrum(taps, fftSize)
}

// DCGain returns the sum of the taps, the filter's response at 0 Hz.
func (ir *ImpulseResponse[F]) DCGain() float64 {
	if len(ir.weights) == 0 {
		return 0
	}
	return float64(ir.ops.Sum(ir.weights))
}
