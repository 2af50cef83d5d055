// Package impulse convolves audio with a recorded impulse response, such as a
// speaker cabinet capture.
//
// The impulse response is resampled to the processing rate with cubic
// interpolation, trimmed to MaxLength taps, scaled and reversed once at
// construction. Each Process call then forms one dot product per output frame
// against the rolling input history. The engine is mono: channel 0 is
// convolved and the result is copied to every output channel.
package impulse

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-audio-dsp/block"
	"github.com/tphakala/go-audio-dsp/internal/engine"
	"github.com/tphakala/go-audio-dsp/internal/mathutil"
	"github.com/tphakala/go-audio-dsp/internal/simdops"
)

// ImpulseResponse is a block processor that convolves its input with a fixed
// FIR weight vector derived from an impulse response.
type ImpulseResponse[F block.Float] struct {
	block.History[F]

	ops        *simdops.Ops[F]
	raw        RawAudio
	sampleRate float64
	result     LoadResult
	gain       float64

	// weights holds the taps in reverse order so that a dot product with a
	// history window (oldest first) is the convolution sum.
	weights []F
}

// NewFromFile loads the impulse response at path and prepares it for
// sampleRate. A failed load is recorded in LoadResult and the engine outputs
// silence.
func NewFromFile[F block.Float](path string, sampleRate float64) *ImpulseResponse[F] {
	raw, result := LoadWAV(path)
	if result != LoadSuccess {
		return &ImpulseResponse[F]{
			ops:        simdops.For[F](),
			sampleRate: sampleRate,
			result:     result,
		}
	}
	return New[F](raw, sampleRate)
}

// New prepares already decoded impulse data for sampleRate. Empty data or a
// non-positive rate is recorded as a failed load.
func New[F block.Float](raw RawAudio, sampleRate float64) *ImpulseResponse[F] {
	ir := &ImpulseResponse[F]{
		ops:        simdops.For[F](),
		sampleRate: sampleRate,
		result:     LoadSuccess,
	}
	switch {
	case len(raw.Samples) == 0:
		ir.result = LoadErrorEmpty
	case raw.SampleRate <= 0 || sampleRate <= 0:
		ir.result = LoadErrorOther
	default:
		ir.raw = raw.Clone()
		ir.setWeights()
	}
	if ir.result != LoadSuccess {
		logrus.WithFields(logrus.Fields{
			"function":    "New",
			"samples":     len(raw.Samples),
			"source_rate": raw.SampleRate,
			"target_rate": sampleRate,
			"result":      ir.result.String(),
		}).Warn("Impulse response not usable, output will be silent")
	}
	return ir
}

// setWeights derives the FIR taps from the raw audio.
func (ir *ImpulseResponse[F]) setWeights() {
	var resampled []float64
	if ir.raw.SampleRate == ir.sampleRate {
		resampled = ir.raw.Samples
	} else {
		resampled = engine.ResampleCubic(ir.raw.Samples, ir.raw.SampleRate, ir.sampleRate)
	}

	length := min(len(resampled), MaxLength)
	ir.weights = make([]F, length)
	for i, j := 0, length-1; i < length; i, j = i+1, j-1 {
		ir.weights[j] = F(resampled[i])
	}

	ir.gain = mathutil.DBToAmplitude(gainReductionDB) * gainReferenceRate / ir.sampleRate
	ir.ops.Scale(ir.weights, ir.weights, F(ir.gain))
	ir.SetHistoryRequired(length - 1)

	logrus.WithFields(logrus.Fields{
		"function":    "setWeights",
		"taps":        length,
		"source_rate": ir.raw.SampleRate,
		"target_rate": ir.sampleRate,
		"truncated":   len(resampled) > MaxLength,
	}).Debug("Impulse response weights prepared")
}

// Process convolves channel 0 with the impulse response and writes the result
// to every output channel.
func (ir *ImpulseResponse[F]) Process(inputs [][]F, numChannels, numFrames int) ([][]F, error) {
	if err := block.CheckInputs(inputs, numChannels, numFrames); err != nil {
		return nil, err
	}
	ir.PrepareBuffers(numChannels, numFrames)
	if err := ir.UpdateHistory(inputs, numChannels, numFrames); err != nil {
		return nil, err
	}

	outputs := ir.Outputs()
	first := outputs[0]
	if len(ir.weights) == 0 {
		clear(first)
	} else {
		for i := range first {
			first[i] = ir.ops.DotProductUnsafe(ir.weights, ir.Window(i))
		}
	}
	for c := 1; c < numChannels; c++ {
		copy(outputs[c], first)
	}

	ir.AdvanceHistoryIndex(numFrames)
	return outputs, nil
}

// LoadResult returns the outcome of loading the impulse response.
func (ir *ImpulseResponse[F]) LoadResult() LoadResult {
	return ir.result
}

// Err returns nil after a successful load, otherwise an error wrapping
// block.ErrNotLoaded.
func (ir *ImpulseResponse[F]) Err() error {
	if ir.result == LoadSuccess {
		return nil
	}
	return fmt.Errorf("%w: impulse response: %s", block.ErrNotLoaded, ir.result)
}

// Data returns a copy of the raw impulse audio so it can be prepared again at
// another sample rate.
func (ir *ImpulseResponse[F]) Data() RawAudio {
	return ir.raw.Clone()
}

// SampleRate returns the processing rate the weights were prepared for.
func (ir *ImpulseResponse[F]) SampleRate() float64 {
	return ir.sampleRate
}

// Gain returns the linear gain folded into the weights.
func (ir *ImpulseResponse[F]) Gain() float64 {
	return ir.gain
}

// Weights returns a copy of the taps in convolution order (time-reversed).
func (ir *ImpulseResponse[F]) Weights() []F {
	w := make([]F, len(ir.weights))
	copy(w, ir.weights)
	return w
}
