// Package iir implements recursive linear (IIR) filters as a generic
// difference-equation engine plus coefficient calculators for gain, one-pole
// low/high-pass and RBJ cookbook biquads (low shelf, peaking, high shelf).
//
// See https://webaudio.github.io/Audio-EQ-Cookbook/audio-eq-cookbook.html
package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-audio-dsp/block"
)

// Linear evaluates
//
//	y[n] = sum_k in[k]*x[n-k] + sum_{k>=1} out[k]*y[n-k]
//
// independently on every channel. The input degree counts the current sample,
// so a filter depending on x[n-2] has input degree 3. Output coefficient 0 is
// never used: y[n] cannot depend on itself.
//
// History is kept per channel in circular arrays whose "current" slot moves
// backwards one step per sample. The cursors persist across calls so the
// recurrence is continuous over block boundaries.
type Linear[F block.Float] struct {
	block.Base[F]

	inputCoefficients  []F
	outputCoefficients []F

	// First index is channel; [start] is the current sample, [start+1] the
	// previous one, and so on, modulo the degree.
	inputHistory  [][]F
	outputHistory [][]F
	inputStart    int
	outputStart   int
}

// NewLinear creates a filter with the given degrees and all-zero coefficients.
func NewLinear[F block.Float](inputDegree, outputDegree int) *Linear[F] {
	l := &Linear[F]{}
	l.init(inputDegree, outputDegree)
	return l
}

func (l *Linear[F]) init(inputDegree, outputDegree int) {
	l.inputCoefficients = make([]F, inputDegree)
	l.outputCoefficients = make([]F, outputDegree)
	// 1 is subtracted before first use
	l.inputStart = inputDegree
	l.outputStart = outputDegree
}

// InputDegree returns the number of input taps.
func (l *Linear[F]) InputDegree() int {
	return len(l.inputCoefficients)
}

// OutputDegree returns the number of output taps, including the unused tap 0.
func (l *Linear[F]) OutputDegree() int {
	return len(l.outputCoefficients)
}

// SetCoefficients replaces the filter coefficients. The slices must match the
// filter degrees; output coefficient 0 is forced to zero.
func (l *Linear[F]) SetCoefficients(input, output []float64) error {
	if len(input) != l.InputDegree() || len(output) != l.OutputDegree() {
		return fmt.Errorf("%w: coefficient lengths (%d, %d) do not match degree (%d, %d)",
			block.ErrInvalidConfig, len(input), len(output), l.InputDegree(), l.OutputDegree())
	}
	for i, v := range input {
		l.inputCoefficients[i] = F(v)
	}
	for i, v := range output {
		l.outputCoefficients[i] = F(v)
	}
	if len(l.outputCoefficients) > 0 {
		l.outputCoefficients[0] = 0
	}
	return nil
}

// Coefficients returns copies of the input and output coefficients.
func (l *Linear[F]) Coefficients() (input, output []float64) {
	input = make([]float64, len(l.inputCoefficients))
	for i, v := range l.inputCoefficients {
		input[i] = float64(v)
	}
	output = make([]float64, len(l.outputCoefficients))
	for i, v := range l.outputCoefficients {
		output[i] = float64(v)
	}
	return input, output
}

// Process filters every channel of the block.
func (l *Linear[F]) Process(inputs [][]F, numChannels, numFrames int) ([][]F, error) {
	if err := block.CheckInputs(inputs, numChannels, numFrames); err != nil {
		return nil, err
	}
	l.prepareBuffers(numChannels, numFrames)

	inputDegree := l.InputDegree()
	outputDegree := l.OutputDegree()
	outputs := l.Outputs()
	inputStart := l.inputStart
	outputStart := l.outputStart

	for c := range numChannels {
		// Every channel advances the cursors identically.
		inputStart = l.inputStart
		outputStart = l.outputStart
		in := inputs[c]
		out := outputs[c]
		inHist := l.inputHistory[c]
		outHist := l.outputHistory[c]

		for s := range numFrames {
			var y F

			// Input terms
			if inputDegree > 0 {
				inputStart--
				if inputStart < 0 {
					inputStart = inputDegree - 1
				}
				inHist[inputStart] = in[s]
				for i := range inputDegree {
					y += l.inputCoefficients[i] * inHist[(inputStart+i)%inputDegree]
				}
			}

			// Output terms
			if outputDegree > 0 {
				outputStart--
				if outputStart < 0 {
					outputStart = outputDegree - 1
				}
				for i := 1; i < outputDegree; i++ {
					y += l.outputCoefficients[i] * outHist[(outputStart+i)%outputDegree]
				}
			}

			// Keep a NaN from jamming the recursion.
			if math.IsNaN(float64(y)) {
				y = 0
			}
			if outputDegree > 0 {
				outHist[outputStart] = y
			}
			out[s] = y
		}
	}

	l.inputStart = inputStart
	l.outputStart = outputStart
	return outputs, nil
}

// Reset clears the recursion history of every channel.
func (l *Linear[F]) Reset() {
	for c := range l.inputHistory {
		clear(l.inputHistory[c])
		clear(l.outputHistory[c])
	}
}

// Response evaluates the filter's transfer function H(e^jw) at freq Hz.
func (l *Linear[F]) Response(freq, sampleRate float64) complex128 {
	w := 2 * math.Pi * freq / sampleRate
	z1 := cmplx.Exp(complex(0, -w)) // z^-1

	var num, den complex128
	zk := complex(1, 0)
	for _, b := range l.inputCoefficients {
		num += complex(float64(b), 0) * zk
		zk *= z1
	}
	den = 1
	zk = z1
	for i := 1; i < len(l.outputCoefficients); i++ {
		den -= complex(float64(l.outputCoefficients[i]), 0) * zk
		zk *= z1
	}
	return num / den
}

// prepareBuffers additionally rebuilds the per-channel recursion history when
// the channel count changes.
func (l *Linear[F]) prepareBuffers(numChannels, numFrames int) {
	shape := l.PrepareBuffers(numChannels, numFrames)
	if !shape.ChannelsChanged {
		return
	}
	l.inputHistory = make([][]F, numChannels)
	l.outputHistory = make([][]F, numChannels)
	for c := range numChannels {
		l.inputHistory[c] = make([]F, l.InputDegree())
		l.outputHistory[c] = make([]F, l.OutputDegree())
	}
}
