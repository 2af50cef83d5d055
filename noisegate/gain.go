package noisegate

import (
	"fmt"

	"github.com/tphakala/go-audio-dsp/block"
	"github.com/tphakala/go-audio-dsp/internal/mathutil"
)

// Gain applies a gain-reduction matrix, in power dB, to audio.
type Gain[F block.Float] struct {
	block.Base[F]

	gainReductionDB block.Buffer[F]
}

// NewGain creates a Gain with no reduction matrix. Process fails until one is
// supplied.
func NewGain[F block.Float]() *Gain[F] {
	return &Gain[F]{}
}

// SetGainReductionDB copies gainReductionDB, which must be rectangular, for
// use by the next Process call.
func (g *Gain[F]) SetGainReductionDB(gainReductionDB [][]F) {
	g.gainReductionDB.CopyFrom(gainReductionDB)
}

// GainReductionDB returns the stored matrix.
func (g *Gain[F]) GainReductionDB() [][]F {
	return g.gainReductionDB.Channels()
}

// Process multiplies each sample by 10^(dB/10) of the matching reduction.
// The stored matrix must be exactly numChannels x numFrames.
func (g *Gain[F]) Process(inputs [][]F, numChannels, numFrames int) ([][]F, error) {
	if err := block.CheckInputs(inputs, numChannels, numFrames); err != nil {
		return nil, err
	}
	if g.gainReductionDB.NumChannels() != numChannels {
		return nil, fmt.Errorf("%w: gain reduction has %d channels, block has %d",
			block.ErrShapeMismatch, g.gainReductionDB.NumChannels(), numChannels)
	}
	if g.gainReductionDB.NumFrames() != numFrames {
		return nil, fmt.Errorf("%w: gain reduction has %d frames, block has %d",
			block.ErrShapeMismatch, g.gainReductionDB.NumFrames(), numFrames)
	}

	g.PrepareBuffers(numChannels, numFrames)
	outputs := g.Outputs()
	reductions := g.gainReductionDB.Channels()
	for c := range numChannels {
		in := inputs[c][:numFrames]
		out := outputs[c]
		for s, db := range reductions[c] {
			out[s] = F(mathutil.DBToPower(float64(db))) * in[s]
		}
	}
	return outputs, nil
}
