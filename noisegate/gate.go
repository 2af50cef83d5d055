package noisegate

import (
	"fmt"

	"github.com/tphakala/go-audio-dsp/block"
)

// Gate is a Trigger feeding a Gain, processed in that order.
type Gate[F block.Float] struct {
	trigger *Trigger[F]
	gain    *Gain[F]
}

// NewGate creates a gate for audio at sampleRate.
func NewGate[F block.Float](sampleRate float64, params TriggerParams) (*Gate[F], error) {
	trigger, err := NewTrigger[F](sampleRate, params)
	if err != nil {
		return nil, err
	}
	gain := NewGain[F]()
	trigger.Subscribe(gain)
	return &Gate[F]{trigger: trigger, gain: gain}, nil
}

// Process runs the trigger on inputs, then applies its gain reduction.
func (g *Gate[F]) Process(inputs [][]F, numChannels, numFrames int) ([][]F, error) {
	passthrough, err := g.trigger.Process(inputs, numChannels, numFrames)
	if err != nil {
		return nil, fmt.Errorf("noise gate trigger: %w", err)
	}
	outputs, err := g.gain.Process(passthrough, numChannels, numFrames)
	if err != nil {
		return nil, fmt.Errorf("noise gate gain: %w", err)
	}
	return outputs, nil
}

// SetParams updates the trigger parameters.
func (g *Gate[F]) SetParams(params TriggerParams) error {
	return g.trigger.SetParams(params)
}

// Trigger returns the gate's trigger, for subscribing more Gain units (to
// gate other signals with the same decision) or reading its state.
func (g *Gate[F]) Trigger() *Trigger[F] {
	return g.trigger
}

// Gain returns the gate's gain stage.
func (g *Gate[F]) Gain() *Gain[F] {
	return g.gain
}

// IsGating reports whether the gate is closing.
func (g *Gate[F]) IsGating() bool {
	return g.trigger.IsGating()
}

// Reset returns the gate to its initial closed state.
func (g *Gate[F]) Reset() {
	g.trigger.Reset()
}
