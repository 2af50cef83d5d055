// Package noisegate implements a two-part noise gate.
//
// A Trigger listens to the input, tracks a smoothed loudness per channel and
// decides how many dB of gain reduction to apply at every sample. A Gain
// applies a gain-reduction matrix to audio. The Trigger hands its matrix to
// subscribed Gain units by copy at the end of each Process call, so a Gain
// must be processed after its Trigger for the same block. Gate bundles one of
// each and runs them in that order.
package noisegate

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-audio-dsp/block"
	"github.com/tphakala/go-audio-dsp/internal/mathutil"
)

type gateState int

const (
	stateMoving gateState = iota
	stateHolding
)

// GainReceiver accepts a published gain-reduction matrix. Implementations
// must copy the data; the slices are reused by the next Process call.
type GainReceiver[F block.Float] interface {
	SetGainReductionDB(gainReductionDB [][]F)
}

// Trigger computes per-sample gain reduction from the input level. Its audio
// output is an unchanged copy of the input.
type Trigger[F block.Float] struct {
	block.Base[F]

	params     TriggerParams
	sampleRate float64

	// Per-channel state
	state           []gateState
	level           []float64
	lastReductionDB []float64
	timeHeld        []float64

	gainReductionDB block.Buffer[F]
	receivers       []GainReceiver[F]
	gating          bool
}

// NewTrigger creates a trigger for audio at sampleRate.
func NewTrigger[F block.Float](sampleRate float64, params TriggerParams) (*Trigger[F], error) {
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be positive", block.ErrInvalidConfig)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Trigger[F]{params: params, sampleRate: sampleRate}, nil
}

// SetParams replaces the trigger parameters. Per-channel state is kept; the
// new maximum reduction applies from the next shape change onward as the
// starting point for new channels.
func (t *Trigger[F]) SetParams(params TriggerParams) error {
	if err := params.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "SetParams",
			"error":    err.Error(),
		}).Debug("Rejected noise gate parameters")
		return err
	}
	t.params = params
	return nil
}

// Params returns the current parameters.
func (t *Trigger[F]) Params() TriggerParams {
	return t.params
}

// SampleRate returns the rate the trigger was created for.
func (t *Trigger[F]) SampleRate() float64 {
	return t.sampleRate
}

// MaxGainReductionDB returns the reduction applied to a signal at the
// loudness floor.
func (t *Trigger[F]) MaxGainReductionDB() float64 {
	return t.params.MaxGainReductionDB()
}

// IsGating reports whether the gate was closing at the last processed sample
// that moved it.
func (t *Trigger[F]) IsGating() bool {
	return t.gating
}

// GainReductionDB returns the matrix computed by the last Process call. It is
// valid until the next call.
func (t *Trigger[F]) GainReductionDB() [][]F {
	return t.gainReductionDB.Channels()
}

// Subscribe registers r to receive a copy of the gain-reduction matrix after
// every Process call. Subscribing the same receiver twice has no effect.
func (t *Trigger[F]) Subscribe(r GainReceiver[F]) {
	if slices.Contains(t.receivers, r) {
		return
	}
	t.receivers = append(t.receivers, r)
}

// Unsubscribe removes r. It is a no-op if r is not subscribed.
func (t *Trigger[F]) Unsubscribe(r GainReceiver[F]) {
	t.receivers = slices.DeleteFunc(t.receivers, func(x GainReceiver[F]) bool {
		return x == r
	})
}

// Process updates the gain reduction for the block, publishes it to
// subscribers and returns a copy of the input.
func (t *Trigger[F]) Process(inputs [][]F, numChannels, numFrames int) ([][]F, error) {
	if err := block.CheckInputs(inputs, numChannels, numFrames); err != nil {
		return nil, err
	}
	t.prepareBuffers(numChannels, numFrames)

	p := t.params
	alpha := math.Pow(levelHalfLife, 1/(p.Time*t.sampleRate))
	beta := 1 - alpha
	dt := 1 / t.sampleRate
	maxReduction := p.MaxGainReductionDB()
	// Largest change in one sample: positive when opening, negative when closing.
	dOpen := -maxReduction / p.OpenTime * dt
	dClose := maxReduction / p.CloseTime * dt

	reductions := t.gainReductionDB.Channels()
	for c := range numChannels {
		in := inputs[c][:numFrames]
		out := reductions[c]
		for s, x := range in {
			xf := float64(x)
			t.level[c] = mathutil.Clamp(alpha*t.level[c]+beta*xf*xf, MinimumLoudnessPower, maximumLoudnessPower)
			levelDB := mathutil.PowerToDB(t.level[c])

			if t.state[c] == stateHolding {
				t.lastReductionDB[c] = 0
				if levelDB < p.Threshold {
					t.timeHeld[c] += dt
					if t.timeHeld[c] >= p.HoldTime {
						t.state[c] = stateMoving
					}
				} else {
					t.timeHeld[c] = 0
				}
				out[s] = 0
				continue
			}

			target := p.GainReductionDB(levelDB)
			last := t.lastReductionDB[c]
			switch {
			case target > last:
				last += mathutil.Clamp(stepFraction*(target-last), 0, dOpen)
				if levelDB > p.Threshold {
					t.gating = false
				}
				if last >= -openSnapDB {
					last = 0
					t.state[c] = stateHolding
					t.timeHeld[c] = 0
				}
			case target < last:
				last += mathutil.Clamp(stepFraction*(target-last), dClose, 0)
				last = max(last, maxReduction)
				t.gating = true
			}
			t.lastReductionDB[c] = last
			out[s] = F(last)
		}
	}

	for _, r := range t.receivers {
		r.SetGainReductionDB(reductions)
	}

	outputs := t.Outputs()
	for c := range numChannels {
		copy(outputs[c], inputs[c][:numFrames])
	}
	return outputs, nil
}

// Reset returns every channel to the closed state at maximum reduction.
func (t *Trigger[F]) Reset() {
	t.resetChannels(t.params.MaxGainReductionDB())
	t.gating = false
}

// prepareBuffers reshapes the output and reduction storage. A new channel
// count resets every channel to MOVING at maximum reduction with the level at
// the floor; a new frame count refills the reduction matrix with the maximum.
func (t *Trigger[F]) prepareBuffers(numChannels, numFrames int) {
	shape := t.PrepareBuffers(numChannels, numFrames)
	maxReduction := t.params.MaxGainReductionDB()

	if shape.ChannelsChanged || t.state == nil {
		t.state = make([]gateState, numChannels)
		t.level = make([]float64, numChannels)
		t.lastReductionDB = make([]float64, numChannels)
		t.timeHeld = make([]float64, numChannels)
		t.resetChannels(maxReduction)
	}
	if shape.FramesChanged || t.gainReductionDB.NumChannels() != numChannels {
		t.gainReductionDB.Resize(numChannels, numFrames)
		t.gainReductionDB.Fill(F(maxReduction))
	}
}

func (t *Trigger[F]) resetChannels(maxReduction float64) {
	for c := range t.state {
		t.state[c] = stateMoving
		t.level[c] = MinimumLoudnessPower
		t.lastReductionDB[c] = maxReduction
		t.timeHeld[c] = 0
	}
}
