package noisegate

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-dsp/block"
)

// TriggerParams configures a Trigger. Times are in seconds, the threshold in dB.
type TriggerParams struct {
	// Time is the half-life of the loudness estimate.
	Time float64
	// Threshold is the level below which gain reduction starts.
	Threshold float64
	// Ratio scales the quadratic expansion curve.
	Ratio float64
	// OpenTime is how long the gate takes to go from maximum reduction to open.
	OpenTime float64
	// HoldTime is how long the gate stays open after the level falls below
	// the threshold.
	HoldTime float64
	// CloseTime is how long the gate takes to go from open to maximum reduction.
	CloseTime float64
}

// DefaultTriggerParams returns a gate tuned for guitar noise at -60 dB.
func DefaultTriggerParams() TriggerParams {
	return TriggerParams{
		Time:      DefaultTime,
		Threshold: DefaultThreshold,
		Ratio:     DefaultRatio,
		OpenTime:  DefaultOpenTime,
		HoldTime:  DefaultHoldTime,
		CloseTime: DefaultCloseTime,
	}
}

// Validate checks that times are positive (hold may be zero), the ratio is
// non-negative and the threshold is finite.
func (p TriggerParams) Validate() error {
	if !(p.Time > 0) || !(p.OpenTime > 0) || !(p.CloseTime > 0) {
		return fmt.Errorf("%w: time, open time and close time must be positive", block.ErrInvalidConfig)
	}
	if !(p.HoldTime >= 0) {
		return fmt.Errorf("%w: hold time must be non-negative", block.ErrInvalidConfig)
	}
	if !(p.Ratio >= 0) || math.IsInf(p.Ratio, 0) {
		return fmt.Errorf("%w: ratio must be non-negative", block.ErrInvalidConfig)
	}
	if math.IsNaN(p.Threshold) || math.IsInf(p.Threshold, 0) {
		return fmt.Errorf("%w: threshold must be finite", block.ErrInvalidConfig)
	}
	return nil
}

// GainReductionDB returns the target reduction for a level in dB: zero at or
// above the threshold, -Ratio*(level-Threshold)^2 below it.
func (p TriggerParams) GainReductionDB(levelDB float64) float64 {
	if levelDB >= p.Threshold {
		return 0
	}
	d := levelDB - p.Threshold
	return -p.Ratio * d * d
}

// MaxGainReductionDB is the reduction applied at the loudness floor.
func (p TriggerParams) MaxGainReductionDB() float64 {
	return p.GainReductionDB(MinimumLoudnessDB)
}
