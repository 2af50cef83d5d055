package iir

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-dsp/block"
)

// LevelParams configures a Level filter.
type LevelParams struct {
	// Gain is the multiplicative gain (not dB).
	Gain float64
}

// Validate checks that the gain is a finite number.
func (p LevelParams) Validate() error {
	if math.IsNaN(p.Gain) || math.IsInf(p.Gain, 0) {
		return fmt.Errorf("%w: level gain must be finite", block.ErrInvalidConfig)
	}
	return nil
}

// LowPassParams configures a one-pole low-pass filter.
type LowPassParams struct {
	SampleRate float64
	Frequency  float64
}

// Validate checks the sample rate and cutoff.
func (p LowPassParams) Validate() error {
	return validateOnePole(p.SampleRate, p.Frequency)
}

// HighPassParams configures a one-pole high-pass filter.
type HighPassParams struct {
	SampleRate float64
	Frequency  float64
}

// Validate checks the sample rate and cutoff.
func (p HighPassParams) Validate() error {
	return validateOnePole(p.SampleRate, p.Frequency)
}

func validateOnePole(sampleRate, frequency float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", block.ErrInvalidConfig)
	}
	if frequency < 0 || math.IsNaN(frequency) {
		return fmt.Errorf("%w: frequency must be non-negative", block.ErrInvalidConfig)
	}
	return nil
}

// BiquadParams describes the low shelf, peaking and high shelf filters,
// which share the same three parameters.
type BiquadParams struct {
	SampleRate float64
	Frequency  float64
	Quality    float64
	GainDB     float64
}

// Validate checks that the frequency lies in (0, Nyquist) and Q is positive.
func (p BiquadParams) Validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", block.ErrInvalidConfig)
	}
	if p.Frequency <= 0 || p.Frequency >= p.SampleRate/nyquistDivisor {
		return fmt.Errorf("%w: frequency %g Hz outside (0, %g)", block.ErrInvalidConfig, p.Frequency, p.SampleRate/nyquistDivisor)
	}
	if p.Quality <= 0 {
		return fmt.Errorf("%w: quality must be positive", block.ErrInvalidConfig)
	}
	if math.IsNaN(p.GainDB) || math.IsInf(p.GainDB, 0) {
		return fmt.Errorf("%w: gain must be finite", block.ErrInvalidConfig)
	}
	return nil
}

// A returns the cookbook amplitude term 10^(gainDB/40).
func (p BiquadParams) A() float64 {
	return math.Pow(10, p.GainDB/shelfGainDivisor)
}

// Omega0 returns the normalized center frequency 2*pi*f/fs.
func (p BiquadParams) Omega0() float64 {
	return 2 * math.Pi * p.Frequency / p.SampleRate
}

// Alpha returns sin(w0)/(2Q).
func (p BiquadParams) Alpha(omega0 float64) float64 {
	return math.Sin(omega0) / (2 * p.Quality)
}

// CosW returns cos(w0).
func (p BiquadParams) CosW(omega0 float64) float64 {
	return math.Cos(omega0)
}
