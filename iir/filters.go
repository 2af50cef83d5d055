package iir

import (
	"github.com/tphakala/go-audio-dsp/block"
)

// Level is a pure gain stage.
type Level[F block.Float] struct {
	Linear[F]
}

// NewLevel creates a Level filter with unity gain.
func NewLevel[F block.Float]() *Level[F] {
	l := &Level[F]{}
	l.init(levelInputDegree, levelOutputDegree)
	l.inputCoefficients[0] = 1
	return l
}

// SetParams sets the gain.
func (l *Level[F]) SetParams(p LevelParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return l.SetCoefficients(LevelCoefficients(p))
}

// LowPass is a one-pole low-pass filter.
type LowPass[F block.Float] struct {
	Linear[F]
}

// NewLowPass creates a low-pass filter. It passes nothing until SetParams is called.
func NewLowPass[F block.Float]() *LowPass[F] {
	l := &LowPass[F]{}
	l.init(lowPassInputDegree, lowPassOutputDegree)
	return l
}

// SetParams sets the cutoff.
func (l *LowPass[F]) SetParams(p LowPassParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return l.SetCoefficients(LowPassCoefficients(p))
}

// HighPass is a one-pole high-pass filter.
type HighPass[F block.Float] struct {
	Linear[F]
}

// NewHighPass creates a high-pass filter. It passes nothing until SetParams is called.
func NewHighPass[F block.Float]() *HighPass[F] {
	h := &HighPass[F]{}
	h.init(highPassInputDegree, highPassOutputDegree)
	return h
}

// SetParams sets the cutoff.
func (h *HighPass[F]) SetParams(p HighPassParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return h.SetCoefficients(HighPassCoefficients(p))
}

// Biquad is a second-order section whose coefficients come from a cookbook
// design (low shelf, peaking or high shelf).
type Biquad[F block.Float] struct {
	Linear[F]

	design BiquadDesign
}

// NewBiquad creates a biquad using design to turn parameters into coefficients.
func NewBiquad[F block.Float](design BiquadDesign) *Biquad[F] {
	b := &Biquad[F]{design: design}
	b.init(biquadDegree, biquadDegree)
	return b
}

// NewLowShelf creates a low shelf biquad.
func NewLowShelf[F block.Float]() *Biquad[F] {
	return NewBiquad[F](LowShelfCoefficients)
}

// NewPeaking creates a peaking EQ biquad.
func NewPeaking[F block.Float]() *Biquad[F] {
	return NewBiquad[F](PeakingCoefficients)
}

// NewHighShelf creates a high shelf biquad.
func NewHighShelf[F block.Float]() *Biquad[F] {
	return NewBiquad[F](HighShelfCoefficients)
}

// SetParams designs and applies new coefficients. On error the previous
// coefficients are kept.
func (b *Biquad[F]) SetParams(p BiquadParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return b.SetCoefficients(b.design(p).Normalized())
}
