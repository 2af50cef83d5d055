package audiodsp

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-audio-dsp/block"
	"github.com/tphakala/go-audio-dsp/iir"
	"github.com/tphakala/go-audio-dsp/impulse"
	"github.com/tphakala/go-audio-dsp/noisegate"
)

// AmpParams configures the processing around an amp model: a noise gate, a
// low cut, one peaking EQ band and a cabinet impulse response.
type AmpParams struct {
	// GateEnabled inserts the noise gate at the start of the chain.
	GateEnabled bool
	Gate        noisegate.TriggerParams

	// LowCut is the high-pass cutoff in Hz. Zero disables the stage.
	LowCut float64

	PeakFrequency float64
	PeakGainDB    float64
	PeakQuality   float64
}

// DefaultAmpParams returns a gate with default settings, a 20 Hz low cut and
// a flat peaking band.
func DefaultAmpParams() AmpParams {
	return AmpParams{
		GateEnabled:   true,
		Gate:          noisegate.DefaultTriggerParams(),
		LowCut:        DefaultLowCut,
		PeakFrequency: DefaultPeakFrequency,
		PeakGainDB:    DefaultPeakGainDB,
		PeakQuality:   DefaultPeakQuality,
	}
}

// NewAmpChain builds gate -> low cut -> peaking EQ -> impulse response at
// sampleRate. The impulse stage is omitted when ir has no samples.
func NewAmpChain[F block.Float](sampleRate float64, ir impulse.RawAudio, params AmpParams) (*Chain[F], error) {
	chain := NewChain[F]()

	if params.GateEnabled {
		gate, err := noisegate.NewGate[F](sampleRate, params.Gate)
		if err != nil {
			return nil, fmt.Errorf("noise gate: %w", err)
		}
		chain.Append(gate)
	}

	if params.LowCut > 0 {
		lowCut := iir.NewHighPass[F]()
		if err := lowCut.SetParams(iir.HighPassParams{SampleRate: sampleRate, Frequency: params.LowCut}); err != nil {
			return nil, fmt.Errorf("low cut: %w", err)
		}
		chain.Append(lowCut)
	}

	peak := iir.NewPeaking[F]()
	err := peak.SetParams(iir.BiquadParams{
		SampleRate: sampleRate,
		Frequency:  params.PeakFrequency,
		Quality:    params.PeakQuality,
		GainDB:     params.PeakGainDB,
	})
	if err != nil {
		return nil, fmt.Errorf("peaking EQ: %w", err)
	}
	chain.Append(peak)

	if len(ir.Samples) > 0 {
		cab := impulse.New[F](ir, sampleRate)
		if err := cab.Err(); err != nil {
			return nil, fmt.Errorf("impulse response: %w", err)
		}
		chain.Append(cab)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "NewAmpChain",
		"sample_rate": sampleRate,
		"stages":      chain.Len(),
		"gate":        params.GateEnabled,
		"ir_samples":  len(ir.Samples),
	}).Debug("Amp chain created")

	return chain, nil
}
