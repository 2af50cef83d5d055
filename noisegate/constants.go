package noisegate

// Loudness floor. Anything quieter is treated as this loud when computing
// gain reduction.
const (
	MinimumLoudnessDB    = -120.0
	MinimumLoudnessPower = 1e-12
)

const (
	// maximumLoudnessPower caps the smoothed mean-square level.
	maximumLoudnessPower = 1000.0

	// levelHalfLife is the base of the smoothing coefficient: the level
	// estimate halves over one Time constant of silence.
	levelHalfLife = 0.5

	// stepFraction is the share of the remaining distance to the target that
	// the gain reduction covers in one sample, before rate limiting.
	stepFraction = 0.5

	// openSnapDB is the reduction, in dB, close enough to zero for an opening
	// gate to snap fully open.
	openSnapDB = 1e-6
)

// Default trigger parameters
const (
	DefaultTime      = 0.05
	DefaultThreshold = -60.0
	DefaultRatio     = 1.5
	DefaultOpenTime  = 0.002
	DefaultHoldTime  = 0.050
	DefaultCloseTime = 0.050
)
