package audiodsp

// Common sample rates.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate, and the rate impulse response gain
	// is referenced to.
	RateDAT = 48000

	// RateHiRes88 is the high-resolution 2x CD sample rate.
	RateHiRes88 = 88200

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000
)

// Default amp chain settings
const (
	// DefaultLowCut removes rumble and DC below the guitar range.
	DefaultLowCut = 20.0

	DefaultPeakFrequency = 1000.0
	DefaultPeakGainDB    = 0.0
	DefaultPeakQuality   = 0.707
)
