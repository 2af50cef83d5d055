package mathutil

// Decibel conversion constants
const (
	// powerDBFactor converts between power ratios and dB: dB = 10*log10(p)
	powerDBFactor = 10.0

	// amplitudeDBFactor converts between amplitude ratios and dB: dB = 20*log10(a)
	amplitudeDBFactor = 20.0

	// decibelBase is the base of the logarithm used for decibels.
	decibelBase = 10.0
)
