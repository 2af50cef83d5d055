package iir

// Filter degrees (number of input and output history taps).
const (
	levelInputDegree  = 1
	levelOutputDegree = 0

	lowPassInputDegree  = 1
	lowPassOutputDegree = 2

	highPassInputDegree  = 2
	highPassOutputDegree = 2

	biquadDegree = 3
)

// Coefficient design constants
const (
	// shelfGainDivisor gives the cookbook A = 10^(dBgain/40).
	shelfGainDivisor = 40.0

	// nyquistDivisor gives the Nyquist frequency from the sample rate.
	nyquistDivisor = 2.0
)
