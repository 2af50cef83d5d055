package impulse

// MaxLength caps the number of convolution taps.
const MaxLength = 8192

const (
	// gainReductionDB is the fixed level trim applied to every impulse
	// response at the reference rate.
	gainReductionDB = -18.0

	// gainReferenceRate is the rate at which the trim is exactly
	// gainReductionDB; at other rates the taps scale by referenceRate/rate.
	gainReferenceRate = 48000.0
)

// PCM sample format constants
const (
	wavFormatPCM = 1

	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// unsigned8BitOffset is the zero point of 8-bit PCM, which is stored unsigned.
	unsigned8BitOffset = 128
)
