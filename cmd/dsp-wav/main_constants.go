package main

// Block processing
const (
	maxBlockSize = 1 << 16
)

// Channel count constants for fast paths
const (
	monoChannels = 1
)

// Sample format constants
const (
	wavFormatPCM    = 1
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// Conversion constants
const (
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Log progress every N%
	percentScale     = 100
)
