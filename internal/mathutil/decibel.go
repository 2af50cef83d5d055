// Package mathutil provides scalar helpers shared by the block processors.
package mathutil

import (
	"math"
)

// PowerToDB converts a power ratio (mean square) to decibels.
// Returns -Inf for zero and NaN for negative values.
func PowerToDB(power float64) float64 {
	return powerDBFactor * math.Log10(power)
}

// DBToPower converts decibels to a power ratio: 10^(db/10).
func DBToPower(db float64) float64 {
	return math.Pow(decibelBase, db/powerDBFactor)
}

// AmplitudeToDB converts a linear amplitude ratio to decibels.
func AmplitudeToDB(amplitude float64) float64 {
	return amplitudeDBFactor * math.Log10(amplitude)
}

// DBToAmplitude converts decibels to a linear amplitude ratio: 10^(db/20).
func DBToAmplitude(db float64) float64 {
	return math.Pow(decibelBase, db/amplitudeDBFactor)
}

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
