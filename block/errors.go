package block

import (
	"errors"
	"fmt"
)

// Common errors returned by processing units.
var (
	// ErrShapeMismatch indicates the caller passed a block whose channel or
	// frame count does not match what the unit was prepared for.
	ErrShapeMismatch = errors.New("block shape mismatch")

	// ErrNoChannels indicates a history update was requested with zero channels.
	ErrNoChannels = errors.New("zero channels")

	// ErrInvalidConfig indicates invalid processing parameters.
	ErrInvalidConfig = errors.New("invalid processor configuration")

	// ErrNotLoaded indicates a unit whose source data failed to load.
	ErrNotLoaded = errors.New("source data not loaded")
)

// CheckInputs validates that inputs provides at least numFrames samples on
// each of its first numChannels channels.
func CheckInputs[F Float](inputs [][]F, numChannels, numFrames int) error {
	if numChannels < 0 || numFrames < 0 {
		return fmt.Errorf("%w: negative shape (%d channels, %d frames)", ErrShapeMismatch, numChannels, numFrames)
	}
	if len(inputs) < numChannels {
		return fmt.Errorf("%w: expected %d channels, got %d", ErrShapeMismatch, numChannels, len(inputs))
	}
	for c := range numChannels {
		if len(inputs[c]) < numFrames {
			return fmt.Errorf("%w: channel %d has %d frames, need %d", ErrShapeMismatch, c, len(inputs[c]), numFrames)
		}
	}
	return nil
}
