// Package block defines the block-processing contract shared by every
// processing unit, the owned multi-channel output storage, and the rolling
// single-channel history used by algorithms that look back past the current
// block.
//
// A processor receives a [channel][frame] block and returns a [channel][frame]
// block of the same shape. The returned slices are owned by the processor and
// stay valid only until its next Process call. Storage is reshaped only when
// the channel or frame count changes; repeated calls with the same shape do
// not allocate.
package block

import (
	"github.com/tphakala/go-audio-dsp/internal/simdops"
)

// Float is the constraint for supported sample types.
type Float = simdops.Float

// Processor is the block-processing contract.
type Processor[F Float] interface {
	// Process consumes numFrames samples from each of the first numChannels
	// input channels and returns numChannels output channels of numFrames
	// samples each. The returned slices are valid until the next call.
	Process(inputs [][]F, numChannels, numFrames int) ([][]F, error)
}

// Buffer is a multi-channel sample matrix backed by one contiguous
// allocation, exposed as one slice view per channel.
type Buffer[F Float] struct {
	data      []F
	channels  [][]F
	numFrames int
}

// Resize reshapes the buffer to numChannels x numFrames and reports whether
// the shape changed. Existing capacity is reused; memory is only allocated
// when the new shape needs more room than any previous one. Contents are
// unspecified after a shape change.
func (b *Buffer[F]) Resize(numChannels, numFrames int) bool {
	if numChannels == len(b.channels) && numFrames == b.numFrames {
		return false
	}

	total := numChannels * numFrames
	if cap(b.data) < total {
		b.data = make([]F, total)
	}
	b.data = b.data[:total]

	if cap(b.channels) < numChannels {
		b.channels = make([][]F, numChannels)
	}
	b.channels = b.channels[:numChannels]
	for c := range b.channels {
		start := c * numFrames
		b.channels[c] = b.data[start : start+numFrames : start+numFrames]
	}

	b.numFrames = numFrames
	return true
}

// Channels returns the per-channel views.
func (b *Buffer[F]) Channels() [][]F {
	return b.channels
}

// NumChannels returns the current channel count.
func (b *Buffer[F]) NumChannels() int {
	return len(b.channels)
}

// NumFrames returns the current per-channel frame count.
func (b *Buffer[F]) NumFrames() int {
	return b.numFrames
}

// Fill sets every sample to v.
func (b *Buffer[F]) Fill(v F) {
	for i := range b.data {
		b.data[i] = v
	}
}

// CopyFrom resizes b to the shape of src and copies its contents.
// src must be rectangular.
func (b *Buffer[F]) CopyFrom(src [][]F) {
	numFrames := 0
	if len(src) > 0 {
		numFrames = len(src[0])
	}
	b.Resize(len(src), numFrames)
	for c := range src {
		copy(b.channels[c], src[c])
	}
}
