package block

// Shape reports which dimensions changed in a PrepareBuffers call.
type Shape struct {
	ChannelsChanged bool
	FramesChanged   bool
}

// Changed reports whether either dimension changed.
func (s Shape) Changed() bool {
	return s.ChannelsChanged || s.FramesChanged
}

// Base owns a processor's output storage. Concrete processors embed it and
// call PrepareBuffers at the start of every Process call.
type Base[F Float] struct {
	outputs Buffer[F]
}

// PrepareBuffers reshapes the output storage to numChannels x numFrames.
// A channel count change is also reported as a frame change, since every
// per-channel array has to be rebuilt in that case.
func (b *Base[F]) PrepareBuffers(numChannels, numFrames int) Shape {
	oldChannels := b.outputs.NumChannels()
	oldFrames := b.outputs.NumFrames()
	b.outputs.Resize(numChannels, numFrames)

	channelsChanged := oldChannels != numChannels
	return Shape{
		ChannelsChanged: channelsChanged,
		FramesChanged:   channelsChanged || oldFrames != numFrames,
	}
}

// Outputs returns the per-channel output views.
func (b *Base[F]) Outputs() [][]F {
	return b.outputs.Channels()
}

// NumChannels returns the channel count of the last prepared block.
func (b *Base[F]) NumChannels() int {
	return b.outputs.NumChannels()
}

// NumFrames returns the frame count of the last prepared block.
func (b *Base[F]) NumFrames() int {
	return b.outputs.NumFrames()
}
