package block

import "fmt"

// historySizeMultiplier sizes the history array relative to the larger of the
// required lookback and the block length, which bounds how often it rewinds.
const historySizeMultiplier = 10

// History extends Base with a rolling single-channel record of past input.
// Only channel 0 of each block is recorded.
//
// The cursor (historyIndex) marks where the current block starts. The
// historyRequired samples before it are always valid, so an algorithm may read
// any window ending inside the current block that reaches back at most
// historyRequired samples.
type History[F Float] struct {
	Base[F]

	history         []F
	historyRequired int
	historyIndex    int
}

// SetHistoryRequired sets the lookback length. The storage is released so the
// next EnsureHistorySize reallocates and re-zeroes it with the cursor in a
// valid position.
func (h *History[F]) SetHistoryRequired(n int) {
	if n < 0 {
		n = 0
	}
	h.historyRequired = n
	h.history = nil
	h.historyIndex = 0
}

// HistoryRequired returns the lookback length.
func (h *History[F]) HistoryRequired() int {
	return h.historyRequired
}

// HistoryIndex returns the cursor position.
func (h *History[F]) HistoryIndex() int {
	return h.historyIndex
}

// HistoryCapacity returns the size of the history array.
func (h *History[F]) HistoryCapacity() int {
	return len(h.history)
}

// EnsureHistorySize grows the history array to at least
// 10 * max(blockLength, historyRequired) samples. Growing zero-fills the
// array and resets the cursor to historyRequired.
func (h *History[F]) EnsureHistorySize(blockLength int) {
	repeatSize := max(blockLength, h.historyRequired)
	required := historySizeMultiplier * repeatSize
	if len(h.history) < required {
		h.history = make([]F, required)
		h.historyIndex = h.historyRequired
	}
}

// UpdateHistory writes channel 0 of inputs into the history at the cursor,
// rewinding first if the block would run past the end of the array. The
// cursor does not move; call AdvanceHistoryIndex once the block is consumed.
func (h *History[F]) UpdateHistory(inputs [][]F, numChannels, numFrames int) error {
	if numChannels < 1 {
		return ErrNoChannels
	}
	if len(inputs) < 1 || len(inputs[0]) < numFrames {
		return fmt.Errorf("%w: history needs %d frames on channel 0", ErrShapeMismatch, numFrames)
	}

	h.EnsureHistorySize(numFrames)
	if h.historyIndex+numFrames >= len(h.history) {
		h.rewind()
	}
	copy(h.history[h.historyIndex:h.historyIndex+numFrames], inputs[0][:numFrames])
	return nil
}

// AdvanceHistoryIndex moves the cursor forward by n samples.
func (h *History[F]) AdvanceHistoryIndex(n int) {
	h.historyIndex += n
}

// Window returns the historyRequired+1 samples ending at frame i of the
// current block, oldest first. Valid between UpdateHistory and
// AdvanceHistoryIndex.
func (h *History[F]) Window(i int) []F {
	start := h.historyIndex - h.historyRequired + i
	return h.history[start : start+h.historyRequired+1]
}

// Reset zeroes the recorded history and returns the cursor to
// historyRequired.
func (h *History[F]) Reset() {
	clear(h.history)
	if len(h.history) > 0 {
		h.historyIndex = h.historyRequired
	}
}

// rewind copies the last historyRequired samples to the start of the array
// and moves the cursor just after them.
func (h *History[F]) rewind() {
	copy(h.history[:h.historyRequired], h.history[h.historyIndex-h.historyRequired:h.historyIndex])
	h.historyIndex = h.historyRequired
}
