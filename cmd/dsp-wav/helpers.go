package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"
)

// wavInput holds a decoded input file.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	frames   int
	data     []int
}

// readWAVInput opens, validates and decodes a PCM WAV file.
func readWAVInput(path string) (*wavInput, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = inputFile.Close() }()

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	channels := int(decoder.NumChans)
	bitDepth := int(decoder.BitDepth)
	if channels < 1 {
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}
	if _, ok := maxValues[bitDepth]; !ok {
		return nil, fmt.Errorf("unsupported bit depth %d (want 16, 24 or 32)", bitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "readWAVInput",
		"path":        path,
		"sample_rate": decoder.SampleRate,
		"channels":    channels,
		"bit_depth":   bitDepth,
	}).Debug("Input decoded")

	return &wavInput{
		rate:     int(decoder.SampleRate),
		channels: channels,
		bitDepth: bitDepth,
		frames:   len(buf.Data) / channels,
		data:     buf.Data,
	}, nil
}

// wavOutput wraps the output file and its encoder.
type wavOutput struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
}

// createWAVOutput creates a PCM WAV file for writing.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutput, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutput{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// WriteSamples appends interleaved samples.
func (w *wavOutput) WriteSamples(samples []int) error {
	w.buf.Data = samples
	return w.encoder.Write(w.buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutput) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// blockBuffers holds the preallocated buffers for one block.
type blockBuffers[F Float] struct {
	channelBufs  [][]F
	views        [][]F
	outputIntBuf []int
	invMaxVal    float64
	maxVal       float64
}

// newBlockBuffers preallocates buffers for blocks of up to blockSize frames.
func newBlockBuffers[F Float](channels, bitDepth, blockSize int) *blockBuffers[F] {
	channelBufs := make([][]F, channels)
	for ch := range channels {
		channelBufs[ch] = make([]F, blockSize)
	}

	maxVal := getMaxValue(bitDepth)
	return &blockBuffers[F]{
		channelBufs:  channelBufs,
		views:        make([][]F, channels),
		outputIntBuf: make([]int, blockSize*channels),
		invMaxVal:    1.0 / maxVal,
		maxVal:       maxVal,
	}
}

// load deinterleaves frames into the channel buffers and returns views of
// exactly numFrames samples.
func (b *blockBuffers[F]) load(data []int, numFrames int) [][]F {
	for ch := range b.channelBufs {
		b.views[ch] = b.channelBufs[ch][:numFrames]
	}
	deinterleaveInto(data, b.views, len(b.views), numFrames, b.invMaxVal)
	return b.views
}

// progressTracker logs progress every progressInterval percent.
type progressTracker struct {
	totalFrames  int
	lastProgress int
}

func newProgressTracker(totalFrames int) *progressTracker {
	return &progressTracker{totalFrames: totalFrames}
}

// reportIfNeeded logs progress if a threshold was crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int) {
	if p.totalFrames == 0 {
		return
	}

	progress := currentFrames * percentScale / p.totalFrames
	if progress >= p.lastProgress+progressInterval {
		logrus.WithFields(logrus.Fields{
			"function": "reportIfNeeded",
			"percent":  progress,
		}).Info("Progress")
		p.lastProgress = progress
	}
}

// maxValues maps supported bit depths to their full-scale value.
var maxValues = map[int]float64{
	bitsPerSample16: maxInt16,
	bitsPerSample24: maxInt24,
	bitsPerSample32: maxInt32,
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	if v, ok := maxValues[bitDepth]; ok {
		return v
	}
	return maxInt16
}

// deinterleaveInto converts interleaved int samples into preallocated per-channel buffers.
func deinterleaveInto[F Float](data []int, channelBufs [][]F, numChannels, samplesPerChannel int, invMaxVal float64) {
	// Fast path for mono
	if numChannels == monoChannels {
		buf := channelBufs[0]
		for i := range samplesPerChannel {
			buf[i] = F(float64(data[i]) * invMaxVal)
		}
		return
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			channelBufs[ch][i] = F(float64(data[base+ch]) * invMaxVal)
		}
	}
}

// interleaveInto converts per-channel float slices into a preallocated int
// buffer, clipping to full scale. Returns the number of elements written.
func interleaveInto[F Float](channels [][]F, dst []int, maxVal float64) int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return 0
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	totalLen := samplesPerChannel * numChannels
	if len(dst) < totalLen {
		return 0
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			sample := min(max(float64(channels[ch][i]), -1.0), 1.0)
			dst[base+ch] = int(sample * maxVal)
		}
	}
	return totalLen
}
