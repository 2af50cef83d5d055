package impulse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-dsp/block"
)

// writeWAV writes interleaved integer samples to a new WAV file under t.TempDir.
func writeWAV(t *testing.T, data []int, sampleRate, bitDepth, numChannels int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ir.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestLoadWAV_Mono16(t *testing.T) {
	path := writeWAV(t, []int{16384, -16384, 0, 32767}, 44100, 16, 1)

	raw, result := LoadWAV(path)
	require.Equal(t, LoadSuccess, result)
	assert.InDelta(t, 44100.0, raw.SampleRate, 0)
	require.Len(t, raw.Samples, 4)
	assert.InDelta(t, 0.5, raw.Samples[0], 1e-12)
	assert.InDelta(t, -0.5, raw.Samples[1], 1e-12)
	assert.InDelta(t, 0.0, raw.Samples[2], 1e-12)
	assert.InDelta(t, 32767.0/32768.0, raw.Samples[3], 1e-12)
}

func TestLoadWAV_RejectsStereo(t *testing.T) {
	path := writeWAV(t, []int{1, 2, 3, 4}, 48000, 16, 2)
	_, result := LoadWAV(path)
	assert.Equal(t, LoadErrorNotMono, result)
}

func TestLoadWAV_MissingFile(t *testing.T) {
	_, result := LoadWAV(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Equal(t, LoadErrorOpening, result)
}

func TestLoadWAV_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a riff file"), 0o600))
	_, result := LoadWAV(path)
	assert.Equal(t, LoadErrorInvalidFile, result)
}

func TestNewFromFile(t *testing.T) {
	path := writeWAV(t, []int{32767, 0, 0, 0}, 48000, 16, 1)

	ir := NewFromFile[float64](path, 48000)
	require.NoError(t, ir.Err())
	assert.Len(t, ir.Weights(), 4)
	assert.InDelta(t, expectedGain*32767/32768, ir.Weights()[3], 1e-12)

	missing := NewFromFile[float32](filepath.Join(t.TempDir(), "nope.wav"), 48000)
	assert.Equal(t, LoadErrorOpening, missing.LoadResult())
	assert.Error(t, missing.Err())
	assert.Empty(t, missing.Weights())
}

func TestNewFromFile_InvalidRate(t *testing.T) {
	path := writeWAV(t, []int{32767, 0}, 48000, 16, 1)

	for _, rate := range []float64{0, -48000} {
		ir := NewFromFile[float64](path, rate)
		assert.Equal(t, LoadErrorOther, ir.LoadResult(), "rate %g", rate)
		assert.ErrorIs(t, ir.Err(), block.ErrNotLoaded)
		assert.Empty(t, ir.Weights())
	}
}

func TestLoadResult_String(t *testing.T) {
	assert.Equal(t, "success", LoadSuccess.String())
	assert.Equal(t, "not mono", LoadErrorNotMono.String())
	assert.Equal(t, "unknown", LoadResult(99).String())
	assert.True(t, LoadSuccess.OK())
	assert.False(t, LoadErrorOther.OK())
}

func TestPCMScale(t *testing.T) {
	for _, depth := range []int{8, 16, 24, 32} {
		scale, ok := pcmScale(depth)
		require.True(t, ok, "depth %d", depth)
		assert.InDelta(t, 1.0, scale*float64(int64(1)<<(depth-1)), 1e-15)
	}
	_, ok := pcmScale(12)
	assert.False(t, ok)
}
