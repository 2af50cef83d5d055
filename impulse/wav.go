package impulse

import (
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"
)

// RawAudio is a decoded mono impulse response and the rate it was recorded at.
type RawAudio struct {
	Samples    []float64
	SampleRate float64
}

// Clone returns a deep copy.
func (r RawAudio) Clone() RawAudio {
	samples := make([]float64, len(r.Samples))
	copy(samples, r.Samples)
	return RawAudio{Samples: samples, SampleRate: r.SampleRate}
}

// LoadWAV reads a mono PCM WAV file. Samples are scaled to [-1, 1).
func LoadWAV(path string) (RawAudio, LoadResult) {
	f, err := os.Open(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "LoadWAV",
			"path":     path,
			"error":    err.Error(),
		}).Warn("Failed to open impulse response")
		return RawAudio{}, LoadErrorOpening
	}
	defer func() { _ = f.Close() }()

	raw, result := DecodeWAV(f)
	if result != LoadSuccess {
		logrus.WithFields(logrus.Fields{
			"function": "LoadWAV",
			"path":     path,
			"result":   result.String(),
		}).Warn("Failed to decode impulse response")
		return RawAudio{}, result
	}

	logrus.WithFields(logrus.Fields{
		"function":    "LoadWAV",
		"path":        path,
		"samples":     len(raw.Samples),
		"sample_rate": raw.SampleRate,
	}).Debug("Impulse response loaded")
	return raw, LoadSuccess
}

// DecodeWAV decodes a mono PCM WAV stream.
func DecodeWAV(r io.ReadSeeker) (RawAudio, LoadResult) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return RawAudio{}, LoadErrorInvalidFile
	}
	if decoder.WavAudioFormat != wavFormatPCM {
		return RawAudio{}, LoadErrorUnsupportedFormat
	}
	if decoder.NumChans != 1 {
		return RawAudio{}, LoadErrorNotMono
	}

	bitDepth := int(decoder.BitDepth)
	scale, ok := pcmScale(bitDepth)
	if !ok {
		return RawAudio{}, LoadErrorUnsupportedBitsPerSample
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return RawAudio{}, LoadErrorOther
	}
	if buf == nil || len(buf.Data) == 0 {
		return RawAudio{}, LoadErrorEmpty
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == bitsPerSample8 {
			v -= unsigned8BitOffset
		}
		samples[i] = float64(v) * scale
	}

	return RawAudio{Samples: samples, SampleRate: float64(decoder.SampleRate)}, LoadSuccess
}

// pcmScale returns the factor mapping a signed integer sample of the given
// depth to [-1, 1).
func pcmScale(bitDepth int) (float64, bool) {
	switch bitDepth {
	case bitsPerSample8, bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return 1 / float64(uint64(1)<<(bitDepth-1)), true
	default:
		return 0, false
	}
}
