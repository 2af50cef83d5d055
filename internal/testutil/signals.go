package testutil

import (
	"math"

	"github.com/tphakala/go-audio-dsp/internal/simdops"
)

// Sine generates n samples of a sine wave at freq Hz.
func Sine[F simdops.Float](n int, freq, sampleRate, amplitude float64) []F {
	s := make([]F, n)
	for i := range s {
		s[i] = F(amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
	}
	return s
}

// Ramp generates n samples of start, start+step, start+2*step, ...
func Ramp[F simdops.Float](n int, start, step float64) []F {
	s := make([]F, n)
	for i := range s {
		s[i] = F(start + step*float64(i))
	}
	return s
}

// Impulse generates a unit impulse of length n at position pos.
func Impulse[F simdops.Float](n, pos int) []F {
	s := make([]F, n)
	if pos >= 0 && pos < n {
		s[pos] = 1
	}
	return s
}

// Constant generates n samples of value v.
func Constant[F simdops.Float](n int, v float64) []F {
	s := make([]F, n)
	for i := range s {
		s[i] = F(v)
	}
	return s
}

// Channels replicates one signal into numChannels independent copies.
func Channels[F simdops.Float](signal []F, numChannels int) [][]F {
	out := make([][]F, numChannels)
	for c := range out {
		out[c] = append([]F(nil), signal...)
	}
	return out
}

// Slice returns per-channel views [start:start+n] of a multi-channel signal.
func Slice[F simdops.Float](signal [][]F, start, n int) [][]F {
	out := make([][]F, len(signal))
	for c := range signal {
		out[c] = signal[c][start : start+n]
	}
	return out
}
