package iir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-dsp/block"
	"github.com/tphakala/go-audio-dsp/internal/testutil"
)

var (
	_ block.Processor[float64] = (*Linear[float64])(nil)
	_ block.Processor[float32] = (*Biquad[float32])(nil)
	_ block.Processor[float64] = (*Level[float64])(nil)
	_ block.Processor[float64] = (*LowPass[float64])(nil)
	_ block.Processor[float64] = (*HighPass[float64])(nil)
)

// referenceFilter runs the difference equation directly with explicit delay lines.
func referenceFilter(x, in, out []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		var acc float64
		for k, b := range in {
			if n-k >= 0 {
				acc += b * x[n-k]
			}
		}
		for k := 1; k < len(out); k++ {
			if n-k >= 0 {
				acc += out[k] * y[n-k]
			}
		}
		y[n] = acc
	}
	return y
}

func TestLinear_MatchesDirectForm(t *testing.T) {
	in := []float64{0.2, 0.3, -0.1}
	out := []float64{0, 0.5, -0.25}
	f := NewLinear[float64](3, 3)
	require.NoError(t, f.SetCoefficients(in, out))

	x := testutil.Sine[float64](200, 1000, 48000, 0.8)
	want := referenceFilter(x, in, out)

	got, err := f.Process([][]float64{x}, 1, len(x))
	require.NoError(t, err)
	testutil.AssertSlicesInDelta(t, want, got[0], 1e-12)
}

// Splitting a signal into blocks of varying length must not change the output.
func TestLinear_ContinuityAcrossBlocks(t *testing.T) {
	f := NewPeaking[float64]()
	require.NoError(t, f.SetParams(BiquadParams{SampleRate: 48000, Frequency: 1200, Quality: 0.7, GainDB: 6}))
	whole := NewPeaking[float64]()
	require.NoError(t, whole.SetParams(BiquadParams{SampleRate: 48000, Frequency: 1200, Quality: 0.7, GainDB: 6}))

	x := testutil.Channels(testutil.Sine[float64](500, 440, 48000, 0.5), 2)
	want, err := whole.Process(x, 2, 500)
	require.NoError(t, err)

	var got [2][]float64
	pos := 0
	for _, n := range []int{1, 7, 64, 100, 3, 325} {
		out, err := f.Process(testutil.Slice(x, pos, n), 2, n)
		require.NoError(t, err)
		for c := range 2 {
			got[c] = append(got[c], out[c]...)
		}
		pos += n
	}
	require.Equal(t, 500, pos)
	for c := range 2 {
		testutil.AssertSlicesInDelta(t, want[c], got[c], 1e-12)
	}
}

func TestLinear_ChannelsAreIndependent(t *testing.T) {
	f := NewLowPass[float64]()
	require.NoError(t, f.SetParams(LowPassParams{SampleRate: 48000, Frequency: 500}))

	x := [][]float64{testutil.Impulse[float64](32, 0), make([]float64, 32)}
	out, err := f.Process(x, 2, 32)
	require.NoError(t, err)
	assert.Greater(t, out[0][0], 0.0)
	for _, v := range out[1] {
		assert.InDelta(t, 0.0, v, 0)
	}
}

func TestLinear_NaNGuard(t *testing.T) {
	f := NewLinear[float64](1, 2)
	require.NoError(t, f.SetCoefficients([]float64{1}, []float64{0, 0.5}))

	x := []float64{1, math.NaN(), 1, 0}
	out, err := f.Process([][]float64{x}, 1, len(x))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, out[0][0], 0)
	assert.InDelta(t, 0.0, out[0][1], 0, "NaN replaced by zero")
	assert.InDelta(t, 1.0, out[0][2], 0, "recursion resumes from the zeroed sample")
	assert.InDelta(t, 0.5, out[0][3], 0)
	testutil.AssertNoNaNOrInf(t, out[0])
}

func TestLinear_NaNGuardPathologicalCoefficients(t *testing.T) {
	f := NewLinear[float32](1, 2)
	require.NoError(t, f.SetCoefficients([]float64{math.Inf(1)}, []float64{0, 0}))

	out, err := f.Process([][]float32{{0, 1}}, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, float64(out[0][0]), 0, "Inf*0 is NaN and must read as 0")
	assert.True(t, math.IsInf(float64(out[0][1]), 1))
}

func TestLinear_SetCoefficientsValidatesLength(t *testing.T) {
	f := NewLinear[float64](3, 3)
	err := f.SetCoefficients([]float64{1, 2}, []float64{0, 0, 0})
	assert.ErrorIs(t, err, block.ErrInvalidConfig)
}

func TestLinear_OutputCoefficientZeroIsForced(t *testing.T) {
	f := NewLinear[float64](1, 2)
	require.NoError(t, f.SetCoefficients([]float64{1}, []float64{5, 0}))
	_, out := f.Coefficients()
	assert.Equal(t, []float64{0, 0}, out)
}

func TestLinear_ShapeError(t *testing.T) {
	f := NewLevel[float64]()
	_, err := f.Process([][]float64{{1, 2}}, 2, 2)
	assert.ErrorIs(t, err, block.ErrShapeMismatch)
}

func TestLinear_ChannelChangeResetsHistory(t *testing.T) {
	f := NewLowPass[float64]()
	require.NoError(t, f.SetParams(LowPassParams{SampleRate: 48000, Frequency: 100}))

	_, err := f.Process([][]float64{testutil.Constant[float64](64, 1)}, 1, 64)
	require.NoError(t, err)

	out, err := f.Process([][]float64{make([]float64, 4), make([]float64, 4)}, 2, 4)
	require.NoError(t, err)
	for c := range out {
		for _, v := range out[c] {
			assert.InDelta(t, 0.0, v, 0)
		}
	}
}

func TestLinear_Reset(t *testing.T) {
	f := NewLowPass[float64]()
	require.NoError(t, f.SetParams(LowPassParams{SampleRate: 48000, Frequency: 100}))
	_, err := f.Process([][]float64{testutil.Constant[float64](64, 1)}, 1, 64)
	require.NoError(t, err)

	f.Reset()
	out, err := f.Process([][]float64{make([]float64, 8)}, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), out[0])
}

func TestLinear_SteadyStateDoesNotAllocate(t *testing.T) {
	f := NewHighShelf[float32]()
	require.NoError(t, f.SetParams(BiquadParams{SampleRate: 48000, Frequency: 4000, Quality: 0.7, GainDB: -3}))
	x := testutil.Channels(testutil.Sine[float32](256, 440, 48000, 0.5), 2)
	_, err := f.Process(x, 2, 256)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = f.Process(x, 2, 256)
	})
	assert.Zero(t, allocs)
}

func TestLinear_ResponseMatchesMeasuredGain(t *testing.T) {
	f := NewLowPass[float64]()
	require.NoError(t, f.SetParams(LowPassParams{SampleRate: 48000, Frequency: 1000}))

	// Drive with a long sine and compare the steady-state amplitude with |H|.
	const freq = 2000.0
	x := testutil.Sine[float64](48000, freq, 48000, 1)
	out, err := f.Process([][]float64{x}, 1, len(x))
	require.NoError(t, err)

	// 24 samples per period, so the second half holds a whole number of periods.
	tail := out[0][len(x)/2:]
	var sumSq float64
	for _, v := range tail {
		sumSq += v * v
	}
	amplitude := math.Sqrt(2 * sumSq / float64(len(tail)))
	testutil.AssertRelativeError(t, cmplx.Abs(f.Response(freq, 48000)), amplitude, 1e-3)
}

func BenchmarkBiquad_Stereo512(b *testing.B) {
	f := NewPeaking[float64]()
	if err := f.SetParams(BiquadParams{SampleRate: 48000, Frequency: 1000, Quality: 1, GainDB: 6}); err != nil {
		b.Fatal(err)
	}
	x := testutil.Channels(testutil.Sine[float64](512, 440, 48000, 0.5), 2)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = f.Process(x, 2, 512)
	}
}
