package noisegate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-dsp/block"
	"github.com/tphakala/go-audio-dsp/internal/testutil"
)

func TestGain_AppliesPowerDB(t *testing.T) {
	g := NewGain[float64]()
	g.SetGainReductionDB([][]float64{{0, -10, -20, -3}})

	out, err := g.Process([][]float64{{1, 1, 0.5, 2}}, 1, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0][0], 1e-15)
	assert.InDelta(t, 0.1, out[0][1], 1e-15)
	assert.InDelta(t, 0.005, out[0][2], 1e-15)
	assert.InDelta(t, 2*math.Pow(10, -0.3), out[0][3], 1e-15)
}

func TestGain_RequiresMatchingShape(t *testing.T) {
	g := NewGain[float32]()
	x := [][]float32{make([]float32, 8), make([]float32, 8)}

	_, err := g.Process(x, 2, 8)
	require.ErrorIs(t, err, block.ErrShapeMismatch, "no matrix supplied")

	g.SetGainReductionDB([][]float32{make([]float32, 8)})
	_, err = g.Process(x, 2, 8)
	require.ErrorIs(t, err, block.ErrShapeMismatch, "channel count differs")

	g.SetGainReductionDB([][]float32{make([]float32, 4), make([]float32, 4)})
	_, err = g.Process(x, 2, 8)
	require.ErrorIs(t, err, block.ErrShapeMismatch, "frame count differs")

	g.SetGainReductionDB([][]float32{make([]float32, 8), make([]float32, 8)})
	_, err = g.Process(x, 2, 8)
	require.NoError(t, err)
}

func TestGain_CopiesMatrix(t *testing.T) {
	g := NewGain[float64]()
	gr := [][]float64{{-10, -10}}
	g.SetGainReductionDB(gr)
	gr[0][0] = 0

	assert.Equal(t, [][]float64{{-10, -10}}, g.GainReductionDB())
}

// A subscribed Gain processed right after its Trigger applies exactly the
// published matrix.
func TestGain_FollowsTrigger(t *testing.T) {
	p := DefaultTriggerParams()
	p.Time = 0.001
	trigger, err := NewTrigger[float32](testRate, p)
	require.NoError(t, err)
	gain := NewGain[float32]()
	trigger.Subscribe(gain)

	signal := append(testutil.Constant[float32](2400, 0.5), make([]float32, 9600)...)
	for pos := 0; pos < len(signal); pos += 600 {
		x := testutil.Channels(signal[pos:pos+600], 2)
		passthrough, err := trigger.Process(x, 2, 600)
		require.NoError(t, err)
		out, err := gain.Process(passthrough, 2, 600)
		require.NoError(t, err)

		reductions := trigger.GainReductionDB()
		for c := range 2 {
			for s := range 600 {
				want := float32(math.Pow(10, float64(reductions[c][s])/10)) * x[c][s]
				require.Equal(t, want, out[c][s], "block %d channel %d sample %d", pos, c, s)
			}
		}
	}
}

func TestTrigger_Unsubscribe(t *testing.T) {
	trigger, err := NewTrigger[float64](testRate, DefaultTriggerParams())
	require.NoError(t, err)
	a, b := NewGain[float64](), NewGain[float64]()
	trigger.Subscribe(a)
	trigger.Subscribe(a)
	trigger.Subscribe(b)

	_, err = trigger.Process([][]float64{make([]float64, 4)}, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, trigger.GainReductionDB(), a.GainReductionDB())
	assert.Equal(t, trigger.GainReductionDB(), b.GainReductionDB())

	trigger.Unsubscribe(b)
	_, err = trigger.Process([][]float64{make([]float64, 6)}, 1, 6)
	require.NoError(t, err)
	assert.Len(t, a.GainReductionDB()[0], 6)
	assert.Len(t, b.GainReductionDB()[0], 4, "unsubscribed gain keeps its last matrix")

	trigger.Unsubscribe(b)
}

func TestGate_ProcessesTriggerThenGain(t *testing.T) {
	gate, err := NewGate[float64](testRate, DefaultTriggerParams())
	require.NoError(t, err)

	loud := testutil.Constant[float64](4800, 0.5)
	out, err := gate.Process([][]float64{loud}, 1, 4800)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out[0][4799], 0, "open gate passes the signal")
	assert.False(t, gate.IsGating())

	for range 100 {
		out, err = gate.Process([][]float64{make([]float64, 4800)}, 1, 4800)
		require.NoError(t, err)
	}
	assert.True(t, gate.IsGating())
	assert.InDelta(t, -5400.0, gate.Trigger().GainReductionDB()[0][4799], 1e-6)
	assert.Equal(t, gate.Trigger().GainReductionDB(), gate.Gain().GainReductionDB())
}

func TestGate_ShapeErrorIsWrapped(t *testing.T) {
	gate, err := NewGate[float64](testRate, DefaultTriggerParams())
	require.NoError(t, err)
	_, err = gate.Process([][]float64{make([]float64, 2)}, 1, 4)
	require.ErrorIs(t, err, block.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "noise gate trigger")
}

func TestGate_SetParamsAndReset(t *testing.T) {
	gate, err := NewGate[float64](testRate, DefaultTriggerParams())
	require.NoError(t, err)

	p := DefaultTriggerParams()
	p.Ratio = 0
	require.NoError(t, gate.SetParams(p))
	gate.Reset()

	// With a zero ratio there is nothing to reduce.
	out, err := gate.Process([][]float64{testutil.Constant[float64](16, 1e-9)}, 1, 16)
	require.NoError(t, err)
	for _, v := range out[0] {
		assert.InDelta(t, 1e-9, v, 0)
	}
}
