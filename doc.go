// Package audiodsp is a real-time audio effects core in pure Go.
//
// Every effect is a block processor: it receives a [channel][frame] block of
// samples and returns a processed block of the same shape. Processors keep
// their own state between calls, own their output storage and do not
// allocate once the block shape stops changing, so they can run inside an
// audio callback.
//
// # Effects
//
//   - [github.com/tphakala/go-audio-dsp/iir]: recursive filters. Gain
//     ([iir.Level]), one-pole low-pass and high-pass, and the cookbook low
//     shelf, peaking and high shelf biquads.
//   - [github.com/tphakala/go-audio-dsp/impulse]: convolution with an impulse
//     response loaded from a WAV file or supplied as samples, resampled to the
//     processing rate. Typically a speaker cabinet.
//   - [github.com/tphakala/go-audio-dsp/noisegate]: a noise gate split into a
//     Trigger that measures the input and a Gain that applies its decision.
//
// # Quick Start
//
// Build a chain and feed it blocks from the host:
//
//	ir, result := impulse.LoadWAV("cab.wav")
//	if !result.OK() {
//	    log.Printf("cabinet disabled: %s", result)
//	}
//	chain, err := audiodsp.NewAmpChain[float32](48000, ir, audiodsp.DefaultAmpParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for block := range blocks {
//	    out, err := chain.Process(block, 2, len(block[0]))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    write(out)
//	}
//
// Any [block.Processor] can be placed in a [Chain], including user types.
//
// # Precision
//
// All processors are generic over float32 and float64. Internal gate state is
// kept in float64 regardless of the sample type.
//
// # Thread Safety
//
// Processors are not safe for concurrent use. Call Process on a given
// processor from one goroutine at a time, and when a noise gate Gain is
// driven by a separate Trigger, process the Trigger first for each block.
package audiodsp
