package audiodsp

import (
	"fmt"

	"github.com/tphakala/go-audio-dsp/block"
)

// Chain runs processors in series, feeding each one the previous output.
// A Chain is itself a block.Processor.
type Chain[F block.Float] struct {
	stages []block.Processor[F]
}

// NewChain creates a chain of the given processors, in order.
func NewChain[F block.Float](stages ...block.Processor[F]) *Chain[F] {
	c := &Chain[F]{stages: make([]block.Processor[F], 0, len(stages))}
	for _, s := range stages {
		c.Append(s)
	}
	return c
}

// Append adds p to the end of the chain. Nil processors are ignored.
func (c *Chain[F]) Append(p block.Processor[F]) {
	if p == nil {
		return
	}
	c.stages = append(c.stages, p)
}

// Len returns the number of stages.
func (c *Chain[F]) Len() int {
	return len(c.stages)
}

// Stage returns the processor at index i.
func (c *Chain[F]) Stage(i int) block.Processor[F] {
	return c.stages[i]
}

// Process runs every stage on the block. An empty chain returns the inputs
// unchanged. Errors are wrapped with the index of the failing stage.
func (c *Chain[F]) Process(inputs [][]F, numChannels, numFrames int) ([][]F, error) {
	if err := block.CheckInputs(inputs, numChannels, numFrames); err != nil {
		return nil, err
	}

	current := inputs[:numChannels]
	for i, stage := range c.stages {
		out, err := stage.Process(current, numChannels, numFrames)
		if err != nil {
			return nil, fmt.Errorf("chain stage %d: %w", i, err)
		}
		current = out
	}
	return current, nil
}

// Reset clears the state of every stage that supports it.
func (c *Chain[F]) Reset() {
	for _, stage := range c.stages {
		if r, ok := stage.(interface{ Reset() }); ok {
			r.Reset()
		}
	}
}
