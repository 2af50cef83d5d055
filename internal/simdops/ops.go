// Package simdops binds the vector kernels used by the impulse response
// stage to github.com/tphakala/simd for the sample type in use.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported sample types.
type Float interface {
	float32 | float64
}

// Ops holds the kernels for one sample type. Resolve it once with For at
// construction time and call through it from Process.
type Ops[F Float] struct {
	// DotProductUnsafe requires len(a) == len(b). It computes one
	// convolution output from the reversed weights and a history window.
	DotProductUnsafe func(a, b []F) F

	// Sum adds all elements. Used for the DC gain of a set of taps.
	Sum func(a []F) F

	// Scale sets dst[i] = a[i] * s. dst and a may alias.
	Scale func(dst, a []F, s F)
}

var (
	float32Ops = &Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
	}
	float64Ops = &Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
	}
)

// For returns the shared kernels for F.
func For[F Float]() *Ops[F] {
	var table any = float64Ops
	if _, single := any(F(0)).(float32); single {
		table = float32Ops
	}

	ops, ok := table.(*Ops[F])
	if !ok {
		panic("simdops: no kernels for sample type")
	}
	return ops
}
