// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// Convolution applies a compile-time-sized odd-extent kernel tensor (§4.4):
//
//	result(i) = Σ_k kernel[k] · field[i + k - center]
//
// Dims gives the kernel's per-axis extent (each must be odd); Kernel is the flattened weight
// tensor in the same row-major (axis-0 fastest) order a RangedIndex over [0,Dims) visits.
// bc_width = max(Dims)/2.
type Convolution struct {
	Base
	A      Expression
	Dims   []int
	Kernel []float64
}

func NewConvolution(a Expression, dims []int, kernel []float64) *Convolution {
	n := 1
	for _, d := range dims {
		if d%2 == 0 {
			chk.Panic("Convolution: kernel extent must be odd, got %d", d)
		}
		n *= d
	}
	if n != len(kernel) {
		chk.Panic("Convolution: kernel has %d weights, expected %d for dims %v", len(kernel), n, dims)
	}
	return &Convolution{A: a, Dims: append([]int{}, dims...), Kernel: append([]float64{}, kernel...)}
}

func (o *Convolution) halfWidths() (lo, hi []int) {
	lo, hi = zeros(len(o.Dims)), zeros(len(o.Dims))
	for k, d := range o.Dims {
		lo[k], hi[k] = d/2, d/2
	}
	return
}

func (o *Convolution) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	lo, hi := o.halfWidths()
	o.shrinkByFootprint(meshOf(o.A), combineNames("conv", o.A), []Expression{o.A}, lo, hi)
}

func (o *Convolution) window() rng.AxisBox {
	return rng.NewAxisBox(zeros(len(o.Dims)), o.Dims)
}

func (o *Convolution) eval(i idx.MDIndex, ev func(idx.MDIndex) float64) float64 {
	lo, _ := o.halfWidths()
	sum := 0.0
	ri := idx.NewRangedIndex(o.window())
	k := 0
	for ri.Valid() {
		p := i.Clone()
		for d := range p {
			p[d] += ri.MDIndex[d] - lo[d]
		}
		sum += o.Kernel[k] * ev(p)
		k++
		ri.Inc()
	}
	return sum
}

func (o *Convolution) EvalAt(i idx.MDIndex) float64     { return o.eval(i, o.A.EvalAt) }
func (o *Convolution) EvalSafeAt(i idx.MDIndex) float64 { return o.eval(i, o.A.EvalSafeAt) }

func (o *Convolution) CouldSafeEval(i idx.MDIndex) bool {
	lo, _ := o.halfWidths()
	ri := idx.NewRangedIndex(o.window())
	for ri.Valid() {
		p := i.Clone()
		for d := range p {
			p[d] += ri.MDIndex[d] - lo[d]
		}
		if !o.A.CouldSafeEval(p) {
			return false
		}
		ri.Inc()
	}
	return true
}

// Preset smoothing kernels, grounded on the reference implementation's StencilKernel weight
// tables: "Uniform" kernels are plain box averages; "ShareWeighted" kernels bias toward the
// center with binomial-style weights.
var (
	StencilCube22Uniform = repeat(1./9., 9)
	StencilCube32Uniform = repeat(1./27., 27)

	StencilCube22ShareWeighted = []float64{
		1. / 16., 1. / 8., 1. / 16.,
		1. / 8., 1. / 4., 1. / 8.,
		1. / 16., 1. / 8., 1. / 16.,
	}
	StencilCube32ShareWeighted = []float64{
		1. / 64., 1. / 32., 1. / 64., 1. / 32., 1. / 16., 1. / 32., 1. / 64., 1. / 32., 1. / 64.,
		1. / 32., 1. / 16., 1. / 32., 1. / 16., 1. / 8., 1. / 16., 1. / 32., 1. / 16., 1. / 32.,
		1. / 64., 1. / 32., 1. / 64., 1. / 32., 1. / 16., 1. / 32., 1. / 64., 1. / 32., 1. / 64.,
	}
)

func repeat(w float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = w
	}
	return out
}

// NewSmoothKernel builds a Convolution smoothing A over a square/cube window using one of the
// StencilCube weight tables above (a thin Convolution wrapper, grounded on the reference
// FieldSmoother/StencilKernel pairing).
func NewSmoothKernel(a Expression, dims []int, weights []float64) *Convolution {
	return NewConvolution(a, dims, weights)
}
