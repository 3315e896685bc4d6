// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// ndArray is a dense float64 buffer addressable by an arbitrary multi-index within Range,
// generalizing mesh's 1D offsetVec to d dimensions (row-major, last-axis slowest, grounded on
// the same OffsetVector addressing idea as mesh/offsetvec.go).
type ndArray struct {
	Range rng.AxisBox
	data  []float64
}

func newNdArray(r rng.AxisBox) ndArray {
	return ndArray{Range: r, data: make([]float64, r.Count())}
}

func (a ndArray) linOf(p []int) int {
	lin := 0
	mul := 1
	for k := 0; k < a.Range.Ndim(); k++ {
		lin += mul * ((p[k] - a.Range.Start[k]) / a.Range.Stride[k])
		mul *= a.Range.Extent(k)
	}
	return lin
}

// At returns the value stored at p; panics if p is outside Range.
func (a ndArray) At(p []int) float64 {
	if !a.Range.InRange(p) {
		chk.Panic("ndArray.At: index %v outside range %v", p, a.Range)
	}
	return a.data[a.linOf(p)]
}

// Set stores x at p; panics if p is outside Range.
func (a ndArray) Set(p []int, x float64) {
	if !a.Range.InRange(p) {
		chk.Panic("ndArray.Set: index %v outside range %v", p, a.Range)
	}
	a.data[a.linOf(p)] = x
}

// Fill sets every cell to x
func (a ndArray) Fill(x float64) {
	for i := range a.data {
		a.data[i] = x
	}
}
