// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package idx implements multi-dimensional indices over rng.AxisBox ranges: plain MDIndex,
// level/part-qualified LevelMDIndex, and the range-bound, incrementable RangedIndex used for
// row-major traversal.
package idx

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// MDIndex is a d-tuple of integer coordinates
type MDIndex []int

// Clone returns a copy of m
func (m MDIndex) Clone() MDIndex { return append(MDIndex{}, m...) }

// Hash returns an xxHash-based hash of the index, stable across axes
func (m MDIndex) Hash() uint64 {
	buf := make([]byte, 8*len(m))
	for k, v := range m {
		binary.LittleEndian.PutUint64(buf[8*k:], uint64(v))
	}
	return xxhash.Sum64(buf)
}

// Less orders two indices last-axis-major (row-major): the last axis varies slowest
func Less(a, b MDIndex) bool {
	for k := len(a) - 1; k >= 0; k-- {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

// Equal tells whether a and b hold the same coordinates
func Equal(a, b MDIndex) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

// LevelMDIndex adds AMR level/part labels to an MDIndex
type LevelMDIndex struct {
	MDIndex
	Level int
	Part  int
}

// ToLevel converts idx (declared at level `from`) to its coordinates at level `to`, by
// multiplying/dividing by ratio raised to the level difference (§3.2)
func (idx LevelMDIndex) ToLevel(to, ratio int) LevelMDIndex {
	out := LevelMDIndex{MDIndex: idx.MDIndex.Clone(), Level: to, Part: idx.Part}
	diff := to - idx.Level
	if diff == 0 {
		return out
	}
	factor := 1
	for i := 0; i < abs(diff); i++ {
		factor *= ratio
	}
	for k := range out.MDIndex {
		if diff > 0 {
			out.MDIndex[k] *= factor
		} else {
			out.MDIndex[k] /= factor
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RangedIndex is an MDIndex bound to a parent rng.AxisBox; it supports in-place increment,
// decrement and strided advance with carry propagation across axes for row-major traversal.
type RangedIndex struct {
	MDIndex
	Range rng.AxisBox
}

// NewRangedIndex returns a RangedIndex at the first cell of r (r.Start)
func NewRangedIndex(r rng.AxisBox) RangedIndex {
	return RangedIndex{MDIndex: r.Start.Clone(), Range: r}
}

// Valid tells whether the index is still within Range (false once iteration is exhausted)
func (ri RangedIndex) Valid() bool {
	return ri.Range.InRange(ri.MDIndex)
}

// Inc advances ri by one cell in row-major order (first axis fastest), carrying into the next
// axis on overflow. Once past the last cell, ri becomes invalid (MDIndex[last] == End[last]).
func (ri *RangedIndex) Inc() {
	ri.Advance(1)
}

// Dec moves ri back by one cell in row-major order; symmetric to Inc.
func (ri *RangedIndex) Dec() {
	ri.Advance(-1)
}

// Advance moves ri forward (or, if k is negative, backward) by k cells in row-major linear
// order, carrying across axes exactly like multi-digit arithmetic with mixed per-axis radices.
// Overflowing past the last cell or underflowing before the first leaves ri in the canonical
// "end" / "rend" sentinel position (all axes at Start except the last, which sits at End), so
// that a subsequent Valid() call reports false exactly once iteration is exhausted.
func (ri *RangedIndex) Advance(k int) {
	ndim := ri.Range.Ndim()
	if ndim == 0 {
		return
	}
	total := ri.Range.Count()
	if total == 0 {
		chk.Panic("cannot advance a RangedIndex over a zero-extent range")
	}

	// convert current position to a flat linear offset
	lin := 0
	mul := 1
	for d := 0; d < ndim; d++ {
		lin += mul * ((ri.MDIndex[d] - ri.Range.Start[d]) / ri.Range.Stride[d])
		mul *= ri.Range.Extent(d)
	}
	lin += k

	if lin < 0 || lin >= total {
		// canonical out-of-range sentinel: clamp the last axis to End, zero the rest
		for d := 0; d < ndim; d++ {
			ri.MDIndex[d] = ri.Range.Start[d]
		}
		ri.MDIndex[ndim-1] = ri.Range.End[ndim-1]
		return
	}

	for d := 0; d < ndim; d++ {
		ext := ri.Range.Extent(d)
		rem := lin % ext
		lin /= ext
		ri.MDIndex[d] = ri.Range.Start[d] + rem*ri.Range.Stride[d]
	}
}
