// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/mpi"
)

// ColoredBlockedMDRangeMapper assigns every (color, globalIndex) pair a dense, gap-free global
// row/column integer (§4.5 step 3): within this rank's block, colors are laid out sequentially —
// color 0's assignableRange cells first, then color 1's, etc.; across ranks, this rank's block
// starts right after the sum of every lower-ranked rank's block size.
type ColoredBlockedMDRangeMapper struct {
	Targets     TargetSet
	colorOffset []int // colorOffset[j] = total assignable cell count of colors 0..j-1 within this rank's block
	blockBase   int
}

// NewColoredBlockedMDRangeMapper builds the mapper for the given targets, computing this rank's
// block base via an MPI all-reduce exclusive prefix sum (mpi.AllReduceSum is the only confirmed
// collective reduction primitive in the corpus; no point-to-point gather is used here).
func NewColoredBlockedMDRangeMapper(targets TargetSet) *ColoredBlockedMDRangeMapper {
	m := &ColoredBlockedMDRangeMapper{Targets: targets}
	m.colorOffset = make([]int, len(targets)+1)
	for j, t := range targets {
		m.colorOffset[j+1] = m.colorOffset[j] + t.AssignableRange().Count()
	}
	m.blockBase = computeBlockBase(m.colorOffset[len(targets)])
	return m
}

func computeBlockBase(localSize int) int {
	if !mpi.IsOn() {
		return 0
	}
	n := mpi.Size()
	r := mpi.Rank()
	src := make([]float64, n)
	src[r] = float64(localSize)
	dst := make([]float64, n)
	mpi.AllReduceSum(dst, src)
	base := 0
	for k := 0; k < r; k++ {
		base += int(dst[k])
	}
	return base
}

// BlockSize returns the total row count contributed by this rank (Σ_j count(assignable(T_j))).
func (m *ColoredBlockedMDRangeMapper) BlockSize() int {
	return m.colorOffset[len(m.Targets)]
}

// Row returns the dense global row/column for unknown i of the given color.
func (m *ColoredBlockedMDRangeMapper) Row(color int, i idx.MDIndex) int {
	local := linearWithin(m.Targets[color].AssignableRange(), i)
	return m.blockBase + m.colorOffset[color] + local
}

// linearWithin gives the row-major (axis-0 fastest) linear offset of i within box, the same
// addressing scheme ndArray.linOf and idx.RangedIndex.Advance use.
func linearWithin(box rng.AxisBox, i idx.MDIndex) int {
	lin := 0
	mul := 1
	for k := 0; k < box.Ndim(); k++ {
		lin += mul * ((i[k] - box.Start[k]) / box.Stride[k])
		mul *= box.Extent(k)
	}
	return lin
}
