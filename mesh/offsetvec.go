// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// offsetVec is a []float64 indexed by a possibly-negative logical index: v.at(i) reads
// val[i-offset]. It grounds the coordinate/spacing storage of CartesianMesh, which is addressed
// by cell index over an extended (ghost-padded) range rather than by a 0-based slice index.
type offsetVec struct {
	offset int
	val    []float64
}

func newOffsetVec(offset, n int) offsetVec {
	return offsetVec{offset: offset, val: make([]float64, n)}
}

func (v offsetVec) at(i int) float64     { return v.val[i-v.offset] }
func (v offsetVec) setAt(i int, x float64) { v.val[i-v.offset] = x }
func (v offsetVec) size() int            { return len(v.val) }
