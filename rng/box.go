// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rng implements axis-aligned integer boxes with stride, used to
// describe the iteration space of fields, stencils and AMR patches
package rng

import (
	"github.com/cpmech/gosl/chk"
)

// AxisBox is a d-dimensional, half-open, strided integer box:
//
//   cell i ∈ R  <=>  Start[k] ≤ i[k] < End[k]  for every axis k
//
// Invariants: Stride[k] ≥ 1; End[k] ≥ Start[k]; len(Start)==len(End)==len(Stride).
type AxisBox struct {
	Start  []int // lower bound (inclusive), per axis
	End    []int // upper bound (exclusive), per axis
	Stride []int // step, per axis; 1 unless produced by a strided slice
}

// NewAxisBox allocates a box with unit stride from start (inclusive) to end (exclusive)
func NewAxisBox(start, end []int) (r AxisBox) {
	chk.IntAssert(len(start), len(end))
	r.Start = append([]int{}, start...)
	r.End = append([]int{}, end...)
	r.Stride = make([]int, len(start))
	for k := range r.Stride {
		r.Stride[k] = 1
	}
	return
}

// Ndim returns the number of axes
func (r AxisBox) Ndim() int { return len(r.Start) }

// Extent returns the number of indices covered along axis k
func (r AxisBox) Extent(k int) int {
	if r.End[k] <= r.Start[k] {
		return 0
	}
	return (r.End[k] - r.Start[k] + r.Stride[k] - 1) / r.Stride[k]
}

// Count returns ∏ extent(k), the total number of indices in the box
func (r AxisBox) Count() int {
	n := 1
	for k := 0; k < r.Ndim(); k++ {
		n *= r.Extent(k)
	}
	return n
}

// InRange tells whether idx lies within r, axis-wise
func (r AxisBox) InRange(idx []int) bool {
	for k := 0; k < r.Ndim(); k++ {
		if idx[k] < r.Start[k] || idx[k] >= r.End[k] {
			return false
		}
	}
	return true
}

// Empty tells whether the box has no cells along some axis
func (r AxisBox) Empty() bool {
	for k := 0; k < r.Ndim(); k++ {
		if r.End[k] <= r.Start[k] {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of r
func (r AxisBox) Clone() AxisBox {
	return AxisBox{
		Start:  append([]int{}, r.Start...),
		End:    append([]int{}, r.End...),
		Stride: append([]int{}, r.Stride...),
	}
}

// commonStride panics with DimensionMismatch if a and b don't share dimension or stride
func commonStride(a, b AxisBox) {
	if a.Ndim() != b.Ndim() {
		chk.Panic("dim-mismatch: cannot combine ranges with ndim=%d and ndim=%d", a.Ndim(), b.Ndim())
	}
	for k := 0; k < a.Ndim(); k++ {
		if a.Stride[k] != b.Stride[k] {
			chk.Panic("dim-mismatch: stride mismatch on axis %d: %d != %d", k, a.Stride[k], b.Stride[k])
		}
	}
}

// Intersect returns the axis-wise intersection of a and b; strides must match (dim-mismatch otherwise)
func Intersect(a, b AxisBox) (r AxisBox) {
	commonStride(a, b)
	r.Start = make([]int, a.Ndim())
	r.End = make([]int, a.Ndim())
	r.Stride = append([]int{}, a.Stride...)
	for k := 0; k < a.Ndim(); k++ {
		r.Start[k] = max(a.Start[k], b.Start[k])
		r.End[k] = min(a.End[k], b.End[k])
		if r.End[k] < r.Start[k] {
			r.End[k] = r.Start[k]
		}
	}
	return
}

// Merge is Intersect with the additional requirement that strides are equal (alias, kept for
// readability at call sites that mean "merge two ranges of the same field")
func Merge(a, b AxisBox) AxisBox { return Intersect(a, b) }

// IntersectRange tells whether a and b overlap on every axis (symmetric)
func IntersectRange(a, b AxisBox) bool {
	if a.Ndim() != b.Ndim() {
		return false
	}
	for k := 0; k < a.Ndim(); k++ {
		if a.Start[k] >= b.End[k] || b.Start[k] >= a.End[k] {
			return false
		}
	}
	return true
}

// CommonRange is Intersect, but panics explicitly with the dim-mismatch message expected by §4.1
func CommonRange(a, b AxisBox) AxisBox { return Intersect(a, b) }

// MinCoverBox returns the smallest box containing both a and b (ignores stride)
func MinCoverBox(a, b AxisBox) (r AxisBox) {
	if a.Ndim() != b.Ndim() {
		chk.Panic("dim-mismatch: cannot cover ranges with ndim=%d and ndim=%d", a.Ndim(), b.Ndim())
	}
	r.Start = make([]int, a.Ndim())
	r.End = make([]int, a.Ndim())
	r.Stride = append([]int{}, a.Stride...)
	for k := 0; k < a.Ndim(); k++ {
		r.Start[k] = min(a.Start[k], b.Start[k])
		r.End[k] = max(a.End[k], b.End[k])
	}
	return
}

// Slice returns the face/slab of r along axis at position [pos, posEnd). If posEnd is omitted
// (i.e. posEnd==pos), a single-layer slab [pos,pos+1) is returned.
func (r AxisBox) Slice(axis, pos int, posEnd ...int) (s AxisBox) {
	s = r.Clone()
	end := pos + 1
	if len(posEnd) > 0 {
		end = posEnd[0]
	}
	s.Start[axis] = pos
	s.End[axis] = end
	return
}

// Shrink shrinks each face of r by w cells (both ends, every axis); a negative w grows instead
func (r AxisBox) Shrink(w int) (s AxisBox) {
	s = r.Clone()
	for k := 0; k < r.Ndim(); k++ {
		s.Start[k] += w
		s.End[k] -= w
		if s.End[k] < s.Start[k] {
			s.End[k] = s.Start[k]
		}
	}
	return
}

// ShrinkAxis shrinks only the given axis, by wStart at the low end and wEnd at the high end
func (r AxisBox) ShrinkAxis(axis, wStart, wEnd int) (s AxisBox) {
	s = r.Clone()
	s.Start[axis] += wStart
	s.End[axis] -= wEnd
	if s.End[axis] < s.Start[axis] {
		s.End[axis] = s.Start[axis]
	}
	return
}

// GetBCSlices returns the 2*ndim faces of thickness w: for each axis, the low-end slab and the
// high-end slab, in axis-major order (axis0-low, axis0-high, axis1-low, axis1-high, ...)
func (r AxisBox) GetBCSlices(w int) []AxisBox {
	faces := make([]AxisBox, 0, 2*r.Ndim())
	for k := 0; k < r.Ndim(); k++ {
		lo := r.Clone()
		lo.End[k] = lo.Start[k] + w
		hi := r.Clone()
		hi.Start[k] = hi.End[k] - w
		faces = append(faces, lo, hi)
	}
	return faces
}

// EqualInts compares two int slices elementwise
func EqualInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Splittable tells whether some axis has more than one index, i.e. the box can be bisected for
// parallel iteration (§4.1)
func (r AxisBox) Splittable() bool {
	for k := 0; k < r.Ndim(); k++ {
		if r.Extent(k) > 1 {
			return true
		}
	}
	return false
}

// longestAxis returns the axis with the largest extent (ties broken by lowest index)
func (r AxisBox) longestAxis() int {
	best, bestExt := 0, -1
	for k := 0; k < r.Ndim(); k++ {
		if e := r.Extent(k); e > bestExt {
			best, bestExt = k, e
		}
	}
	return best
}

// Split bisects r along its longest axis, returning two halves whose union is r and whose
// intersection is empty. Panics if r is not Splittable.
func (r AxisBox) Split() (left, right AxisBox) {
	if !r.Splittable() {
		chk.Panic("cannot split a non-splittable range (every axis has extent ≤ 1)")
	}
	axis := r.longestAxis()
	mid := r.Start[axis] + (r.Extent(axis)/2)*r.Stride[axis]
	left, right = r.Clone(), r.Clone()
	left.End[axis] = mid
	right.Start[axis] = mid
	return
}

// SplitProportional bisects r's longest axis at start + round(left/(left+right) * extent), used
// for load-balanced parallel splitting when the two halves carry unequal estimated work.
func (r AxisBox) SplitProportional(leftWeight, rightWeight float64) (left, right AxisBox) {
	if !r.Splittable() {
		chk.Panic("cannot split a non-splittable range (every axis has extent ≤ 1)")
	}
	axis := r.longestAxis()
	extent := r.Extent(axis)
	frac := leftWeight / (leftWeight + rightWeight)
	cut := int(frac*float64(extent) + 0.5)
	if cut < 1 {
		cut = 1
	}
	if cut > extent-1 {
		cut = extent - 1
	}
	mid := r.Start[axis] + cut*r.Stride[axis]
	left, right = r.Clone(), r.Clone()
	left.End[axis] = mid
	right.Start[axis] = mid
	return
}
