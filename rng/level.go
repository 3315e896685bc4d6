// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

// LevelRange is an AxisBox qualified by its position in an AMR hierarchy: the refinement Level
// it belongs to, and the Part (patch index within that level).
type LevelRange struct {
	AxisBox
	Level int
	Part  int
}

// NewLevelRange wraps box with the given level/part labels
func NewLevelRange(box AxisBox, level, part int) LevelRange {
	return LevelRange{AxisBox: box, Level: level, Part: part}
}

// Clone returns a deep copy, preserving level/part
func (r LevelRange) Clone() LevelRange {
	return LevelRange{AxisBox: r.AxisBox.Clone(), Level: r.Level, Part: r.Part}
}

// SameLevelPart tells whether a and b refer to the same (level, part) pair
func SameLevelPart(a, b LevelRange) bool {
	return a.Level == b.Level && a.Part == b.Part
}

// UpscaleBox returns box with coordinates scaled by ratio raised to (Level difference); used to
// compare a coarse-level box against a fine-level box after refinement (§3.3, §4.3 step E).
func UpscaleBox(box AxisBox, ratio, levels int) AxisBox {
	factor := 1
	for i := 0; i < levels; i++ {
		factor *= ratio
	}
	s := box.Clone()
	for k := 0; k < s.Ndim(); k++ {
		s.Start[k] *= factor
		s.End[k] *= factor
	}
	return s
}

// DownscaleBox is the inverse of UpscaleBox: divides coordinates by ratio^levels, rounding the
// start down and the end up so the result still covers the original box.
func DownscaleBox(box AxisBox, ratio, levels int) AxisBox {
	factor := 1
	for i := 0; i < levels; i++ {
		factor *= ratio
	}
	s := box.Clone()
	for k := 0; k < s.Ndim(); k++ {
		s.Start[k] = floorDiv(s.Start[k], factor)
		s.End[k] = ceilDiv(s.End[k], factor)
	}
	return s
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
