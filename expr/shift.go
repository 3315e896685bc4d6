// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/cpmech/gofdm/idx"

// Shift re-indexes its argument by a fixed offset: Shift(a, e).evalAt(i) == a.evalAt(i+e). Its
// accessible range is the argument's range with, per axis, the face the offset points toward
// shrunk by |offset| (so that every index the shifted node can serve, the argument can actually
// supply).
type Shift struct {
	Base
	A      Expression
	Offset []int
}

func NewShift(a Expression, offset []int) *Shift {
	return &Shift{A: a, Offset: append([]int{}, offset...)}
}

func (o *Shift) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	shrinkLow := make([]int, len(o.Offset))
	shrinkHigh := make([]int, len(o.Offset))
	for k, d := range o.Offset {
		if d > 0 {
			shrinkHigh[k] = d
		} else {
			shrinkLow[k] = -d
		}
	}
	o.shrinkByFootprint(meshOf(o.A), combineNames("shift", o.A), []Expression{o.A}, shrinkLow, shrinkHigh)
}

func (o *Shift) shifted(i idx.MDIndex) idx.MDIndex {
	out := i.Clone()
	for k, d := range o.Offset {
		out[k] += d
	}
	return out
}

func (o *Shift) EvalAt(i idx.MDIndex) float64     { return o.A.EvalAt(o.shifted(i)) }
func (o *Shift) EvalSafeAt(i idx.MDIndex) float64 { return o.A.EvalSafeAt(o.shifted(i)) }
func (o *Shift) CouldSafeEval(i idx.MDIndex) bool { return o.A.CouldSafeEval(o.shifted(i)) }
