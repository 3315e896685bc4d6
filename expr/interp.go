// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
)

// D1Linear interpolates along Axis between the corner and center locations (§4.4): corner→center
// averages the two adjacent corner values; center→corner averages the two adjacent center
// values. Either direction shrinks the accessible range's high end by 1 on Axis.
type D1Linear struct {
	Base
	A      Expression
	Axis   int
	ToLoc  field.Location
}

func NewD1Linear(a Expression, axis int, toLoc field.Location) *D1Linear {
	return &D1Linear{A: a, Axis: axis, ToLoc: toLoc}
}

func (o *D1Linear) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	hi := zeros(o.A.Ndim())
	hi[o.Axis] = 1
	o.shrinkByFootprint(meshOf(o.A), combineNames("d1lin", o.A), []Expression{o.A}, nil, hi)
	o.LocVec[o.Axis] = o.ToLoc
}

func (o *D1Linear) plusIndex(i idx.MDIndex) idx.MDIndex {
	out := i.Clone()
	out[o.Axis]++
	return out
}

func (o *D1Linear) EvalAt(i idx.MDIndex) float64 {
	return (o.A.EvalAt(i) + o.A.EvalAt(o.plusIndex(i))) / 2
}
func (o *D1Linear) EvalSafeAt(i idx.MDIndex) float64 {
	return (o.A.EvalSafeAt(i) + o.A.EvalSafeAt(o.plusIndex(i))) / 2
}
func (o *D1Linear) CouldSafeEval(i idx.MDIndex) bool {
	return o.A.CouldSafeEval(i) && o.A.CouldSafeEval(o.plusIndex(i))
}
