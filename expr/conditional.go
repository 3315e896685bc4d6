// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/rng"
)

// Conditional returns T.evalAt(i) if C.evalAt(i) is true, else U.evalAt(i). Its accessible range
// is the intersection of all three arguments' ranges; it is never assignable (§4.4).
type Conditional struct {
	Base
	C, T, U Expression
}

func NewConditional(c, t, u Expression) *Conditional {
	return &Conditional{C: c, T: t, U: u}
}

func (o *Conditional) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.C, o.T, o.U)
	acc := rng.Intersect(o.C.AccessibleRange(), rng.Intersect(o.T.AccessibleRange(), o.U.AccessibleRange()))
	o.MeshRef = o.C.Mesh()
	o.NameStr = combineNames("cond", o.C, o.T, o.U)
	o.LocVec = make([]field.Location, o.C.Ndim())
	for k := range o.LocVec {
		o.LocVec[k] = o.C.LocAt(k)
	}
	o.Accessible, o.Local, o.Logical = acc, acc, acc
}

func (o *Conditional) EvalAt(i idx.MDIndex) float64 {
	if isTrue(o.C.EvalAt(i)) {
		return o.T.EvalAt(i)
	}
	return o.U.EvalAt(i)
}

func (o *Conditional) EvalSafeAt(i idx.MDIndex) float64 {
	if isTrue(o.C.EvalSafeAt(i)) {
		return o.T.EvalSafeAt(i)
	}
	return o.U.EvalSafeAt(i)
}

func (o *Conditional) CouldSafeEval(i idx.MDIndex) bool {
	return couldSafeEvalAll(i, o.C, o.T, o.U)
}
