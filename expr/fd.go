// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
)

func unitOffset(ndim, axis int) []int {
	e := make([]int, ndim)
	e[axis] = 1
	return e
}

func faceDx(a Expression, axis int, i idx.MDIndex) float64 {
	m := a.Mesh()
	if a.LocAt(axis) == field.Corner {
		return m.Dx(axis, i[axis])
	}
	return (m.Dx(axis, i[axis]) + m.Dx(axis, i[axis]+1)) / 2
}

func faceDxDown(a Expression, axis int, i idx.MDIndex) float64 {
	m := a.Mesh()
	if a.LocAt(axis) == field.Corner {
		return m.Dx(axis, i[axis]-1)
	}
	return (m.Dx(axis, i[axis]-1) + m.Dx(axis, i[axis])) / 2
}

// D1FirstOrderBiasedUpwind is (u[i+e]-u[i])/dxFace along Axis (§4.4). bc_width = 1 on the high
// face; shrinks the accessible range's high end by 1.
type D1FirstOrderBiasedUpwind struct {
	Base
	A    Expression
	Axis int
}

func NewD1FirstOrderBiasedUpwind(a Expression, axis int) *D1FirstOrderBiasedUpwind {
	return &D1FirstOrderBiasedUpwind{A: a, Axis: axis}
}

func (o *D1FirstOrderBiasedUpwind) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	hi := zeros(o.A.Ndim())
	hi[o.Axis] = 1
	o.shrinkByFootprint(meshOf(o.A), combineNames("d1up", o.A), []Expression{o.A}, nil, hi)
}

func (o *D1FirstOrderBiasedUpwind) plusIndex(i idx.MDIndex) idx.MDIndex {
	out := i.Clone()
	out[o.Axis]++
	return out
}

func (o *D1FirstOrderBiasedUpwind) EvalAt(i idx.MDIndex) float64 {
	return (o.A.EvalAt(o.plusIndex(i)) - o.A.EvalAt(i)) / faceDx(o.A, o.Axis, i)
}
func (o *D1FirstOrderBiasedUpwind) EvalSafeAt(i idx.MDIndex) float64 {
	return (o.A.EvalSafeAt(o.plusIndex(i)) - o.A.EvalSafeAt(i)) / faceDx(o.A, o.Axis, i)
}
func (o *D1FirstOrderBiasedUpwind) CouldSafeEval(i idx.MDIndex) bool {
	return o.A.CouldSafeEval(i) && o.A.CouldSafeEval(o.plusIndex(i))
}

// D1FirstOrderBiasedDownwind is (u[i]-u[i-e])/dxFace; mirror of the upwind form.
type D1FirstOrderBiasedDownwind struct {
	Base
	A    Expression
	Axis int
}

func NewD1FirstOrderBiasedDownwind(a Expression, axis int) *D1FirstOrderBiasedDownwind {
	return &D1FirstOrderBiasedDownwind{A: a, Axis: axis}
}

func (o *D1FirstOrderBiasedDownwind) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	lo := zeros(o.A.Ndim())
	lo[o.Axis] = 1
	o.shrinkByFootprint(meshOf(o.A), combineNames("d1down", o.A), []Expression{o.A}, lo, nil)
}

func (o *D1FirstOrderBiasedDownwind) minusIndex(i idx.MDIndex) idx.MDIndex {
	out := i.Clone()
	out[o.Axis]--
	return out
}

func (o *D1FirstOrderBiasedDownwind) EvalAt(i idx.MDIndex) float64 {
	return (o.A.EvalAt(i) - o.A.EvalAt(o.minusIndex(i))) / faceDxDown(o.A, o.Axis, i)
}
func (o *D1FirstOrderBiasedDownwind) EvalSafeAt(i idx.MDIndex) float64 {
	return (o.A.EvalSafeAt(i) - o.A.EvalSafeAt(o.minusIndex(i))) / faceDxDown(o.A, o.Axis, i)
}
func (o *D1FirstOrderBiasedDownwind) CouldSafeEval(i idx.MDIndex) bool {
	return o.A.CouldSafeEval(i) && o.A.CouldSafeEval(o.minusIndex(i))
}

// D2SecondOrderCentered is the classic three-point Laplacian on a non-uniform mesh (§4.4):
//
//	((u[i+e]-u[i])/dxR - (u[i]-u[i-e])/dxL) / ((dxL+dxR)/2)
//
// bc_width = 1: EvalAt requires both neighbors present; EvalSafeAt extends one layer further via
// the argument's own BC-consulting EvalSafeAt (Dirichlet/Neumann/Symm/Periodic ghost values).
type D2SecondOrderCentered struct {
	Base
	A    Expression
	Axis int
}

func NewD2SecondOrderCentered(a Expression, axis int) *D2SecondOrderCentered {
	return &D2SecondOrderCentered{A: a, Axis: axis}
}

func (o *D2SecondOrderCentered) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	lo := zeros(o.A.Ndim())
	hi := zeros(o.A.Ndim())
	lo[o.Axis], hi[o.Axis] = 1, 1
	o.shrinkByFootprint(meshOf(o.A), combineNames("d2c", o.A), []Expression{o.A}, lo, hi)
}

func (o *D2SecondOrderCentered) neighbors(i idx.MDIndex) (plus, minus idx.MDIndex) {
	plus, minus = i.Clone(), i.Clone()
	plus[o.Axis]++
	minus[o.Axis]--
	return
}

func (o *D2SecondOrderCentered) eval(i idx.MDIndex, up, self, down func(idx.MDIndex) float64) float64 {
	plus, minus := o.neighbors(i)
	dxR := faceDx(o.A, o.Axis, i)
	dxL := faceDxDown(o.A, o.Axis, i)
	u0 := self(i)
	return ((up(plus)-u0)/dxR - (u0-down(minus))/dxL) / ((dxL + dxR) / 2)
}

func (o *D2SecondOrderCentered) EvalAt(i idx.MDIndex) float64 {
	return o.eval(i, o.A.EvalAt, o.A.EvalAt, o.A.EvalAt)
}
func (o *D2SecondOrderCentered) EvalSafeAt(i idx.MDIndex) float64 {
	return o.eval(i, o.A.EvalSafeAt, o.A.EvalSafeAt, o.A.EvalSafeAt)
}
func (o *D2SecondOrderCentered) CouldSafeEval(i idx.MDIndex) bool {
	plus, minus := o.neighbors(i)
	return o.A.CouldSafeEval(i) && o.A.CouldSafeEval(plus) && o.A.CouldSafeEval(minus)
}
