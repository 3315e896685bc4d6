// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/gofdm/idx"
)

func couldSafeEvalAll(i idx.MDIndex, args ...Expression) bool {
	for _, a := range args {
		if !a.CouldSafeEval(i) {
			return false
		}
	}
	return true
}

// Binary is an element-wise binary operator: its value at i is Fn(A.evalAt(i), B.evalAt(i)).
// Metadata is the intersection of both arguments' ranges (§4.4 "binary/unary arithmetic:
// metadata inherits from the field argument").
type Binary struct {
	Base
	A, B   Expression
	Fn     func(a, b float64) float64
	OpName string
}

func newBinary(opName string, fn func(a, b float64) float64, a, b Expression) *Binary {
	return &Binary{A: a, B: b, Fn: fn, OpName: opName}
}

func (o *Binary) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A, o.B)
	o.shrinkByFootprint(meshOf(o.A, o.B), combineNames(o.OpName, o.A, o.B), []Expression{o.A, o.B}, nil, nil)
}

func (o *Binary) EvalAt(i idx.MDIndex) float64 { return o.Fn(o.A.EvalAt(i), o.B.EvalAt(i)) }
func (o *Binary) EvalSafeAt(i idx.MDIndex) float64 {
	return o.Fn(o.A.EvalSafeAt(i), o.B.EvalSafeAt(i))
}
func (o *Binary) CouldSafeEval(i idx.MDIndex) bool { return couldSafeEvalAll(i, o.A, o.B) }

// Unary is an element-wise unary operator: Fn(A.evalAt(i)).
type Unary struct {
	Base
	A      Expression
	Fn     func(a float64) float64
	OpName string
}

func newUnary(opName string, fn func(a float64) float64, a Expression) *Unary {
	return &Unary{A: a, Fn: fn, OpName: opName}
}

func (o *Unary) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	o.shrinkByFootprint(meshOf(o.A), combineNames(o.OpName, o.A), []Expression{o.A}, nil, nil)
}

func (o *Unary) EvalAt(i idx.MDIndex) float64     { return o.Fn(o.A.EvalAt(i)) }
func (o *Unary) EvalSafeAt(i idx.MDIndex) float64 { return o.Fn(o.A.EvalSafeAt(i)) }
func (o *Unary) CouldSafeEval(i idx.MDIndex) bool { return o.A.CouldSafeEval(i) }

// Add, Sub, Mul, Div build the four elementwise arithmetic operators.
func Add(a, b Expression) *Binary { return newBinary("+", func(x, y float64) float64 { return x + y }, a, b) }
func Sub(a, b Expression) *Binary { return newBinary("-", func(x, y float64) float64 { return x - y }, a, b) }
func Mul(a, b Expression) *Binary { return newBinary("*", func(x, y float64) float64 { return x * y }, a, b) }
func Div(a, b Expression) *Binary { return newBinary("/", func(x, y float64) float64 { return x / y }, a, b) }

// Neg negates its argument.
func Neg(a Expression) *Unary { return newUnary("-", func(x float64) float64 { return -x }, a) }

// Scale multiplies by a compile-time constant (kept as a closure, not a full Expression, since a
// bare scalar has no mesh/range of its own).
func Scale(c float64, a Expression) *Unary {
	return newUnary("scale", func(x float64) float64 { return c * x }, a)
}

// AddConst adds a compile-time constant.
func AddConst(c float64, a Expression) *Unary {
	return newUnary("+c", func(x float64) float64 { return x + c }, a)
}
