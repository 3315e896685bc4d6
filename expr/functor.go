// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/cpmech/gofdm/idx"

// Functor adapts an arbitrary named Go function over N field arguments into an expression node
// (the "named-functor adapter" of §3.6), evaluated element-wise at the same index across every
// argument — e.g. wrapping a material-property lookup or a user PDE source term.
type Functor struct {
	Base
	Args   []Expression
	Fn     func(vals []float64) float64
	FnName string
}

func NewFunctor(name string, fn func(vals []float64) float64, args ...Expression) *Functor {
	return &Functor{Args: args, Fn: fn, FnName: name}
}

func (o *Functor) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.Args...)
	o.shrinkByFootprint(meshOf(o.Args...), combineNames(o.FnName, o.Args...), o.Args, nil, nil)
}

func (o *Functor) EvalAt(i idx.MDIndex) float64 {
	vals := make([]float64, len(o.Args))
	for k, a := range o.Args {
		vals[k] = a.EvalAt(i)
	}
	return o.Fn(vals)
}

func (o *Functor) EvalSafeAt(i idx.MDIndex) float64 {
	vals := make([]float64, len(o.Args))
	for k, a := range o.Args {
		vals[k] = a.EvalSafeAt(i)
	}
	return o.Fn(vals)
}

func (o *Functor) CouldSafeEval(i idx.MDIndex) bool { return couldSafeEvalAll(i, o.Args...) }
