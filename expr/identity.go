// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/cpmech/gofdm/idx"

// Identity passes its argument through unchanged; used to adapt a *field.Field (or any other
// Expression) into a separate derived node that carries the argument's own name, e.g. when the
// same field participates twice in one equation under different roles.
type Identity struct {
	Base
	A Expression
}

func NewIdentity(a Expression) *Identity { return &Identity{A: a} }

func (o *Identity) Prepare() {
	if o.markPrepared() {
		return
	}
	prepareArgs(o.A)
	o.shrinkByFootprint(meshOf(o.A), o.A.Name(), []Expression{o.A}, nil, nil)
}

func (o *Identity) EvalAt(i idx.MDIndex) float64     { return o.A.EvalAt(i) }
func (o *Identity) EvalSafeAt(i idx.MDIndex) float64 { return o.A.EvalSafeAt(i) }
func (o *Identity) CouldSafeEval(i idx.MDIndex) bool { return o.A.CouldSafeEval(i) }
