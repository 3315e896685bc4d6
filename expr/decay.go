// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
)

// Decayable composes a high-order operator with a lower-order fallback (§3.6, §4.4): when the
// high-order footprint fits, use it; otherwise fall back to Decayed. Used so WENO53 can decay to
// a first-order biased upwind/downwind scheme near boundaries.
type Decayable struct {
	Base
	High   Expression
	Decayed Expression
}

// NewDecayable builds the decay chain: high is tried first, decayed is the fallback.
func NewDecayable(high, decayed Expression) *Decayable {
	return &Decayable{High: high, Decayed: decayed}
}

func (o *Decayable) Prepare() {
	if o.markPrepared() {
		return
	}
	o.High.Prepare()
	o.Decayed.Prepare()
	// published ranges match the widest of the two, i.e. the fallback's (§4.4)
	o.MeshRef = o.Decayed.Mesh()
	o.NameStr = "decay(" + o.High.Name() + ", " + o.Decayed.Name() + ")"
	o.Accessible = o.Decayed.AccessibleRange()
	o.Local = o.Decayed.LocalRange()
	o.Logical = o.Decayed.LogicalRange()
	o.LocVec = make([]field.Location, o.Decayed.Ndim())
	for k := range o.LocVec {
		o.LocVec[k] = o.Decayed.LocAt(k)
	}
}

// EvalAt always takes the high-order path (caller guarantees its footprint fits, per contract).
func (o *Decayable) EvalAt(i idx.MDIndex) float64 { return o.High.EvalAt(i) }

func (o *Decayable) EvalSafeAt(i idx.MDIndex) float64 {
	if o.High.CouldSafeEval(i) {
		return o.High.EvalSafeAt(i)
	}
	return o.Decayed.EvalSafeAt(i)
}

func (o *Decayable) CouldSafeEval(i idx.MDIndex) bool {
	return o.High.CouldSafeEval(i) || o.Decayed.CouldSafeEval(i)
}
