// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Kind is the boundary-condition variant attached per axis per end of a field (§3.4)
type Kind int

const (
	Dirichlet Kind = iota // prescribed value
	Neumann               // prescribed normal derivative
	Periodic              // wrap to the opposite end
	Symm                  // reflection, no sign flip
	ASymm                 // reflection, sign flip
	Internal              // no BC: values come from a coupled neighbor
)

func (k Kind) String() string {
	switch k {
	case Dirichlet:
		return "dirichlet"
	case Neumann:
		return "neumann"
	case Periodic:
		return "periodic"
	case Symm:
		return "symm"
	case ASymm:
		return "asymm"
	case Internal:
		return "internal"
	}
	return "unknown"
}

// BC is a boundary-condition descriptor: a Kind plus, for Dirichlet/Neumann, a functor giving
// the prescribed value/flux as a function of the face's (time, position) — a constant BC is
// just a fun.Cte wrapping the value.
type BC struct {
	Kind Kind
	Fcn  fun.Func // nil for Periodic/Symm/ASymm/Internal
}

// NewConstBC builds a Dirichlet or Neumann BC with a constant value
func NewConstBC(kind Kind, value float64) BC {
	if kind != Dirichlet && kind != Neumann {
		chk.Panic("NewConstBC: kind %s does not carry a value", kind)
	}
	return BC{Kind: kind, Fcn: &fun.Cte{C: value}}
}

// NewFuncBC builds a Dirichlet or Neumann BC whose value is given by fcn(t, x)
func NewFuncBC(kind Kind, fcn fun.Func) BC {
	if kind != Dirichlet && kind != Neumann {
		chk.Panic("NewFuncBC: kind %s does not carry a value", kind)
	}
	return BC{Kind: kind, Fcn: fcn}
}

// NewBareBC builds a Periodic/Symm/ASymm/Internal BC (no functor)
func NewBareBC(kind Kind) BC {
	if kind == Dirichlet || kind == Neumann {
		chk.Panic("NewBareBC: kind %s requires a value, use NewConstBC/NewFuncBC", kind)
	}
	return BC{Kind: kind}
}

// Value evaluates the BC's prescribed value/flux at (t, x); panics if the BC carries none
func (bc BC) Value(t float64, x []float64) float64 {
	if bc.Fcn == nil {
		chk.Panic("BC %s carries no value functor", bc.Kind)
	}
	return bc.Fcn.F(t, x)
}
