// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gofdm/eqn"
	"github.com/cpmech/gosl/la"
)

// BiCGStab is the (optionally preconditioned) stabilized bi-conjugate gradient backend, the
// default workhorse for the non-symmetric/indefinite systems a biased-upwind discretization
// produces (§4.6).
type BiCGStab struct {
	p        Params
	precond  Preconditioner
	iterNum  int
	finalRes float64
}

func NewBiCGStab() *BiCGStab { return &BiCGStab{precond: &None{}} }

func (o *BiCGStab) Init(p Params) {
	o.p = p
	if p.MaxIter == 0 {
		o.p.MaxIter = 500
	}
	if p.Tol == 0 {
		o.p.Tol = 1e-10
	}
}

func (o *BiCGStab) Setup(sys *eqn.System) error { return o.precond.Setup(sys) }

func (o *BiCGStab) SetPrecond(p Preconditioner) { o.precond = p }

func (o *BiCGStab) GetIterNum() int            { return o.iterNum }
func (o *BiCGStab) GetFinalRes() float64       { return o.finalRes }
func (o *BiCGStab) Dump(sys *eqn.System) error { return dumpSystem(o.p.DumpPath, sys) }

// Solve writes the converged (or best-effort, on maxIter exhaustion) iterate back into x.
func (o *BiCGStab) Solve(sys *eqn.System, x []float64) error {
	cur := append([]float64{}, x...)
	r := vecSub(sys.Rhs, sys.Rows.MatVec(cur))
	rHat := append([]float64{}, r...)
	rho, alpha, omega := 1.0, 1.0, 1.0
	v := make([]float64, sys.Rows.N)
	p := make([]float64, sys.Rows.N)

	res0 := vecNorm(r)
	if res0 == 0 {
		o.finalRes = 0
		copy(x, cur)
		return nil
	}

	for it := 0; it < o.p.MaxIter; it++ {
		rhoNew := vecDot(rHat, r)
		if rhoNew == 0 {
			break
		}
		if it > 0 {
			beta := (rhoNew / rho) * (alpha / omega)
			p = vecAdd(r, vecScale(beta, vecSub(p, vecScale(omega, v))))
		} else {
			copy(p, r)
		}
		rho = rhoNew

		pHat := o.precond.Apply(p)
		v = sys.Rows.MatVec(pHat)
		alpha = rho / vecDot(rHat, v)

		s := vecSub(r, vecScale(alpha, v))
		o.iterNum = it + 1
		if vecNorm(s) < o.p.Tol*res0 {
			cur = vecAdd(cur, vecScale(alpha, pHat))
			o.finalRes = vecNorm(s)
			break
		}

		sHat := o.precond.Apply(s)
		t := sys.Rows.MatVec(sHat)
		tDotT := vecDot(t, t)
		if tDotT == 0 {
			omega = 0
		} else {
			omega = vecDot(t, s) / tDotT
		}

		cur = vecAdd(cur, vecAdd(vecScale(alpha, pHat), vecScale(omega, sHat)))
		r = vecSub(s, vecScale(omega, t))
		o.finalRes = vecNorm(r)
		if o.finalRes < o.p.Tol*res0 || omega == 0 {
			break
		}
	}
	copy(x, cur)
	return nil
}

// vecAdd, vecSub, vecScale, vecDot and vecNorm are thin wrappers around gosl/la's vector
// routines (la.VecAdd2, la.VecCopy, la.VecDot, la.VecNorm — the same ops the teacher calls
// throughout ele/fem for shape-function Jacobians and strain updates, e.g. la.VecNorm in
// ele/diffusion/diffusion.go:372, la.VecAdd2 in mdl/solid/driver.go:169), kept as free functions
// here only to fix the out-of-place signature every Krylov/multigrid backend in this package
// expects (gosl's versions write into a caller-supplied output slice).
func vecAdd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	la.VecAdd2(out, 1, a, 1, b)
	return out
}

func vecSub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	la.VecAdd2(out, 1, a, -1, b)
	return out
}

func vecScale(c float64, a []float64) []float64 {
	out := make([]float64, len(a))
	la.VecCopy(out, c, a)
	return out
}

func vecDot(a, b []float64) float64 { return la.VecDot(a, b) }

func vecNorm(a []float64) float64 { return la.VecNorm(a) }
