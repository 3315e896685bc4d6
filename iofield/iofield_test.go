// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iofield

import (
	"os"
	"testing"

	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

func Test_iofield01(tst *testing.T) {

	chk.PrintTitle("iofield01: save then load a field round-trips its values")

	dir, err := os.MkdirTemp("", "gofdm-iofield")
	if err != nil {
		tst.Fatalf("MkdirTemp failed: %v", err)
	}
	defer os.RemoveAll(dir)

	m := mesh.NewMeshBuilder(1).SetPadWidth(1).SetAxisUniform(0, 0, 1, 5, mesh.Symm).Build()
	assignable := rng.NewAxisBox([]int{0}, []int{5})
	f := field.NewField("u", m, []field.Location{field.Center},
		[]field.BC{field.NewBareBC(field.Symm)}, []field.BC{field.NewBareBC(field.Symm)}, assignable, 1)

	r := f.AssignableRange()
	k := 0.0
	for ri := idx.NewRangedIndex(r); ri.Valid(); ri.Inc() {
		f.SetValue(ri.MDIndex, k)
		k++
	}

	for _, enctype := range []string{"gob", "json"} {
		if err := Save(dir, "run", f, 1.5, enctype); err != nil {
			tst.Fatalf("Save (%s) failed: %v", enctype, err)
		}

		g := field.NewField("u", m, []field.Location{field.Center},
			[]field.BC{field.NewBareBC(field.Symm)}, []field.BC{field.NewBareBC(field.Symm)}, assignable, 1)
		if err := Load(dir, "run", g, 1.5, enctype); err != nil {
			tst.Fatalf("Load (%s) failed: %v", enctype, err)
		}

		for ri := idx.NewRangedIndex(r); ri.Valid(); ri.Inc() {
			want := f.Get(ri.MDIndex)
			got := g.Get(ri.MDIndex)
			if want != got {
				tst.Fatalf("(%s) round-trip mismatch at %v: want %v, got %v", enctype, ri.MDIndex, want, got)
			}
		}
	}
}
