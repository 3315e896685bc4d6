// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// Neighbor records one distributed-shard adjacency: to update our padding region we receive
// Recv from Rank and, when Rank asks, we send it Send. ShiftCode encodes a periodic wrap
// direction per axis (0 = no wrap, +1/-1 = wrap across the high/low face) so halo exchange can
// tell a genuine neighbor from a periodic self-wrap (§3.5, §5).
type Neighbor struct {
	Rank      int
	Send      rng.AxisBox
	Recv      rng.AxisBox
	ShiftCode []int
}

// EvenSplitStrategy partitions a global AssignableRange into nProcs near-equal shards along its
// longest axis, recursively, mirroring AxisBox.Split's bisection so that Split's stability
// invariant (union == whole, pairwise disjoint) carries over to the N-way partition.
func EvenSplitStrategy(global rng.AxisBox, nProcs int) []rng.AxisBox {
	if nProcs <= 0 {
		chk.Panic("EvenSplitStrategy: nProcs must be positive, got %d", nProcs)
	}
	shards := []rng.AxisBox{global}
	for len(shards) < nProcs {
		// split the shard with the largest cell count
		best := 0
		for i, s := range shards {
			if s.Count() > shards[best].Count() {
				best = i
			}
		}
		if !shards[best].Splittable() {
			break // cannot subdivide further; fewer shards than requested
		}
		left, right := shards[best].Split()
		shards[best] = left
		shards = append(shards, right)
	}
	return shards
}

// UpdatePadding exchanges a Field's padding region with every registered Neighbor via MPI
// point-to-point send/recv: for each neighbor we send the interior band matching its Send
// range, and receive into our own padding the band it sends matching our Recv range
// (grounded on gosl/mpi's SendD/RecvD point-to-point pair).
func (f *Field) UpdatePadding() {
	if !mpi.IsOn() || len(f.Neighbors) == 0 {
		return
	}
	for _, nb := range f.Neighbors {
		sendBuf := f.gatherBox(nb.Send)
		recvBuf := make([]float64, nb.Recv.Count())
		mpi.SendD(sendBuf, nb.Rank)
		mpi.RecvD(recvBuf, nb.Rank)
		f.scatterBox(nb.Recv, recvBuf)
	}
}

func (f *Field) gatherBox(box rng.AxisBox) []float64 {
	out := make([]float64, 0, box.Count())
	ri := f.newRangedIndex(box)
	for ri.Valid() {
		out = append(out, f.values.At(ri.MDIndex))
		ri.Inc()
	}
	return out
}

func (f *Field) scatterBox(box rng.AxisBox, buf []float64) {
	ri := f.newRangedIndex(box)
	i := 0
	for ri.Valid() {
		f.values.Set(ri.MDIndex, buf[i])
		i++
		ri.Inc()
	}
}
