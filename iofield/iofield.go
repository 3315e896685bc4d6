// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package iofield persists Field snapshots to disk, one file per (field, timestamp) pair. The
// reference field-output implementation groups timestamped field data under an HDF5 path of the
// form "/t{timestamp}/fieldName"; no HDF5 binding is available in this stack (nothing in the
// dependency corpus imports one), so the same addressing scheme is carried over as a flat,
// gob/json-encoded file naming convention instead: dir/fnkey_fieldName_t{timestamp}.enctype.
package iofield

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder for enctype ("json" or, by default, "gob")
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder for enctype
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Snapshot is the on-disk record for one (field, timestamp) pair: enough to validate shape on
// read-back and to repopulate a matching Field's assignable cells without reconstructing a mesh.
type Snapshot struct {
	FieldName string
	Timestamp float64
	Shape     []int // assignable range extent per axis, for a cheap shape check on Load
	Values    []float64
}

func fieldPath(dir, fnkey, fieldName string, timestamp float64, enctype string) string {
	return path.Join(dir, io.Sf("%s_%s_t%020.10f.%s", fnkey, fieldName, timestamp, enctype))
}

// Save encodes f's assignable cells (row-major) at the given timestamp.
func Save(dir, fnkey string, f *field.Field, timestamp float64, enctype string) (err error) {
	r := f.AssignableRange()
	shape := make([]int, r.Ndim())
	for d := range shape {
		shape[d] = r.Extent(d)
	}
	vals := make([]float64, 0, r.Count())
	for ri := idx.NewRangedIndex(r); ri.Valid(); ri.Inc() {
		vals = append(vals, f.Get(ri.MDIndex))
	}
	snap := Snapshot{FieldName: f.Name(), Timestamp: timestamp, Shape: shape, Values: vals}

	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	if err = enc.Encode(snap); err != nil {
		return chk.Err("iofield: encoding of field <%s> failed:\n%v", f.Name(), err)
	}

	fn := fieldPath(dir, fnkey, f.Name(), timestamp, enctype)
	fil, err := os.Create(fn)
	if err != nil {
		return chk.Err("iofield: cannot create <%s>:\n%v", fn, err)
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	return
}

// Load decodes a prior Save into f's assignable cells, failing if the stored shape does not
// match f's current assignable range extent.
func Load(dir, fnkey string, f *field.Field, timestamp float64, enctype string) (err error) {
	fn := fieldPath(dir, fnkey, f.Name(), timestamp, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return chk.Err("iofield: cannot open <%s>:\n%v", fn, err)
	}
	defer func() {
		if cerr := fil.Close(); err == nil {
			err = cerr
		}
	}()

	var snap Snapshot
	dec := GetDecoder(fil, enctype)
	if err = dec.Decode(&snap); err != nil {
		return chk.Err("iofield: cannot decode <%s>:\n%v", fn, err)
	}

	r := f.AssignableRange()
	for d := 0; d < r.Ndim(); d++ {
		if snap.Shape[d] != r.Extent(d) {
			return chk.Err("iofield: shape mismatch loading <%s>: stored %v, field assignable extent differs at axis %d (%d != %d)",
				fn, snap.Shape, d, snap.Shape[d], r.Extent(d))
		}
	}

	k := 0
	for ri := idx.NewRangedIndex(r); ri.Valid(); ri.Inc() {
		f.SetValue(ri.MDIndex, snap.Values[k])
		k++
	}
	return
}
