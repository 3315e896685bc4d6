// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"bytes"
	"fmt"

	"github.com/cpmech/gofdm/eqn"
	"github.com/cpmech/gosl/io"
)

// dumpSystem writes the assembled CSR and rhs to dumpPath as (row, col, val) triples followed
// by the rhs vector, grounded on the corpus's io.WriteFile(path, *bytes.Buffer) convention
// (§4.6 "dump(A,b)"). A blank dumpPath means dumping is disabled.
func dumpSystem(dumpPath string, sys *eqn.System) error {
	if dumpPath == "" {
		return nil
	}
	var buf bytes.Buffer
	for r := 0; r < sys.Rows.N; r++ {
		for k := sys.Rows.RowPtr[r]; k < sys.Rows.RowPtr[r+1]; k++ {
			fmt.Fprintf(&buf, "%d %d %.17g\n", r, sys.Rows.ColIdx[k], sys.Rows.Val[k])
		}
	}
	fmt.Fprintf(&buf, "# rhs\n")
	for r, v := range sys.Rhs {
		fmt.Fprintf(&buf, "%d %.17g\n", r, v)
	}
	io.WriteFile(dumpPath, &buf)
	return nil
}
