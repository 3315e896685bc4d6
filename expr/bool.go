// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Boolean operators treat any nonzero value as true (§3.6 "boolean").

func isTrue(x float64) bool { return x != 0 }

func And(a, b Expression) *Binary {
	return newBinary("&&", func(x, y float64) float64 { return boolToF(isTrue(x) && isTrue(y)) }, a, b)
}
func Or(a, b Expression) *Binary {
	return newBinary("||", func(x, y float64) float64 { return boolToF(isTrue(x) || isTrue(y)) }, a, b)
}
func Not(a Expression) *Unary {
	return newUnary("!", func(x float64) float64 { return boolToF(!isTrue(x)) }, a)
}
