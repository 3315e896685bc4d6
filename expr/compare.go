// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Comparison operators return 1 for true, 0 for false (§3.6 "comparison").

func boolToF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func Lt(a, b Expression) *Binary {
	return newBinary("<", func(x, y float64) float64 { return boolToF(x < y) }, a, b)
}
func Le(a, b Expression) *Binary {
	return newBinary("<=", func(x, y float64) float64 { return boolToF(x <= y) }, a, b)
}
func Gt(a, b Expression) *Binary {
	return newBinary(">", func(x, y float64) float64 { return boolToF(x > y) }, a, b)
}
func Ge(a, b Expression) *Binary {
	return newBinary(">=", func(x, y float64) float64 { return boolToF(x >= y) }, a, b)
}
func Eq(a, b Expression) *Binary {
	return newBinary("==", func(x, y float64) float64 { return boolToF(x == y) }, a, b)
}
func Ne(a, b Expression) *Binary {
	return newBinary("!=", func(x, y float64) float64 { return boolToF(x != y) }, a, b)
}
