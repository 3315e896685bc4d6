// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// Classification operators (§3.6 "classification"): report a numeric property of the argument
// as a 0/1 mask, so they can feed straight into Conditional or boolean combinators.

func IsNaN(a Expression) *Unary    { return newUnary("isnan", func(x float64) float64 { return boolToF(math.IsNaN(x)) }, a) }
func IsInf(a Expression) *Unary    { return newUnary("isinf", func(x float64) float64 { return boolToF(math.IsInf(x, 0)) }, a) }
func IsFinite(a Expression) *Unary {
	return newUnary("isfinite", func(x float64) float64 { return boolToF(!math.IsNaN(x) && !math.IsInf(x, 0)) }, a)
}

// Sign returns -1, 0 or 1.
func Sign(a Expression) *Unary {
	return newUnary("sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	}, a)
}

func Abs(a Expression) *Unary { return newUnary("abs", math.Abs, a) }
