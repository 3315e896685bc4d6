// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// Min and Max are the element-wise extrema operators (§3.6 "min/max"). A single NaN-propagating
// form is kept (math.Min/math.Max semantics); there is no "ignore NaN" variant, since silently
// discarding a NaN operand would hide an InvalidBCFunctor (§7) instead of propagating it.

func Min(a, b Expression) *Binary { return newBinary("min", math.Min, a, b) }
func Max(a, b Expression) *Binary { return newBinary("max", math.Max, a, b) }
