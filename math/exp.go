// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/numeric"
)

var one = numeric.FracFromInt(1)

// Exp returns the exact partial sum of the Taylor series of e**x
//
//	1 + x + x²/2! + ... + x**(n-1)/(n-1)!
//
// using n terms. Exp returns 0 for n == 0.
func Exp(x numeric.Frac, n uint) numeric.Frac {
	var (
		z    numeric.Frac
		term = one
	)
	for k := uint(1); k <= n; k++ {
		z = z.Add(term)
		// next term: xᵏ/k! = xᵏ⁻¹/(k-1)! × x/k
		term = term.Mul(x).Quo(numeric.FracFromInt(k))
	}
	return z
}

// Expm1 is like Exp but omits the leading 1 of the series. It returns 0 for
// n <= 1.
func Expm1(x numeric.Frac, n uint) numeric.Frac {
	if n <= 1 {
		return numeric.Frac{}
	}
	return Exp(x, n).Sub(one)
}
