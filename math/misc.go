// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math implements generic algorithms over the numeric.Number and
// numeric.Ordered capabilities.
package math

import (
	"github.com/db47h/numeric"
)

// Sqr returns x*x.
func Sqr[T numeric.Number[T]](x T) T {
	return x.Mul(x)
}

// Twice returns x+x.
func Twice[T numeric.Number[T]](x T) T {
	return x.Add(x)
}

// Pow returns x**n computed by repeated squaring. Since a Number has no
// multiplicative identity, n must be at least 1. Pow panics if n == 0.
func Pow[T numeric.Number[T]](x T, n uint64) T {
	if n == 0 {
		panic("math: Pow with zero exponent")
	}
	var (
		y    T
		hasY bool
	)
	z := x
	for n > 1 {
		if n%2 != 0 {
			if hasY {
				y = y.Mul(z)
			} else {
				y, hasY = z, true
			}
		}
		z = z.Mul(z)
		n /= 2
	}
	if !hasY {
		return z
	}
	return z.Mul(y)
}

// Sum returns x + xs[0] + xs[1] + ...
func Sum[T numeric.Number[T]](x T, xs ...T) T {
	for _, v := range xs {
		x = x.Add(v)
	}
	return x
}

// Product returns x * xs[0] * xs[1] * ...
func Product[T numeric.Number[T]](x T, xs ...T) T {
	for _, v := range xs {
		x = x.Mul(v)
	}
	return x
}
