// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// Number is the arithmetic capability shared by Frac and Complex. T is the
// implementing type itself, so that generic code is written with the
// constraint
//
//	func F[T Number[T]](x, y T) T
//
// Implementations must not modify their receiver or argument.
type Number[T any] interface {
	// Add returns the sum x+y.
	Add(y T) T
	// Sub returns the difference x-y.
	Sub(y T) T
	// Mul returns the product x*y.
	Mul(y T) T
	// Quo returns the quotient x/y. It panics with ErrDivisionByZero if y
	// is zero.
	Quo(y T) T

	String() string
}

// Ordered is a Number with a total order.
type Ordered[T any] interface {
	Number[T]

	// Cmp compares x and y and returns:
	//
	//	-1 if x <  y
	//	 0 if x == y
	//	+1 if x >  y
	//
	Cmp(y T) int
}

var (
	_ Ordered[Frac]   = Frac{}
	_ Number[Complex] = Complex{}
)
