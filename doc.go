// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package numeric implements exact arbitrary-precision fractions and
floating-point complex numbers behind a common arithmetic capability.

Both Frac and Complex satisfy the generic interface

    type Number[T any] interface {
        Add(y T) T
        Sub(y T) T
        Mul(y T) T
        Quo(y T) T
        String() string
    }

so that algorithms can be written once for any type T constrained by
Number[T]. Frac additionally satisfies Ordered[T] through its Cmp method.

The zero value for a Frac corresponds to 0/1 and the zero value for a
Complex corresponds to 0+0i. Thus, new values can be declared in the usual
ways and denote 0 without further initialization:

    var x numeric.Frac // x is 0/1

Alternatively, new values can be created with the functions:

    func NewFrac[I constraints.Integer](num, den I) Frac
    func FracFromBig(num, den *big.Int) (Frac, error)
    func NewComplex(re, im float64) Complex

Unlike big.Rat, values are immutable: operations never modify their operands
and always return a new value. Consequently Frac and Complex values can be
shared freely between goroutines. Operations are methods of the form:

    func (x Frac) Binary(y Frac) Frac    // z = x binary y
    func (x Frac) Unary() Frac           // z = unary x
    func (x Frac) Pred() P               // p = pred(x)

A Frac is always kept in canonical form: its numerator and denominator have
no common factor and the denominator is strictly positive. Every operation
re-normalizes its result, so two fractions of equal value have identical
numerators and denominators.

Operations that cannot report errors, like Quo with a zero divisor, panic
with an ErrDivisionByZero. Constructors and decoders return the same error
instead. The context package provides a wrapper that converts these panics
into a sticky error.
*/
package numeric
