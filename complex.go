// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math/cmplx"
	"strconv"
)

// A Complex is a complex number re+im·i with float64 parts. The zero value
// is 0+0i. Complex values are immutable.
type Complex struct {
	re, im float64
}

// NewComplex returns re+im·i.
func NewComplex(re, im float64) Complex {
	return Complex{re, im}
}

// FromComplex128 returns a Complex with the value of c.
func FromComplex128(c complex128) Complex {
	return Complex{real(c), imag(c)}
}

// Real returns the real part of x.
func (x Complex) Real() float64 { return x.re }

// Imag returns the imaginary part of x.
func (x Complex) Imag() float64 { return x.im }

// Complex128 returns x as a complex128.
func (x Complex) Complex128() complex128 { return complex(x.re, x.im) }

func (x Complex) Add(y Complex) Complex {
	return Complex{x.re + y.re, x.im + y.im}
}

func (x Complex) Sub(y Complex) Complex {
	return Complex{x.re - y.re, x.im - y.im}
}

func (x Complex) Mul(y Complex) Complex {
	// (a+bi) * (c+di) = (ac-bd) + (ad+bc)i
	a, b, c, d := x.re, x.im, y.re, y.im
	return Complex{a*c - b*d, a*d + b*c}
}

// Quo returns x/y. It panics with ErrDivisionByZero if re²+im² of y is 0.
// There is no scaling: the result may overflow where the built-in complex
// division would not.
func (x Complex) Quo(y Complex) Complex {
	// (a+bi) / (c+di) = ((ac+bd) + (bc-ad)i) / (cc+dd)
	a, b, c, d := x.re, x.im, y.re, y.im
	ccdd := c*c + d*d
	if ccdd == 0 {
		panic(ErrDivisionByZero{OpQuo})
	}
	return Complex{(a*c + b*d) / ccdd, (b*c - a*d) / ccdd}
}

// Conj returns the complex conjugate of x.
func (x Complex) Conj() Complex {
	return Complex{x.re, -x.im}
}

// Abs returns the modulus of x.
func (x Complex) Abs() float64 {
	return cmplx.Abs(x.Complex128())
}

// Equal reports whether both parts of x and y compare equal.
func (x Complex) Equal(y Complex) bool {
	return x.re == y.re && x.im == y.im
}

// String returns x in the form "re+imi". Both parts use the shortest
// representation that round-trips. A negative imaginary part is not special
// cased: 3-2i prints as "3+-2i".
func (x Complex) String() string {
	return string(x.Append(nil))
}

// Append appends the string form of x to buf and returns the extended buffer.
func (x Complex) Append(buf []byte) []byte {
	buf = strconv.AppendFloat(buf, x.re, 'g', -1, 64)
	buf = append(buf, '+')
	buf = strconv.AppendFloat(buf, x.im, 'g', -1, 64)
	return append(buf, 'i')
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Complex) MarshalText() ([]byte, error) {
	return x.Append(nil), nil
}
