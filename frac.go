// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// A Frac is an exact fraction num/den of arbitrary precision integers.
//
// A Frac is always in canonical form: gcd(|num|, den) == 1 and den > 0. The
// zero value is 0/1. Frac values are immutable and safe for concurrent use.
type Frac struct {
	// nil num means 0, nil den means 1. Never mutated once set.
	num, den *big.Int
}

// read-only
var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// NewFrac returns the fraction num/den in canonical form. It panics with
// ErrDivisionByZero if den == 0.
func NewFrac[I constraints.Integer](num, den I) Frac {
	if den == 0 {
		panic(ErrDivisionByZero{OpNew})
	}
	return normFrac(bigInteger(num), bigInteger(den))
}

// FracFromInt returns the fraction x/1.
func FracFromInt[I constraints.Integer](x I) Frac {
	return normFrac(bigInteger(x), new(big.Int).Set(bigOne))
}

// FracFromBig returns the fraction num/den in canonical form, or
// ErrDivisionByZero if den is zero. num and den are not modified.
func FracFromBig(num, den *big.Int) (Frac, error) {
	if den.Sign() == 0 {
		return Frac{}, ErrDivisionByZero{OpNew}
	}
	return normFrac(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FracFromRat returns the fraction with the same value as x.
func FracFromRat(x *big.Rat) Frac {
	// big.Rat is already reduced with a positive denominator.
	return Frac{new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom())}
}

func bigInteger[I constraints.Integer](x I) *big.Int {
	if x < 0 {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

// normFrac reduces num/den to lowest terms with a positive denominator and
// returns the result. It takes ownership of num and den, which must not be
// aliased. den must not be zero.
func normFrac(num, den *big.Int) Frac {
	if debugFrac && den.Sign() == 0 {
		panic("BUG: normFrac with zero denominator")
	}
	var g big.Int
	g.GCD(nil, nil, num, den)
	// gcd(0, 0) == 0; use 1 so that 0/0 would normalize to 0/1.
	if g.Sign() == 0 {
		g.Set(bigOne)
	}
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, &g)
		den.Quo(den, &g)
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return Frac{num, den}
}

const debugFrac = false

func (x Frac) n() *big.Int {
	if x.num == nil {
		return bigZero
	}
	return x.num
}

func (x Frac) d() *big.Int {
	if x.den == nil {
		return bigOne
	}
	return x.den
}

// Num returns a copy of the numerator of x; it may be <= 0.
func (x Frac) Num() *big.Int {
	return new(big.Int).Set(x.n())
}

// Denom returns a copy of the denominator of x; it is always > 0.
func (x Frac) Denom() *big.Int {
	return new(big.Int).Set(x.d())
}

// Add returns the sum x+y.
func (x Frac) Add(y Frac) Frac {
	a, b, c, d := x.n(), x.d(), y.n(), y.d()
	var t big.Int
	num := new(big.Int).Mul(a, d)
	num.Add(num, t.Mul(c, b))
	return normFrac(num, new(big.Int).Mul(b, d))
}

// Sub returns the difference x-y.
func (x Frac) Sub(y Frac) Frac {
	a, b, c, d := x.n(), x.d(), y.n(), y.d()
	var t big.Int
	num := new(big.Int).Mul(a, d)
	num.Sub(num, t.Mul(c, b))
	return normFrac(num, new(big.Int).Mul(b, d))
}

// Mul returns the product x*y.
func (x Frac) Mul(y Frac) Frac {
	return normFrac(new(big.Int).Mul(x.n(), y.n()), new(big.Int).Mul(x.d(), y.d()))
}

// Quo returns the quotient x/y. It panics with ErrDivisionByZero if y == 0.
func (x Frac) Quo(y Frac) Frac {
	if y.n().Sign() == 0 {
		panic(ErrDivisionByZero{OpQuo})
	}
	return normFrac(new(big.Int).Mul(x.n(), y.d()), new(big.Int).Mul(x.d(), y.n()))
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// The comparison is exact: it compares the cross products x.num*y.den and
// y.num*x.den.
func (x Frac) Cmp(y Frac) int {
	var l, r big.Int
	l.Mul(x.n(), y.d())
	r.Mul(y.n(), x.d())
	return l.Cmp(&r)
}

// Equal reports whether x and y have the same value.
func (x Frac) Equal(y Frac) bool {
	// canonical form makes the representation unique
	return x.n().Cmp(y.n()) == 0 && x.d().Cmp(y.d()) == 0
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x Frac) Sign() int {
	return x.n().Sign()
}

// IsInt reports whether the denominator of x is 1.
func (x Frac) IsInt() bool {
	return x.d().Cmp(bigOne) == 0
}

// Neg returns -x.
func (x Frac) Neg() Frac {
	if x.Sign() == 0 {
		return x
	}
	return Frac{new(big.Int).Neg(x.n()), x.d()}
}

// Abs returns |x|.
func (x Frac) Abs() Frac {
	if x.Sign() >= 0 {
		return x
	}
	return x.Neg()
}

// Inv returns 1/x. It panics with ErrDivisionByZero if x == 0.
func (x Frac) Inv() Frac {
	if x.Sign() == 0 {
		panic(ErrDivisionByZero{OpInv})
	}
	num, den := new(big.Int).Set(x.d()), new(big.Int).Set(x.n())
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return Frac{num, den}
}

// Rat returns a new big.Rat set to the value of x.
func (x Frac) Rat() *big.Rat {
	return new(big.Rat).SetFrac(x.n(), x.d())
}

// Float64 returns the float64 value nearest to x and a bool indicating
// whether it represents x exactly.
func (x Frac) Float64() (f float64, exact bool) {
	return x.Rat().Float64()
}
