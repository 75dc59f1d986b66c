// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/db47h/numeric"
)

// mean works with any Number given a way to build a count.
func mean[T numeric.Number[T]](count func(n int) T, x T, xs ...T) T {
	for _, v := range xs {
		x = x.Add(v)
	}
	return x.Quo(count(len(xs) + 1))
}

func Example() {
	f := numeric.NewFrac[int]
	fmt.Println(mean(numeric.FracFromInt[int], f(1, 3), f(2, 3), f(1, 6)))

	c := numeric.NewComplex
	fmt.Println(mean(func(n int) numeric.Complex { return c(float64(n), 0) }, c(1, 3), c(1, 6)))
	// Output:
	// 7/18
	// 1+4.5i
}

func ExampleFracFromBig() {
	_, err := numeric.FracFromBig(big.NewInt(1), new(big.Int))
	fmt.Println(err, errors.Is(err, numeric.ErrDivisionByZero{}))
	// Output: numeric: division by zero in New true
}

func ExampleFrac_Cmp() {
	x := numeric.NewFrac(1, 3)
	y := numeric.NewFrac(2, 6)
	fmt.Println(x.Cmp(y), x.Cmp(numeric.NewFrac(1, 6)), x.Cmp(numeric.NewFrac(2, 3)))
	// Output: 0 1 -1
}

func ExampleComplex_Mul() {
	fmt.Println(numeric.NewComplex(1, 3).Mul(numeric.NewComplex(1, 6)))
	// Output: -17+9i
}
