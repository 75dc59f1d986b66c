// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package identity evaluates both sides of the binomial square identities
//
//	(a+b)² = a² + 2ab + b²
//	(a-b)² = a² - 2ab + b²
//
// for any numeric.Number and prints the intermediate values. Both sides are
// computed independently; nothing is asserted. The caller gets both sides
// back to compare them as it sees fit.
package identity

import (
	"fmt"
	"io"

	"github.com/db47h/numeric"
	"github.com/db47h/numeric/math"
)

// twoAB returns ab + ab.
func twoAB[T numeric.Number[T]](a, b T) T {
	return math.Twice(a.Mul(b))
}

// APlusBSquare evaluates (a+b)² and a² + 2ab + b², prints them to w and
// returns them.
func APlusBSquare[T numeric.Number[T]](w io.Writer, a, b T) (lhs, rhs T) {
	fmt.Fprintln(w, "\nTestAPlusBSquare:")
	fmt.Fprintf(w, "=== Testing (a+b)^2 = a^2 + 2ab + b^2 with a = %s, b = %s ===\n", a, b)

	lhs = math.Sqr(a.Add(b))
	rhs = math.Sqr(a).Add(twoAB(a, b)).Add(math.Sqr(b))

	fmt.Fprintf(w, "(a+b)^2 = %s\n", lhs)
	fmt.Fprintf(w, "a^2 + 2ab + b^2 = %s\n", rhs)
	return lhs, rhs
}

// SquaresDifference evaluates (a-b)² and a² - 2ab + b², prints them to w
// along with a-b and returns them.
func SquaresDifference[T numeric.Number[T]](w io.Writer, a, b T) (lhs, rhs T) {
	fmt.Fprintln(w, "\nTestSquaresDifference:")
	fmt.Fprintf(w, "=== Testing (a-b)^2 = a^2 - 2ab + b^2 with a = %s, b = %s ===\n", a, b)

	aMinusB := a.Sub(b)
	lhs = math.Sqr(aMinusB)
	rhs = math.Sqr(a).Sub(twoAB(a, b)).Add(math.Sqr(b))

	fmt.Fprintf(w, "(a-b) = %s\n", aMinusB)
	fmt.Fprintf(w, "(a-b)^2 = %s\n", lhs)
	fmt.Fprintf(w, "a^2 - 2ab + b^2 = %s\n", rhs)
	return lhs, rhs
}
