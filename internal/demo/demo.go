// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo runs the fixed demonstration of fraction sorting and the
// binomial identities over fractions and complex numbers.
package demo

import (
	"fmt"
	"io"

	"github.com/op/go-logging"

	"github.com/db47h/numeric"
	"github.com/db47h/numeric/identity"
	"github.com/db47h/numeric/math"
)

// Run writes the demonstration to w. Diagnostics go to log, which may be nil.
func Run(w io.Writer, log *logging.Logger) {
	if log == nil {
		log = logging.MustGetLogger("demo")
	}

	fracs := []numeric.Frac{
		numeric.NewFrac(1, 3),
		numeric.NewFrac(2, 3),
		numeric.NewFrac(1, 6),
	}

	fmt.Fprintln(w, "Before sorting:")
	printAll(w, fracs)

	log.Debugf("sorting %d fractions", len(fracs))
	math.Sort(fracs)

	fmt.Fprintln(w, "\nAfter sorting:")
	printAll(w, fracs)

	fa, fb := numeric.NewFrac(1, 3), numeric.NewFrac(1, 6)
	lhs, rhs := identity.APlusBSquare(w, fa, fb)
	checkFrac(log, "(a+b)^2", lhs, rhs)
	lhs, rhs = identity.SquaresDifference(w, fa, fb)
	checkFrac(log, "(a-b)^2", lhs, rhs)

	ca, cb := numeric.NewComplex(1, 3), numeric.NewComplex(1, 6)
	identity.APlusBSquare(w, ca, cb)
	identity.SquaresDifference(w, ca, cb)
}

func printAll(w io.Writer, fracs []numeric.Frac) {
	for _, f := range fracs {
		fmt.Fprintln(w, f)
	}
}

// checkFrac logs an error if both sides of an identity over fractions differ.
func checkFrac(log *logging.Logger, name string, lhs, rhs numeric.Frac) {
	if lhs.Cmp(rhs) != 0 {
		log.Errorf("%s: %v != %v", name, lhs, rhs)
		return
	}
	log.Debugf("%s: both sides equal %v", name, lhs)
}
