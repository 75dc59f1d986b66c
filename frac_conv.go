// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion of Fracs.

package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// String returns x in the form "num/den". The denominator is always present,
// so an integer n prints as "n/1".
func (x Frac) String() string {
	return string(x.Append(nil))
}

// Append appends the string form of x, as generated by x.String, to buf and
// returns the extended buffer.
func (x Frac) Append(buf []byte) []byte {
	buf = x.n().Append(buf, 10)
	buf = append(buf, '/')
	return x.d().Append(buf, 10)
}

var _ fmt.Formatter = Frac{}

// Format implements fmt.Formatter. It accepts the verbs 'v' and 's', which
// print x.String(), and 'f', which prints the decimal expansion of x rounded
// to the given precision (6 if omitted). Width and the '-' flag are
// honored; a '+' flag prints a plus sign for non-negative values with 'f'.
func (x Frac) Format(s fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 'v', 's':
		buf = x.Append(nil)
	case 'f', 'F':
		prec, ok := s.Precision()
		if !ok {
			prec = 6
		}
		if s.Flag('+') && x.Sign() >= 0 {
			buf = append(buf, '+')
		}
		buf = append(buf, x.Rat().FloatString(prec)...)
	default:
		fmt.Fprintf(s, "%%!%c(numeric.Frac=%s)", verb, x.String())
		return
	}
	var pad int
	if w, ok := s.Width(); ok && w > len(buf) {
		pad = w - len(buf)
	}
	if s.Flag('-') {
		s.Write(buf)
		writeMultiple(s, " ", pad)
		return
	}
	writeMultiple(s, " ", pad)
	s.Write(buf)
}

func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

// ParseFrac parses s, which must be of the form
//
//	frac = integer [ "/" integer ] .
//	integer = [ "+" | "-" ] digits .
//
// with decimal digits, and returns the corresponding fraction in canonical
// form. Surrounding white space is not allowed. If the denominator is zero,
// the returned error is ErrDivisionByZero.
func ParseFrac(s string) (Frac, error) {
	ns, ds, hasDen := strings.Cut(s, "/")
	num, ok := new(big.Int).SetString(ns, 10)
	if !ok {
		return Frac{}, fmt.Errorf("numeric: cannot parse numerator %q of %q", ns, s)
	}
	if !hasDen {
		return Frac{num, nil}, nil
	}
	den, ok := new(big.Int).SetString(ds, 10)
	if !ok {
		return Frac{}, fmt.Errorf("numeric: cannot parse denominator %q of %q", ds, s)
	}
	if den.Sign() == 0 {
		return Frac{}, ErrDivisionByZero{OpNew}
	}
	return normFrac(num, den), nil
}

var _ fmt.Scanner = (*Frac)(nil)

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned fraction. It accepts the verbs 'v' and 's' and the format accepted
// by ParseFrac.
func (z *Frac) Scan(s fmt.ScanState, ch rune) error {
	if ch != 'v' && ch != 's' {
		return fmt.Errorf("numeric: Frac.Scan: invalid verb %q", ch)
	}
	s.SkipSpace()
	tok, err := s.Token(false, isFracRune)
	if err != nil {
		return err
	}
	f, err := ParseFrac(string(tok))
	if err != nil {
		return err
	}
	*z = f
	return nil
}

func isFracRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '+' || r == '-' || r == '/'
}
