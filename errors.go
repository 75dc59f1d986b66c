// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// Op identifies the operation that raised an error.
type Op byte

// Operations that can fail with ErrDivisionByZero.
const (
	OpNew    Op = iota // construction with a zero denominator
	OpQuo              // division by zero
	OpInv              // inverse of zero
	OpDecode           // decoding a zero denominator
)

//go:generate stringer -type=Op -trimprefix=Op

// An ErrDivisionByZero is returned by constructors and decoders given a zero
// denominator, and raised as a panic by operations like Quo that would divide
// by zero. An ErrDivisionByZero implements the error interface.
type ErrDivisionByZero struct {
	Op Op
}

func (err ErrDivisionByZero) Error() string {
	return "numeric: division by zero in " + err.Op.String()
}

// Is reports whether target is an ErrDivisionByZero, regardless of the
// operation, so that errors.Is(err, ErrDivisionByZero{}) matches any of them.
func (err ErrDivisionByZero) Is(target error) bool {
	_, ok := target.(ErrDivisionByZero)
	return ok
}
