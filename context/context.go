// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-catching contexts for numeric values.
//
// Operators of the form
//
//	func (c *Context[T]) BinaryOp(x, y T) T
//
// return x.Op(y). If the operation panics with numeric.ErrDivisionByZero,
// the panic is caught and the operation returns the zero value of T. Further
// operations with the context will be no-ops (they simply return the zero
// value of T) until (*Context).Err is called to check for errors.
//
// Panics of any other kind are not caught.
package context

import (
	"errors"

	"github.com/db47h/numeric"
)

// A Context is a wrapper around numeric values that facilitates error
// handling. The zero value is ready to use. A Context is not safe for
// concurrent use.
type Context[T numeric.Number[T]] struct {
	err error
}

// New returns a new Context for T.
func New[T numeric.Number[T]]() *Context[T] {
	return new(Context[T])
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context[T]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// catch recovers an ErrDivisionByZero panic into c.err. It must be deferred
// directly by the operation.
func (c *Context[T]) catch() {
	if r := recover(); r != nil {
		var dz numeric.ErrDivisionByZero
		if err, ok := r.(error); ok && errors.As(err, &dz) {
			c.err = dz
			return
		}
		panic(r)
	}
}

// Add returns the sum x+y.
func (c *Context[T]) Add(x, y T) (r T) {
	if c.err != nil {
		return
	}
	defer c.catch()
	return x.Add(y)
}

// Sub returns the difference x-y.
func (c *Context[T]) Sub(x, y T) (r T) {
	if c.err != nil {
		return
	}
	defer c.catch()
	return x.Sub(y)
}

// Mul returns the product x*y.
func (c *Context[T]) Mul(x, y T) (r T) {
	if c.err != nil {
		return
	}
	defer c.catch()
	return x.Mul(y)
}

// Quo returns the quotient x/y.
func (c *Context[T]) Quo(x, y T) (r T) {
	if c.err != nil {
		return
	}
	defer c.catch()
	return x.Quo(y)
}

// Sqr returns x*x.
func (c *Context[T]) Sqr(x T) (r T) {
	return c.Mul(x, x)
}

// MulAdd returns x*y + u.
func (c *Context[T]) MulAdd(x, y, u T) (r T) {
	if c.err != nil {
		return
	}
	defer c.catch()
	return x.Mul(y).Add(u)
}
