// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"slices"

	"github.com/db47h/numeric"
)

func cmp[T numeric.Ordered[T]](x, y T) int { return x.Cmp(y) }

// Sort sorts xs in ascending order. The sort is stable.
func Sort[T numeric.Ordered[T]](xs []T) {
	slices.SortStableFunc(xs, cmp[T])
}

// IsSorted reports whether xs is sorted in ascending order.
func IsSorted[T numeric.Ordered[T]](xs []T) bool {
	return slices.IsSortedFunc(xs, cmp[T])
}

// Min returns the smallest of x and xs. Ties resolve to the first one.
func Min[T numeric.Ordered[T]](x T, xs ...T) T {
	for _, v := range xs {
		if v.Cmp(x) < 0 {
			x = v
		}
	}
	return x
}

// Max returns the largest of x and xs. Ties resolve to the first one.
func Max[T numeric.Ordered[T]](x T, xs ...T) T {
	for _, v := range xs {
		if v.Cmp(x) > 0 {
			x = v
		}
	}
	return x
}
