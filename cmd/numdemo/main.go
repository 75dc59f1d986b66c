// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command numdemo prints a demonstration of exact fraction and complex
// number arithmetic: sorting fractions and evaluating the binomial square
// identities.
package main

import (
	"os"
)

func main() {
	if newRootCmd().Execute() != nil {
		os.Exit(1)
	}
}
