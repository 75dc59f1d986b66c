// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"
)

const (
	logModule     = "numdemo"
	defaultFormat = "%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{message}"
	defaultLevel  = logging.WARNING
)

var logger = logging.MustGetLogger(logModule)

// logInit sends all module loggers to w at the given level and returns the
// command logger. An empty level selects defaultLevel.
func logInit(w io.Writer, level string) (*logging.Logger, error) {
	lvl := defaultLevel
	if level != "" {
		var err error
		if lvl, err = logging.LogLevel(strings.ToUpper(level)); err != nil {
			return nil, fmt.Errorf("numdemo: invalid log level %q", level)
		}
	}
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultFormat))
	logging.SetBackend(formatted).SetLevel(lvl, "")
	return logger, nil
}
