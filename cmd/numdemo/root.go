// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/db47h/numeric/internal/demo"
)

const envPrefix = "NUMDEMO"

// Config holds the command settings, from flags or NUMDEMO_* environment
// variables.
type Config struct {
	Wait bool `mapstructure:"wait"`
	Log  struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "numdemo",
		Short:         "fraction and complex number arithmetic demo",
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg Config
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("numdemo: invalid configuration: %w", err)
			}
			log, err := logInit(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			log.Infof("starting with %+v", cfg)

			demo.Run(cmd.OutOrStdout(), log)

			if cfg.Wait {
				return waitKey(cmd.InOrStdin())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Bool("wait", false, "wait for a keypress before exiting")
	flags.String("log-level", defaultLevel.String(), "log level (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG)")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// BindPFlag only fails on a nil flag.
	_ = v.BindPFlag("wait", flags.Lookup("wait"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	return cmd
}

// waitKey blocks until a byte can be read from r. EOF is not an error.
func waitKey(r io.Reader) error {
	var b [1]byte
	if _, err := r.Read(b[:]); err != nil && err != io.EOF {
		return fmt.Errorf("numdemo: waiting for keypress: %w", err)
	}
	return nil
}
