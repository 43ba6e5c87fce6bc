// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/go-logr/zerologr"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/rs/zerolog"

	"github.com/mkpdf/mkpdf/converter"
)

var zl = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
var logger = zerologr.New(&zl)

func main() {
	if err := Main(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error(err, "Main")
		os.Exit(1)
	}
}

var (
	configFile string
	cfg        converter.Config

	subcommands []*ffcli.Command
)

func newFlagSet(name string) *flag.FlagSet { return flag.NewFlagSet(name, flag.ContinueOnError) }

func Main() error {
	var verbose bool

	fs := newFlagSet("mkpdf")
	fs.BoolVar(&verbose, "v", false, "verbose logging")
	fs.StringVar(&configFile, "config", "", "config file (JSON)")
	appCmd := &ffcli.Command{
		Name:        "mkpdf",
		ShortUsage:  "mkpdf [flags] <subcommand>",
		ShortHelp:   "mkpdf converts raster images to PDF documents",
		FlagSet:     fs,
		Subcommands: subcommands,
		Exec:        func(ctx context.Context, args []string) error { return flag.ErrHelp },
	}

	if err := appCmd.Parse(os.Args[1:]); err != nil {
		return err
	}
	if verbose {
		zl = zl.Level(zerolog.DebugLevel)
	}
	converter.SetLogger(logger.WithName("converter"))

	if configFile == "" {
		var err error
		if configFile, err = converter.ConfigPath(); err != nil {
			return err
		}
	}
	logger.V(1).Info("loading config", "file", configFile)
	var err error
	if cfg, err = converter.LoadConfig(configFile); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return appCmd.Run(ctx)
}
