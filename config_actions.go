// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/mkpdf/mkpdf/converter"
)

func init() {
	var cf convertFlags
	fs := newFlagSet("config set")
	cf.register(fs)
	setCmd := &ffcli.Command{
		Name:       "set",
		ShortUsage: "mkpdf config set [flags]",
		ShortHelp:  "update the persisted defaults",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			fs.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "page-size":
					cfg.DefaultPageSize = cf.pageSize
				case "rotate":
					cfg.DefaultRotate = cf.rotate
				case "resize":
					cfg.DefaultResize = cf.resize
				case "position":
					cfg.DefaultPosition = cf.position
				case "quality":
					cfg.DefaultQuality = cf.quality
				case "title":
					cfg.DefaultMetadata.Title = cf.title
				case "author":
					cfg.DefaultMetadata.Author = cf.author
				case "subject":
					cfg.DefaultMetadata.Subject = cf.subject
				case "keywords":
					cfg.DefaultMetadata.Keywords = cf.keywords
				}
			})
			// Reject unknown page size or position names before persisting.
			if _, err := cfg.Options(); err != nil {
				return err
			}
			if err := cfg.Save(configFile); err != nil {
				return err
			}
			fmt.Println("config updated")
			return nil
		},
	}

	showCmd := &ffcli.Command{
		Name:       "show",
		ShortUsage: "mkpdf config show",
		ShortHelp:  "print the current defaults",
		Exec: func(ctx context.Context, args []string) error {
			fmt.Println("page size:", cfg.DefaultPageSize)
			fmt.Println("quality:", cfg.DefaultQuality)
			fmt.Println("position:", cfg.DefaultPosition)
			fmt.Println("resize:", cfg.DefaultResize)
			fmt.Println("rotate:", cfg.DefaultRotate)
			fmt.Println("metadata:")
			fmt.Println("  title:", cfg.DefaultMetadata.Title)
			fmt.Println("  author:", cfg.DefaultMetadata.Author)
			fmt.Println("  subject:", cfg.DefaultMetadata.Subject)
			fmt.Println("  keywords:", cfg.DefaultMetadata.Keywords)
			fmt.Println("  creator:", cfg.DefaultMetadata.Creator)
			return nil
		},
	}

	resetCmd := &ffcli.Command{
		Name:       "reset",
		ShortUsage: "mkpdf config reset",
		ShortHelp:  "restore the built-in defaults",
		Exec: func(ctx context.Context, args []string) error {
			if err := converter.DefaultConfig().Save(configFile); err != nil {
				return err
			}
			fmt.Println("config reset to defaults")
			return nil
		},
	}

	subcommands = append(subcommands, &ffcli.Command{
		Name:        "config",
		ShortUsage:  "mkpdf config <set|show|reset>",
		ShortHelp:   "manage the persisted defaults",
		FlagSet:     newFlagSet("config"),
		Subcommands: []*ffcli.Command{setCmd, showCmd, resetCmd},
		Exec:        func(ctx context.Context, args []string) error { return flag.ErrHelp },
	})
}
