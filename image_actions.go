// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/schollz/progressbar/v3"

	"github.com/mkpdf/mkpdf/converter"
)

// convertFlags carries the per-invocation conversion parameters shared by the
// single, multiple and config set subcommands.
type convertFlags struct {
	pageSize string
	position string
	title    string
	author   string
	subject  string
	keywords string
	rotate   int
	quality  int
	resize   bool
}

func (cf *convertFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&cf.pageSize, "page-size", "A4", "page size (A4, LETTER, A4_LANDSCAPE, LETTER_LANDSCAPE)")
	fs.IntVar(&cf.rotate, "rotate", 0, "rotation angle (0, 90, 180, 270)")
	fs.BoolVar(&cf.resize, "resize", true, "scale the image to fit the page")
	fs.StringVar(&cf.position, "position", "center", "image position (center, top_left, top_right, bottom_left, bottom_right)")
	fs.IntVar(&cf.quality, "quality", 95, "embedded image quality (0-100)")
	fs.StringVar(&cf.title, "title", "", "document title")
	fs.StringVar(&cf.author, "author", "", "document author")
	fs.StringVar(&cf.subject, "subject", "", "document subject")
	fs.StringVar(&cf.keywords, "keywords", "", "document keywords (comma separated)")
}

// options merges the persisted defaults with the flags that were set
// explicitly on the command line; explicit flags win.
func (cf *convertFlags) options(fs *flag.FlagSet) (converter.Options, error) {
	opts, err := cfg.Options()
	if err != nil {
		return opts, err
	}
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		if parseErr != nil {
			return
		}
		switch f.Name {
		case "page-size":
			opts.PageSize, parseErr = converter.ParsePageSize(cf.pageSize)
		case "rotate":
			opts.Rotate = cf.rotate
		case "resize":
			opts.Resize = cf.resize
		case "position":
			opts.Position, parseErr = converter.ParsePosition(cf.position)
		case "quality":
			opts.Quality = cf.quality
		case "title":
			opts.Metadata.Title = cf.title
		case "author":
			opts.Metadata.Author = cf.author
		case "subject":
			opts.Metadata.Subject = cf.subject
		case "keywords":
			opts.Metadata.Keywords = cf.keywords
		}
	})
	return opts, parseErr
}

func init() {
	var sf convertFlags
	sfs := newFlagSet("single")
	sf.register(sfs)
	subcommands = append(subcommands, &ffcli.Command{
		Name:       "single",
		ShortUsage: "mkpdf single [flags] <image> <output>",
		ShortHelp:  "convert one image to a one-page PDF",
		FlagSet:    sfs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return flag.ErrHelp
			}
			opts, err := sf.options(sfs)
			if err != nil {
				return err
			}
			if err := converter.ConvertSingle(ctx, args[0], args[1], opts); err != nil {
				return err
			}
			fmt.Println("created", args[1])
			return nil
		},
	})

	var mf convertFlags
	mfs := newFlagSet("multiple")
	mf.register(mfs)
	subcommands = append(subcommands, &ffcli.Command{
		Name:       "multiple",
		ShortUsage: "mkpdf multiple [flags] <glob> <output>",
		ShortHelp:  "convert every image matching the glob into one multi-page PDF",
		FlagSet:    mfs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return flag.ErrHelp
			}
			paths, err := resolveGlob(args[0])
			if err != nil {
				return err
			}
			opts, err := mf.options(mfs)
			if err != nil {
				return err
			}
			bar := progressbar.Default(int64(len(paths)), "converting")
			opts.OnImage = func(n, total int, path string) { _ = bar.Add(1) }
			if err := converter.ConvertBatch(ctx, paths, args[1], opts); err != nil {
				return err
			}
			_ = bar.Finish()
			fmt.Println("created", args[1])
			fmt.Println("images converted:", len(paths))
			return nil
		},
	})
}

// resolveGlob expands pattern into a sorted file list. Zero matches is a
// user-facing error; the converter is never invoked for it.
func resolveGlob(pattern string) ([]string, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files matched %q", pattern)
	}
	sort.Strings(paths)
	return paths, nil
}
