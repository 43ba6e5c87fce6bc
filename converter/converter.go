// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package converter

import (
	"context"
	"image"
	"os"
	"path/filepath"
)

// Metadata is the document information attached to every produced PDF.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// NewMetadata builds a Metadata, enforcing that title, author and creator are
// not empty. Any non-empty text is accepted, including non-ASCII.
func NewMetadata(title, author, subject, keywords, creator string) (Metadata, error) {
	m := Metadata{Title: title, Author: author, Subject: subject, Keywords: keywords, Creator: creator}
	return m, m.validate()
}

func (m Metadata) validate() error {
	if m.Title == "" {
		return &ValidationError{Field: "metadata title", Value: m.Title}
	}
	if m.Author == "" {
		return &ValidationError{Field: "metadata author", Value: m.Author}
	}
	if m.Creator == "" {
		return &ValidationError{Field: "metadata creator", Value: m.Creator}
	}
	return nil
}

// Options is the complete per-call conversion configuration. There is no
// converter instance with mutable state: concurrent conversions to distinct
// output paths need no coordination.
type Options struct {
	// OnImage, when set, is called after each source image has been drawn
	// onto its page. Batch progress reporting hangs off this.
	OnImage func(n, total int, path string)

	Metadata Metadata
	PageSize PageSize
	Position ImagePosition
	Rotate   int
	Quality  int
	Resize   bool
}

// DefaultOptions mirrors the built-in config defaults: A4, no rotation,
// scale-to-fit, centered, quality 95.
func DefaultOptions() Options {
	return Options{
		PageSize: A4,
		Rotate:   0,
		Resize:   true,
		Position: Center,
		Quality:  95,
		Metadata: DefaultMetadata(),
	}
}

// Validate checks every parameter. It runs before any file I/O and returns
// the first violation as a *ValidationError naming the offending field.
func (o Options) Validate() error {
	if !o.PageSize.valid() {
		return &ValidationError{Field: "page size", Value: int(o.PageSize)}
	}
	switch o.Rotate {
	case 0, 90, 180, 270:
	default:
		return &ValidationError{Field: "rotate", Value: o.Rotate}
	}
	if !o.Position.valid() {
		return &ValidationError{Field: "position", Value: int(o.Position)}
	}
	if o.Quality < 0 || o.Quality > 100 {
		return &ValidationError{Field: "quality", Value: o.Quality}
	}
	return o.Metadata.validate()
}

// ConvertSingle converts the image at imagePath into a one-page PDF at
// outputPath. The failure kinds are *ValidationError (bad parameters, before
// any I/O), *ImageError (decode) and *DocumentError (write phase).
func ConvertSingle(ctx context.Context, imagePath, outputPath string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ensureOutputDir(outputPath); err != nil {
		return err
	}
	img, err := LoadImage(imagePath)
	if err != nil {
		return err
	}
	pageW, pageH := opts.PageSize.Dimensions()
	doc := NewDocument(pageW, pageH, opts.Metadata)
	if err := drawPage(doc, img, opts); err != nil {
		return err
	}
	if err := doc.WriteFile(outputPath); err != nil {
		return err
	}
	logger.V(1).Info("converted", "image", imagePath, "output", outputPath)
	return nil
}

// ConvertBatch converts imagePaths, in order, into one multi-page PDF at
// outputPath: the document is opened once, the metadata attached once, and
// each image drawn onto its own page. The first failing image aborts the
// whole batch; the output file only appears after every page has been drawn
// and the document persisted.
func ConvertBatch(ctx context.Context, imagePaths []string, outputPath string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := ensureOutputDir(outputPath); err != nil {
		return err
	}
	pageW, pageH := opts.PageSize.Dimensions()
	doc := NewDocument(pageW, pageH, opts.Metadata)
	for i, imagePath := range imagePaths {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := LoadImage(imagePath)
		if err != nil {
			return err
		}
		if err := drawPage(doc, img, opts); err != nil {
			return err
		}
		logger.V(1).Info("page drawn", "image", imagePath, "page", i+1)
		if opts.OnImage != nil {
			opts.OnImage(i+1, len(imagePaths), imagePath)
		}
	}
	if err := doc.WriteFile(outputPath); err != nil {
		return err
	}
	logger.V(1).Info("converted", "images", len(imagePaths), "output", outputPath)
	return nil
}

// drawPage applies rotation, then scaling, then placement, and draws the
// result onto a fresh page. Resampling always happens after rotation.
func drawPage(doc *Document, img image.Image, opts Options) error {
	if opts.Rotate != 0 {
		img = RotateImage(img, opts.Rotate)
	}
	pageW, pageH := opts.PageSize.Dimensions()
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if opts.Resize {
		w, h = ScaleToFit(w, h, pageW, pageH)
		img = ResampleImage(img, w, h)
	}
	x, y := Place(float64(w), float64(h), pageW, pageH, opts.Position)
	return doc.AddImagePage(img, x, y, float64(w), float64(h), opts.Quality)
}

func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DocumentError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}
