// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package converter

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"
	"github.com/phpdave11/gofpdf"
)

// Document is a PDF with a fixed page size under construction. The metadata
// is attached at creation time, before anything is drawn, and is immutable
// afterwards.
type Document struct {
	pdf   *gofpdf.Fpdf
	pageW float64
	pageH float64
	pages int
}

// NewDocument opens an empty document with pageW x pageH point pages and
// attaches meta to it.
func NewDocument(pageW, pageH float64, meta Metadata) *Document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetKeywords(meta.Keywords, true)
	pdf.SetCreator(meta.Creator, true)
	return &Document{pdf: pdf, pageW: pageW, pageH: pageH}
}

// AddImagePage starts a fresh page and draws img on it. x and y are the
// bottom-left anchor in page coordinates (y growing upward), w and h the draw
// size in points. The pixels are embedded as JPEG at the given quality.
func (d *Document) AddImagePage(img image.Image, x, y, w, h float64, quality int) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return &DocumentError{Op: "encode", Err: err}
	}
	d.pdf.AddPage()
	d.pages++
	name := fmt.Sprintf("page%d", d.pages)
	// AllowNegativePosition: with scaling disabled an oversized image anchors
	// at negative coordinates and overflows the page edges.
	opt := gofpdf.ImageOptions{ImageType: "JPEG", ReadDpi: false, AllowNegativePosition: true}
	d.pdf.RegisterImageOptionsReader(name, opt, &buf)
	// gofpdf's origin is the top left corner, y growing downward.
	d.pdf.ImageOptions(name, x, d.pageH-y-h, w, h, false, opt, 0, "")
	if d.pdf.Err() {
		return &DocumentError{Op: "draw", Err: d.pdf.Error()}
	}
	return nil
}

// PageCount returns the number of pages drawn so far.
func (d *Document) PageCount() int { return d.pages }

// WriteFile persists the document at path. The bytes go to a pending temp
// file that replaces path only once everything has been written, so a failed
// conversion never leaves a partial document behind.
func (d *Document) WriteFile(path string) error {
	fh, err := renameio.NewPendingFile(path, renameio.WithTempDir(filepath.Dir(path)))
	if err != nil {
		return &DocumentError{Op: "create", Path: path, Err: err}
	}
	defer fh.Cleanup()
	if err := d.pdf.Output(fh); err != nil {
		return &DocumentError{Op: "write", Path: path, Err: err}
	}
	if err := fh.CloseAtomicallyReplace(); err != nil {
		return &DocumentError{Op: "save", Path: path, Err: err}
	}
	return nil
}
