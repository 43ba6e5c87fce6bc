// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package converter

import (
	"math"
	"strings"
)

// Page dimensions in PostScript points.
const (
	a4Width      = 595.28
	a4Height     = 841.89
	letterWidth  = 612.0
	letterHeight = 792.0
)

// PageSize selects the fixed dimensions of every page in the output document.
type PageSize int

const (
	A4 PageSize = iota
	Letter
	A4Landscape
	LetterLandscape
)

// ParsePageSize parses the config/CLI spellings (A4, LETTER, A4_LANDSCAPE,
// LETTER_LANDSCAPE), ignoring case.
func ParsePageSize(s string) (PageSize, error) {
	switch strings.ToUpper(s) {
	case "A4":
		return A4, nil
	case "LETTER":
		return Letter, nil
	case "A4_LANDSCAPE":
		return A4Landscape, nil
	case "LETTER_LANDSCAPE":
		return LetterLandscape, nil
	}
	return A4, &ValidationError{Field: "page size", Value: s}
}

func (p PageSize) String() string {
	switch p {
	case Letter:
		return "LETTER"
	case A4Landscape:
		return "A4_LANDSCAPE"
	case LetterLandscape:
		return "LETTER_LANDSCAPE"
	}
	return "A4"
}

// Dimensions returns the page width and height in points.
func (p PageSize) Dimensions() (width, height float64) {
	switch p {
	case Letter:
		return letterWidth, letterHeight
	case A4Landscape:
		return a4Height, a4Width
	case LetterLandscape:
		return letterHeight, letterWidth
	}
	return a4Width, a4Height
}

func (p PageSize) valid() bool { return p >= A4 && p <= LetterLandscape }

// ImagePosition names the rule anchoring an image within the page bounds.
type ImagePosition int

const (
	Center ImagePosition = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

// ParsePosition parses the config/CLI spellings (center, top_left, top_right,
// bottom_left, bottom_right), ignoring case.
func ParsePosition(s string) (ImagePosition, error) {
	switch strings.ToLower(s) {
	case "center":
		return Center, nil
	case "top_left":
		return TopLeft, nil
	case "top_right":
		return TopRight, nil
	case "bottom_left":
		return BottomLeft, nil
	case "bottom_right":
		return BottomRight, nil
	}
	return Center, &ValidationError{Field: "position", Value: s}
}

func (p ImagePosition) String() string {
	switch p {
	case TopLeft:
		return "top_left"
	case TopRight:
		return "top_right"
	case BottomLeft:
		return "bottom_left"
	case BottomRight:
		return "bottom_right"
	}
	return "center"
}

func (p ImagePosition) valid() bool { return p >= Center && p <= BottomRight }

// ScaleToFit computes the largest dimensions that keep the width/height ratio
// of the source and fit within maxWidth x maxHeight. Both dimensions are
// multiplied by the same factor, min(maxWidth/width, maxHeight/height), and
// truncated. The caller guarantees strictly positive inputs.
func ScaleToFit(width, height int, maxWidth, maxHeight float64) (int, int) {
	ratio := math.Min(maxWidth/float64(width), maxHeight/float64(height))
	return int(float64(width) * ratio), int(float64(height) * ratio)
}

// Place computes the bottom-left anchor of an imgWidth x imgHeight image on a
// pageWidth x pageHeight page, in PDF page coordinates (origin bottom-left,
// y growing upward). The result is not clamped: an image larger than the page
// yields negative coordinates and overflows the page edges.
//
// Values outside the ImagePosition enum anchor at the center; every parse and
// validation path rejects them before they can get here.
func Place(imgWidth, imgHeight, pageWidth, pageHeight float64, pos ImagePosition) (x, y float64) {
	switch pos {
	case TopLeft:
		return 0, pageHeight - imgHeight
	case TopRight:
		return pageWidth - imgWidth, pageHeight - imgHeight
	case BottomLeft:
		return 0, 0
	case BottomRight:
		return pageWidth - imgWidth, 0
	}
	return (pageWidth - imgWidth) / 2, (pageHeight - imgHeight) / 2
}
