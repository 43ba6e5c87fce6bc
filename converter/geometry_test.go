// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package converter

import (
	"errors"
	"math"
	"testing"
)

func TestScaleToFit(t *testing.T) {
	for _, tc := range []struct {
		w, h         int
		maxW, maxH   float64
		wantW, wantH int
	}{
		{100, 100, a4Width, a4Height, 595, 595},
		{200, 100, 100, 100, 100, 50},
		{100, 200, 100, 100, 50, 100},
		{50, 100, a4Width, a4Height, 420, 841},
		{595, 842, a4Width, a4Height, 594, 841},
		{1, 1, 100, 100, 100, 100},
	} {
		gotW, gotH := ScaleToFit(tc.w, tc.h, tc.maxW, tc.maxH)
		if gotW != tc.wantW || gotH != tc.wantH {
			t.Errorf("ScaleToFit(%d, %d, %g, %g) = (%d, %d), wanted (%d, %d)",
				tc.w, tc.h, tc.maxW, tc.maxH, gotW, gotH, tc.wantW, tc.wantH)
		}
	}
}

func TestScaleToFitProperties(t *testing.T) {
	sizes := []int{1, 7, 50, 100, 333, 595, 842, 1024, 4096}
	for _, w := range sizes {
		for _, h := range sizes {
			gotW, gotH := ScaleToFit(w, h, a4Width, a4Height)
			if float64(gotW) > a4Width || float64(gotH) > a4Height {
				t.Errorf("ScaleToFit(%d, %d) = (%d, %d) exceeds the page", w, h, gotW, gotH)
			}
			if gotW <= 0 || gotH <= 0 {
				continue // degenerate truncation of a tiny dimension
			}
			got := float64(gotW) / float64(gotH)
			want := float64(w) / float64(h)
			// One scale factor for both dimensions, so the ratio survives up
			// to integer truncation.
			if tol := want / float64(min(gotW, gotH)); math.Abs(got-want) > tol {
				t.Errorf("ScaleToFit(%d, %d) = (%d, %d): ratio %g drifted from %g",
					w, h, gotW, gotH, got, want)
			}
		}
	}
}

func TestPlace(t *testing.T) {
	const pageW, pageH = a4Width, a4Height
	const imgW, imgH = 100.0, 50.0
	for _, tc := range []struct {
		pos  ImagePosition
		x, y float64
	}{
		{Center, (pageW - imgW) / 2, (pageH - imgH) / 2},
		{TopLeft, 0, pageH - imgH},
		{TopRight, pageW - imgW, pageH - imgH},
		{BottomLeft, 0, 0},
		{BottomRight, pageW - imgW, 0},
	} {
		x, y := Place(imgW, imgH, pageW, pageH, tc.pos)
		if x != tc.x || y != tc.y {
			t.Errorf("Place(%v) = (%g, %g), wanted (%g, %g)", tc.pos, x, y, tc.x, tc.y)
		}
	}
}

func TestPlaceTouchesEdges(t *testing.T) {
	const pageW, pageH = letterWidth, letterHeight
	const imgW, imgH = 123.0, 456.0
	check := func(pos ImagePosition, cond bool, desc string) {
		if !cond {
			t.Errorf("%v: image does not touch %s", pos, desc)
		}
	}
	for _, pos := range []ImagePosition{TopLeft, TopRight, BottomLeft, BottomRight} {
		x, y := Place(imgW, imgH, pageW, pageH, pos)
		switch pos {
		case TopLeft:
			check(pos, x == 0 && y+imgH == pageH, "left and top edges")
		case TopRight:
			check(pos, x+imgW == pageW && y+imgH == pageH, "right and top edges")
		case BottomLeft:
			check(pos, x == 0 && y == 0, "left and bottom edges")
		case BottomRight:
			check(pos, x+imgW == pageW && y == 0, "right and bottom edges")
		}
	}
}

func TestPlaceOverflow(t *testing.T) {
	// An image larger than the page is not clamped; the anchor goes negative.
	x, y := Place(700, 900, a4Width, a4Height, Center)
	if x >= 0 || y >= 0 {
		t.Errorf("Place(oversized, Center) = (%g, %g), wanted negative anchors", x, y)
	}
	x, y = Place(700, 900, a4Width, a4Height, BottomLeft)
	if x != 0 || y != 0 {
		t.Errorf("Place(oversized, BottomLeft) = (%g, %g), wanted (0, 0)", x, y)
	}
}

func TestPlaceOutsideEnum(t *testing.T) {
	wantX, wantY := Place(100, 50, a4Width, a4Height, Center)
	x, y := Place(100, 50, a4Width, a4Height, ImagePosition(99))
	if x != wantX || y != wantY {
		t.Errorf("Place(out-of-enum) = (%g, %g), wanted the centered (%g, %g)", x, y, wantX, wantY)
	}
}

func TestPageSizeDimensions(t *testing.T) {
	for _, tc := range []struct {
		size PageSize
		w, h float64
	}{
		{A4, a4Width, a4Height},
		{Letter, letterWidth, letterHeight},
		{A4Landscape, a4Height, a4Width},
		{LetterLandscape, letterHeight, letterWidth},
	} {
		w, h := tc.size.Dimensions()
		if w != tc.w || h != tc.h {
			t.Errorf("%v.Dimensions() = (%g, %g), wanted (%g, %g)", tc.size, w, h, tc.w, tc.h)
		}
	}
}

func TestParsePageSize(t *testing.T) {
	for name, want := range map[string]PageSize{
		"A4":               A4,
		"a4":               A4,
		"LETTER":           Letter,
		"A4_LANDSCAPE":     A4Landscape,
		"letter_landscape": LetterLandscape,
	} {
		got, err := ParsePageSize(name)
		if err != nil || got != want {
			t.Errorf("ParsePageSize(%q) = (%v, %v), wanted %v", name, got, err, want)
		}
	}
	_, err := ParsePageSize("A5")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("ParsePageSize(A5): got %v, wanted a ValidationError", err)
	}
}

func TestParsePosition(t *testing.T) {
	for name, want := range map[string]ImagePosition{
		"center":       Center,
		"CENTER":       Center,
		"top_left":     TopLeft,
		"top_right":    TopRight,
		"bottom_left":  BottomLeft,
		"bottom_right": BottomRight,
	} {
		got, err := ParsePosition(name)
		if err != nil || got != want {
			t.Errorf("ParsePosition(%q) = (%v, %v), wanted %v", name, got, err, want)
		}
	}
	_, err := ParsePosition("middle")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("ParsePosition(middle): got %v, wanted a ValidationError", err)
	}
}
