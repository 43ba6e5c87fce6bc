// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package converter

import (
	"image"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp" // to be able to open WebP files
)

// LoadImage decodes the image file at path. JPEG, PNG, GIF, TIFF, BMP and
// WebP sources are recognized.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	return img, nil
}

// RotateImage rotates img counter-clockwise by angle degrees, growing the
// canvas so nothing is cropped. Only 90, 180 and 270 change anything; every
// other angle returns img unchanged.
func RotateImage(img image.Image, angle int) image.Image {
	switch angle {
	case 90:
		return imaging.Rotate90(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate270(img)
	}
	return img
}

// ResampleImage resizes img to width x height using Lanczos filtering.
// Aspect ratio is the caller's concern (see ScaleToFit).
func ResampleImage(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
