// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package converter

import "fmt"

// ValidationError reports a malformed conversion parameter. It is always
// returned before any file I/O has happened, so the caller can correct the
// input and retry.
type ValidationError struct {
	Value interface{}
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

// ImageError reports a missing, unreadable or corrupt source image.
type ImageError struct {
	Err  error
	Path string
}

func (e *ImageError) Error() string { return fmt.Sprintf("image %s: %v", e.Path, e.Err) }
func (e *ImageError) Unwrap() error { return e.Err }

// DocumentError reports a failure while creating the output directory,
// drawing onto the document, or persisting it.
type DocumentError struct {
	Err  error
	Op   string
	Path string
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("document %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("document %s %s: %v", e.Op, e.Path, e.Err)
}
func (e *DocumentError) Unwrap() error { return e.Err }
