// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestResolveGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.png", "a.png", "b.png", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	paths, err := resolveGlob(filepath.Join(dir, "*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, wanted 3", len(paths))
	}
	if !sort.StringsAreSorted(paths) {
		t.Errorf("paths not sorted: %v", paths)
	}
}

func TestResolveGlobNoMatches(t *testing.T) {
	_, err := resolveGlob(filepath.Join(t.TempDir(), "*.png"))
	if err == nil || !strings.Contains(err.Error(), "no files matched") {
		t.Errorf("got %v, wanted a no-files-matched error", err)
	}
}
