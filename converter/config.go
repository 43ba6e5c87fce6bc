// Copyright 2026 The Mkpdf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package converter turns raster images into PDF documents, one page per
// image, with configurable page size, rotation, scaling and placement.
package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/google/renameio/v2"
)

var logger = logr.Discard()

// SetLogger replaces the package logger.
func SetLogger(lgr logr.Logger) { logger = lgr }

// Config is the flat per-user default record persisted as JSON.
type Config struct {
	DefaultPageSize string         `json:"default_page_size"`
	DefaultQuality  int            `json:"default_quality"`
	DefaultPosition string         `json:"default_position"`
	DefaultResize   bool           `json:"default_resize"`
	DefaultRotate   int            `json:"default_rotate"`
	DefaultMetadata MetadataConfig `json:"default_metadata"`
}

// MetadataConfig mirrors Metadata in the config file.
type MetadataConfig struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Keywords string `json:"keywords"`
	Creator  string `json:"creator"`
}

// Metadata converts the persisted record into document metadata.
func (mc MetadataConfig) Metadata() Metadata {
	return Metadata{
		Title:    mc.Title,
		Author:   mc.Author,
		Subject:  mc.Subject,
		Keywords: mc.Keywords,
		Creator:  mc.Creator,
	}
}

// DefaultConfig returns the built-in defaults, used when no config file
// exists yet.
func DefaultConfig() Config {
	return Config{
		DefaultPageSize: A4.String(),
		DefaultQuality:  95,
		DefaultPosition: Center.String(),
		DefaultResize:   true,
		DefaultRotate:   0,
		DefaultMetadata: MetadataConfig{
			Title:    "Untitled Document",
			Author:   "mkpdf",
			Subject:  "Image to PDF Conversion",
			Keywords: "PDF, Image, Conversion",
			Creator:  "mkpdf",
		},
	}
}

// DefaultMetadata returns the built-in document metadata.
func DefaultMetadata() Metadata { return DefaultConfig().DefaultMetadata.Metadata() }

// Options converts the persisted defaults into per-call Options. Unknown
// page size or position names surface as *ValidationError.
func (c Config) Options() (Options, error) {
	ps, err := ParsePageSize(c.DefaultPageSize)
	if err != nil {
		return Options{}, err
	}
	pos, err := ParsePosition(c.DefaultPosition)
	if err != nil {
		return Options{}, err
	}
	return Options{
		PageSize: ps,
		Rotate:   c.DefaultRotate,
		Resize:   c.DefaultResize,
		Position: pos,
		Quality:  c.DefaultQuality,
		Metadata: c.DefaultMetadata.Metadata(),
	}, nil
}

// ConfigPath returns the well-known per-user config file location,
// ~/.mkpdf/config.json.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mkpdf", "config.json"), nil
}

// LoadConfig reads the config file at fn. A missing file is created with the
// built-in defaults. Fields absent from the file keep their defaults.
func LoadConfig(fn string) (Config, error) {
	b, err := os.ReadFile(fn)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err = cfg.Save(fn); err != nil {
			return cfg, err
		}
		logger.V(1).Info("created config", "file", fn)
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err = json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", fn, err)
	}
	return cfg, nil
}

// Save writes the config atomically, creating its directory if needed.
func (c Config) Save(fn string) error {
	if dir := filepath.Dir(fn); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(fn, append(b, '\n'), 0o644)
}
