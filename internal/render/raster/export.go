package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/render"
)

// FormatForPath picks the raster format from a file extension, PNG unless
// the path ends in .webp.
func FormatForPath(path string) string {
	if format := FormatFromExt(path); format != "" {
		return format
	}
	return config.FormatPNG
}

// FormatFromExt returns the raster format a .png or .webp extension names,
// or "" for any other extension.
func FormatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return config.FormatPNG
	case ".webp":
		return config.FormatWebP
	}
	return ""
}

// Save draws the scene and writes it to path. An empty format is taken from
// the extension; a format that contradicts a .png or .webp extension is
// rejected.
func Save(path string, s *render.Scene, format string) error {
	ext := FormatFromExt(path)
	switch {
	case format == "":
		format = FormatForPath(path)
	case format != config.FormatPNG && format != config.FormatWebP:
		return fmt.Errorf("raster: unsupported format %q", format)
	case ext != "" && ext != format:
		return fmt.Errorf("raster: format %q conflicts with %s", format, filepath.Base(path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("raster: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer f.Close()

	if err := Encode(f, Draw(s), format); err != nil {
		return err
	}
	return f.Close()
}
