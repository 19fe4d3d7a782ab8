package main

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Mode describes one conversion direction: which inputs it accepts, the
// output extension it produces, and the encoder that writes the result.
// A single Mode is selected at startup and shared read-only by all workers.
type Mode struct {
	Name      string
	Label     string
	OutExt    string
	inputExts map[string]bool
	encode    func(img image.Image, dstPath string, quality float64) error
}

var modeToHeic = &Mode{
	Name:   "heic",
	Label:  "Image -> HEIC",
	OutExt: ".heic",
	inputExts: map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".bmp":  true,
		".tiff": true,
		".gif":  true,
	},
	encode: encodeHeic,
}

var modeToJpeg = &Mode{
	Name:   "jpeg",
	Label:  "HEIC -> JPEG",
	OutExt: ".jpg",
	inputExts: map[string]bool{
		".heic": true,
	},
	encode: encodeJpeg,
}

var modeToAvif = &Mode{
	Name:   "avif",
	Label:  "Image -> AVIF",
	OutExt: ".avif",
	inputExts: map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".bmp":  true,
		".tiff": true,
		".gif":  true,
	},
	encode: encodeAvif,
}

func ModeFor(name string) (*Mode, error) {
	switch strings.ToLower(name) {
	case "heic", "heif":
		return modeToHeic, nil
	case "jpeg", "jpg":
		return modeToJpeg, nil
	case "avif":
		return modeToAvif, nil
	}
	return nil, fmt.Errorf("unknown target format %q (use 'heic', 'jpeg' or 'avif')", name)
}

// Supports reports whether the file's extension is accepted as input for
// this conversion direction.
func (m *Mode) Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return m.inputExts[ext]
}

// OutputName replaces the source file's extension with the mode's canonical
// output extension.
func (m *Mode) OutputName(srcPath string) string {
	base := filepath.Base(srcPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + m.OutExt
}
