package main

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gen2brain/avif"
	"github.com/strukturag/libheif/go/heif"

	"heicconv/logger"
)

// probeCapability verifies at startup that the codec subsystem the selected
// mode depends on actually works, by encoding a 1x1 placeholder image in
// memory. Both HEIC modes need libheif; the AVIF mode needs the wazero-backed
// AV1 encoder.
func probeCapability(mode *Mode) error {
	placeholder := image.NewRGBA(image.Rect(0, 0, 1, 1))

	switch mode {
	case modeToAvif:
		var buf bytes.Buffer
		if err := avif.Encode(&buf, placeholder, avif.Options{Quality: defaultAvifQuality, Speed: avifSpeed}); err != nil {
			return fmt.Errorf("AVIF encoder probe failed: %w", err)
		}
	default:
		_, err := heif.EncodeFromImage(placeholder, heif.CompressionHEVC,
			defaultHeicQuality, heif.LosslessModeDisabled, heif.LoggingLevelNone)
		if err != nil {
			return fmt.Errorf("HEIF/HEVC encoder probe failed: %w", err)
		}
	}
	return nil
}

// printProbeGuidance explains how to make the codec subsystem available when
// the startup probe fails.
func printProbeGuidance(console *logger.Console, mode *Mode, err error) {
	if mode == modeToAvif {
		console.Error("AVIF support is unavailable: %v", err)
		console.Log("The embedded AV1 encoder could not be initialized on this system.")
		return
	}
	console.Error("HEIC/HEVC support is unavailable or not fully functional: %v", err)
	console.Log("This program requires libheif with an HEVC encoder to read and write HEIC files.")
	console.Log("Install it with your package manager and rebuild, for example:")
	console.Log("  Debian/Ubuntu: apt install libheif-dev")
	console.Log("  macOS:         brew install libheif")
	console.Log("After installation, please run this program again.")
}
