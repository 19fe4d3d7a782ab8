package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"

	"github.com/gen2brain/avif"
	"github.com/strukturag/libheif/go/heif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// errCorruptInput tags decode-stage failures so workers can distinguish a bad
// source file from an I/O problem on the output side.
var errCorruptInput = errors.New("corrupt or unreadable input")

const (
	defaultHeicQuality = 90
	defaultAvifQuality = 80
	avifSpeed          = 6
)

// Codec turns one source image into one encoded output file. Convert is
// synchronous and may take arbitrarily long; it writes only to dstPath.
type Codec interface {
	Convert(srcPath, dstPath string, quality float64) error
}

type imageCodec struct {
	mode *Mode
}

func NewCodec(mode *Mode) Codec {
	return &imageCodec{mode: mode}
}

func (c *imageCodec) Convert(srcPath, dstPath string, quality float64) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", srcPath, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errCorruptInput, srcPath, err)
	}
	return c.mode.encode(img, dstPath, quality)
}

// qualityScale maps the internal [0,1] fraction onto an encoder's 0-100
// scale; a negative fraction selects the encoder default.
func qualityScale(fraction float64, fallback int) int {
	if fraction < 0 {
		return fallback
	}
	return int(fraction*100 + 0.5)
}

func encodeHeic(img image.Image, dstPath string, quality float64) error {
	ctx, err := heif.EncodeFromImage(img, heif.CompressionHEVC,
		qualityScale(quality, defaultHeicQuality), heif.LosslessModeDisabled, heif.LoggingLevelNone)
	if err != nil {
		return fmt.Errorf("encoding to HEIC: %w", err)
	}
	if err := ctx.WriteToFile(dstPath); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return nil
}

func encodeJpeg(img image.Image, dstPath string, quality float64) error {
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dstPath, err)
	}
	opts := &jpeg.Options{Quality: qualityScale(quality, jpeg.DefaultQuality)}
	if err := jpeg.Encode(out, img, opts); err != nil {
		out.Close()
		return fmt.Errorf("encoding to JPEG: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return nil
}

func encodeAvif(img image.Image, dstPath string, quality float64) error {
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dstPath, err)
	}
	q := qualityScale(quality, defaultAvifQuality)
	opts := avif.Options{
		Quality:           q,
		QualityAlpha:      q,
		Speed:             avifSpeed,
		ChromaSubsampling: image.YCbCrSubsampleRatio420,
	}
	if err := avif.Encode(out, img, opts); err != nil {
		out.Close()
		return fmt.Errorf("encoding to AVIF: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return nil
}
