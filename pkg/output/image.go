package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

var (
	ErrUnknownFormat   = errors.New("unknown image format")
	ErrTooManyPixels   = errors.New("more pixels than the header declared")
	ErrIncompleteImage = errors.New("image is incomplete")
)

// Format names an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format
var Formats = []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat converts a format name such as "png" or "TIF" into a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// NewWriter creates a pixel writer that encodes format to w
func NewWriter(format Format, w io.Writer) (core.PixelWriter, error) {
	switch format {
	case FormatPPM:
		return NewPPMWriter(w), nil
	case FormatPNG, FormatBMP, FormatTIFF:
		return NewImageWriter(format, w), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ImageWriter collects pixels into an image and encodes it on Close
type ImageWriter struct {
	format Format
	w      io.Writer
	img    *image.RGBA
	next   int
}

// NewImageWriter creates an image writer for a binary raster format
func NewImageWriter(format Format, w io.Writer) *ImageWriter {
	return &ImageWriter{format: format, w: w}
}

// WriteHeader allocates the image
func (iw *ImageWriter) WriteHeader(width, height int) error {
	iw.img = image.NewRGBA(image.Rect(0, 0, width, height))
	iw.next = 0
	return nil
}

// WritePixel sets the next pixel in raster order
func (iw *ImageWriter) WritePixel(c core.RGB) error {
	if iw.img == nil {
		return errors.New("pixel written before header")
	}
	bounds := iw.img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if iw.next >= total {
		return fmt.Errorf("%w: image holds %d pixels", ErrTooManyPixels, total)
	}
	x, y := iw.next%bounds.Dx(), iw.next/bounds.Dx()
	iw.img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	iw.next++
	return nil
}

// Image returns the image collected so far
func (iw *ImageWriter) Image() *image.RGBA {
	return iw.img
}

// Close encodes the collected image
func (iw *ImageWriter) Close() error {
	if iw.img == nil {
		return fmt.Errorf("%w: no header written", ErrIncompleteImage)
	}
	bounds := iw.img.Bounds()
	if total := bounds.Dx() * bounds.Dy(); iw.next != total {
		return fmt.Errorf("%w: wrote %d of %d pixels", ErrIncompleteImage, iw.next, total)
	}

	switch iw.format {
	case FormatPNG:
		return png.Encode(iw.w, iw.img)
	case FormatBMP:
		return bmp.Encode(iw.w, iw.img)
	case FormatTIFF:
		return tiff.Encode(iw.w, iw.img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, iw.format)
}
