package output

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", "ppm", FormatPPM, false},
		{"upper case png", "PNG", FormatPNG, false},
		{"extension with dot", ".bmp", FormatBMP, false},
		{"short tiff", "tif", FormatTIFF, false},
		{"tiff", "tiff", FormatTIFF, false},
		{"unknown", "gif", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("output/default/render.png"); err != nil || f != FormatPNG {
		t.Errorf("Expected png, got %q (%v)", f, err)
	}
	if _, err := FormatFromPath("render"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat for missing extension, got %v", err)
	}
}

func TestImageWriter_EncodesPixelsInRasterOrder(t *testing.T) {
	decoders := map[Format]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
	}

	pixels := []core.RGB{
		{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255},
		{R: 10, G: 20, B: 30}, {R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255},
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(format, &buf)
			if err != nil {
				t.Fatalf("NewWriter failed: %v", err)
			}
			if err := w.WriteHeader(3, 2); err != nil {
				t.Fatalf("WriteHeader failed: %v", err)
			}
			for _, p := range pixels {
				if err := w.WritePixel(p); err != nil {
					t.Fatalf("WritePixel failed: %v", err)
				}
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("Decoding %s failed: %v", format, err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
			}
			for idx, p := range pixels {
				r, g, b, _ := img.At(idx%3, idx/3).RGBA()
				got := core.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
				if got != p {
					t.Errorf("Pixel %d: expected %v, got %v", idx, p, got)
				}
			}
		})
	}
}

func TestImageWriter_Incomplete(t *testing.T) {
	w := NewImageWriter(FormatPNG, &bytes.Buffer{})
	if w.Image() != nil {
		t.Error("Expected no image before the header")
	}
	if err := w.Close(); !errors.Is(err, ErrIncompleteImage) {
		t.Errorf("Expected ErrIncompleteImage without header, got %v", err)
	}

	w.WriteHeader(2, 2)
	w.WritePixel(core.RGB{R: 1})
	if got := w.Image().RGBAAt(0, 0); got.R != 1 || got.A != 255 {
		t.Errorf("Expected first pixel stored, got %v", got)
	}
	if err := w.Close(); !errors.Is(err, ErrIncompleteImage) {
		t.Errorf("Expected ErrIncompleteImage, got %v", err)
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	if _, err := NewWriter(Format("gif"), &bytes.Buffer{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
