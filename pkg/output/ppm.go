package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

// PPMWriter writes the plain-text P3 image format
type PPMWriter struct {
	w        *bufio.Writer
	expected int
	written  int
}

// NewPPMWriter creates a writer that buffers output to w. Close flushes it but does not close w.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes "P3\n<width> <height>\n255\n"
func (p *PPMWriter) WriteHeader(width, height int) error {
	p.expected = width * height
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" line
func (p *PPMWriter) WritePixel(c core.RGB) error {
	if p.written >= p.expected {
		return fmt.Errorf("%w: image holds %d pixels", ErrTooManyPixels, p.expected)
	}
	p.written++
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", c.R, c.G, c.B)
	return err
}

// Close flushes buffered output
func (p *PPMWriter) Close() error {
	if err := p.w.Flush(); err != nil {
		return err
	}
	if p.written != p.expected {
		return fmt.Errorf("%w: wrote %d of %d pixels", ErrIncompleteImage, p.written, p.expected)
	}
	return nil
}
