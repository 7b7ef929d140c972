// Package pngexport writes a finished frame to a PNG file: lossless 8-bit
// RGB(A) at the frame's dimensions, optionally upscaled by an integer
// factor with nearest-neighbor sampling to keep the pixels crisp.
package pngexport

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/user/weatherstar/pkg/ports"
)

// Exporter encodes frames to a PNG file via the filesystem abstraction.
type Exporter struct {
	path  string
	fs    ports.FileSystem
	scale int
}

// New creates an exporter that writes to path. A scale below 1 is treated
// as 1 (no upscaling).
func New(path string, fs ports.FileSystem, scale int) *Exporter {
	if scale < 1 {
		scale = 1
	}
	return &Exporter{path: path, fs: fs, scale: scale}
}

// Export encodes the frame and writes the file in one step, so a failed
// encode never leaves a partial file behind. Encoding is deterministic:
// the same frame produces byte-identical output.
func (e *Exporter) Export(frame ports.Frame) error {
	img := toImage(frame)

	if e.scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*e.scale, b.Dy()*e.scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	if err := e.fs.WriteFile(e.path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", e.path, err)
	}
	return nil
}

// Encode returns the PNG bytes without touching the filesystem.
func (e *Exporter) Encode(frame ports.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, toImage(frame)); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// toImage copies the frame row-major top to bottom into an image.RGBA.
func toImage(frame ports.Frame) *image.RGBA {
	w, h := frame.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, frame.At(x, y))
		}
	}
	return img
}

var _ ports.Exporter = (*Exporter)(nil)
