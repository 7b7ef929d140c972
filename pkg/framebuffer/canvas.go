// Package framebuffer implements the pixel canvas and the primitive
// rasterizer the scene composer draws with. All drawing operations clip
// silently to the canvas bounds; none of them can fail.
package framebuffer

import "image/color"

// Default canvas dimensions. All scene layout constants are tuned for this
// size; a different size renders, but the layout will not be re-derived.
const (
	Width  = 640
	Height = 400
)

// Canvas is a fixed-size RGB pixel grid. One Canvas is allocated per render
// cycle and fully overwritten by each composition pass; it is treated as
// read-only once composition completes.
type Canvas struct {
	w, h     int
	pix      []color.RGBA
	bgTop    color.RGBA
	bgBottom color.RGBA
}

// New creates a canvas of the given size with the default background
// gradient. Pixels start zeroed; callers normally Clear() first.
func New(w, h int) *Canvas {
	return &Canvas{
		w:        w,
		h:        h,
		pix:      make([]color.RGBA, w*h),
		bgTop:    GradientTop,
		bgBottom: GradientBottom,
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.w, c.h
}

// SetTheme replaces the background gradient endpoints used by Clear and
// BackgroundAt.
func (c *Canvas) SetTheme(top, bottom color.RGBA) {
	c.bgTop = top
	c.bgBottom = bottom
}

// Set writes one pixel. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = col
}

// At reads one pixel. Out-of-bounds coordinates return the zero color.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return color.RGBA{}
	}
	return c.pix[y*c.w+x]
}

// BackgroundAt returns the background gradient color at absolute row y.
// Clear paints every row with this color; RoundedRect reuses it to knock
// corner pixels back to the background.
func (c *Canvas) BackgroundAt(y int) color.RGBA {
	return Blend(c.bgTop, c.bgBottom, float64(y)/float64(c.h))
}

// Clear fills the whole canvas with the vertical background gradient.
func (c *Canvas) Clear() {
	for y := 0; y < c.h; y++ {
		col := c.BackgroundAt(y)
		row := c.pix[y*c.w : (y+1)*c.w]
		for x := range row {
			row[x] = col
		}
	}
}
