package font

import (
	"image/color"

	"github.com/user/weatherstar/pkg/framebuffer"
)

// Advance is the horizontal advance per character at scale 1: five glyph
// columns plus one column of spacing.
const Advance = 6

// DrawChar blits one glyph with its top-left corner at (x, y). Each set bit
// becomes a scale x scale block; the canvas clips anything off screen.
func DrawChar(c *framebuffer.Canvas, x, y int, ch byte, col color.RGBA, scale int) {
	g := Glyph(ch)
	for row := 0; row < 7; row++ {
		for colBit := 0; colBit < 5; colBit++ {
			if g[row]&(0x10>>colBit) == 0 {
				continue
			}
			c.FillRect(x+colBit*scale, y+row*scale, scale, scale, col)
		}
	}
}

// DrawString draws s left to right with a fixed advance of Advance*scale
// pixels per character, independent of glyph shape.
func DrawString(c *framebuffer.Canvas, x, y int, s string, col color.RGBA, scale int) {
	for i := 0; i < len(s); i++ {
		DrawChar(c, x+i*Advance*scale, y, s[i], col, scale)
	}
}

// StringWidth returns the total horizontal advance DrawString uses for s.
func StringWidth(s string, scale int) int {
	return len(s) * Advance * scale
}

// DrawStringCentered centers s horizontally on the canvas at row y.
func DrawStringCentered(c *framebuffer.Canvas, y int, s string, col color.RGBA, scale int) {
	w, _ := c.Size()
	DrawString(c, (w-StringWidth(s, scale))/2, y, s, col, scale)
}

// DrawDegree blits the small degree mark at (x, y). Position and scale are
// independent of any surrounding text; callers align it as a superscript
// beside large digits themselves.
func DrawDegree(c *framebuffer.Canvas, x, y int, col color.RGBA, scale int) {
	for row := 0; row < 3; row++ {
		for colBit := 0; colBit < 3; colBit++ {
			if degreeMark[row]&(0x04>>colBit) == 0 {
				continue
			}
			c.FillRect(x+colBit*scale, y+row*scale, scale, scale, col)
		}
	}
}
