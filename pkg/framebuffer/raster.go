package framebuffer

import "image/color"

// FillRect sets every pixel of the rectangle to a flat color. Rectangles
// with negative origin or extents past the canvas edge are clipped.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	for py := y; py < y+h && py < c.h; py++ {
		if py < 0 {
			continue
		}
		for px := x; px < x+w && px < c.w; px++ {
			if px < 0 {
				continue
			}
			c.pix[py*c.w+px] = col
		}
	}
}

// GradientRectV fills the rectangle with a per-row linear blend from top to
// bottom. The first row is exactly top, the last exactly bottom; a height of
// one uses top alone.
func (c *Canvas) GradientRectV(x, y, w, h int, top, bottom color.RGBA) {
	for py := y; py < y+h && py < c.h; py++ {
		if py < 0 {
			continue
		}
		t := 0.0
		if h > 1 {
			t = float64(py-y) / float64(h-1)
		}
		col := Blend(top, bottom, t)
		for px := x; px < x+w && px < c.w; px++ {
			if px < 0 {
				continue
			}
			c.pix[py*c.w+px] = col
		}
	}
}

// HLine draws an inclusive horizontal span at row y. Rows outside the
// canvas are a no-op.
func (c *Canvas) HLine(x0, x1, y int, col color.RGBA) {
	if y < 0 || y >= c.h {
		return
	}
	for x := x0; x <= x1 && x < c.w; x++ {
		if x < 0 {
			continue
		}
		c.pix[y*c.w+x] = col
	}
}

// FilledCircle sets every pixel with dx*dx+dy*dy <= r*r around the center.
// Brute force over the bounding square; fine for the small radii the scene
// uses, not meant for large circles.
func (c *Canvas) FilledCircle(cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

// RoundedRect fills the rectangle and then rounds the four corners by
// rewriting pixels outside the corner arcs with the background gradient at
// their absolute row.
//
// Precondition: the rectangle sits directly on the full-canvas background
// gradient. The corners are "erased" to what Clear painted there, so any
// other content underneath would be lost.
func (c *Canvas) RoundedRect(x, y, w, h, r int, col color.RGBA) {
	c.FillRect(x, y, w, h, col)
	for dy := 0; dy < r; dy++ {
		for dx := 0; dx < r; dx++ {
			if (r-dx)*(r-dx)+(r-dy)*(r-dy) <= r*r {
				continue
			}
			c.knockOut(x+dx, y+dy)
			c.knockOut(x+w-1-dx, y+dy)
			c.knockOut(x+dx, y+h-1-dy)
			c.knockOut(x+w-1-dx, y+h-1-dy)
		}
	}
}

func (c *Canvas) knockOut(x, y int) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = c.BackgroundAt(y)
}
