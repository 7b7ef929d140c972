// Package icons draws the composite weather shapes used by the scene:
// a sun with rays, a puffy cloud, and a small condition indicator dot.
// Everything is built from framebuffer primitives; overlap between shapes
// is resolved last-write-wins, there is no blending.
package icons

import (
	"image/color"
	"math"

	"github.com/user/weatherstar/pkg/framebuffer"
)

// Sun draws a yellow disc of radius r centered at (cx, cy) with eight
// orange rays at 45 degree intervals. Ray pixels run from radial distance
// r+3 to r+9 and are duplicated one pixel to the right for 2px width.
func Sun(c *framebuffer.Canvas, cx, cy, r int) {
	c.FilledCircle(cx, cy, r, framebuffer.Yellow)
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		for d := r + 3; d < r+10; d++ {
			px := cx + int(math.Cos(angle)*float64(d))
			py := cy + int(math.Sin(angle)*float64(d))
			c.Set(px, py, framebuffer.Orange)
			c.Set(px+1, py, framebuffer.Orange)
		}
	}
}

// cloudLobes are the three overlapping circles that form the cloud
// silhouette: center first, then left and right lobes.
var cloudLobes = [3]struct{ dx, dy, r int }{
	{0, 0, 12},
	{-10, 4, 10},
	{10, 4, 10},
}

// Cloud draws a puffy cloud of the given color centered at (cx, cy).
func Cloud(c *framebuffer.Canvas, cx, cy int, col color.RGBA) {
	for _, l := range cloudLobes {
		c.FilledCircle(cx+l.dx, cy+l.dy, l.r, col)
	}
}

// Dot draws a small filled indicator circle, used in the forecast boxes to
// hint at the day's condition.
func Dot(c *framebuffer.Canvas, cx, cy, r int, col color.RGBA) {
	c.FilledCircle(cx, cy, r, col)
}
