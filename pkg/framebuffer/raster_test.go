package framebuffer

import (
	"image/color"
	"testing"
)

var (
	testFill = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	testTop  = color.RGBA{R: 100, G: 0, B: 0, A: 255}
	testBot  = color.RGBA{R: 0, G: 0, B: 100, A: 255}
)

func TestFillRect_ReadBack(t *testing.T) {
	c := New(32, 32)
	c.FillRect(5, 7, 10, 4, testFill)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			inside := x >= 5 && x < 15 && y >= 7 && y < 11
			got := c.At(x, y)
			if inside && got != testFill {
				t.Fatalf("(%d,%d): expected fill, got %v", x, y, got)
			}
			if !inside && got != (color.RGBA{}) {
				t.Fatalf("(%d,%d): expected untouched, got %v", x, y, got)
			}
		}
	}
}

func TestFillRect_Clipping(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"negative origin", -5, -5, 10, 10},
		{"past right edge", 28, 0, 10, 4},
		{"past bottom edge", 0, 28, 4, 10},
		{"fully outside", 100, 100, 10, 10},
		{"fully negative", -50, -50, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(32, 32)
			c.FillRect(tt.x, tt.y, tt.w, tt.h, testFill)
			// All written pixels stay inside; re-reading the border of the
			// clipped region must never panic or corrupt other rows.
			for y := 0; y < 32; y++ {
				for x := 0; x < 32; x++ {
					inside := x >= tt.x && x < tt.x+tt.w && y >= tt.y && y < tt.y+tt.h
					got := c.At(x, y)
					if inside && got != testFill {
						t.Fatalf("(%d,%d): expected fill, got %v", x, y, got)
					}
					if !inside && got != (color.RGBA{}) {
						t.Fatalf("(%d,%d): clipped write leaked", x, y)
					}
				}
			}
		})
	}
}

func TestGradientRectV_Endpoints(t *testing.T) {
	c := New(16, 64)
	c.GradientRectV(0, 10, 16, 20, testTop, testBot)

	if got := c.At(8, 10); got != testTop {
		t.Errorf("first row: expected %v, got %v", testTop, got)
	}
	if got := c.At(8, 29); got != testBot {
		t.Errorf("last row: expected %v, got %v", testBot, got)
	}
}

func TestGradientRectV_SingleRow(t *testing.T) {
	c := New(16, 16)
	c.GradientRectV(2, 5, 10, 1, testTop, testBot)

	if got := c.At(6, 5); got != testTop {
		t.Errorf("h=1: expected topColor %v, got %v", testTop, got)
	}
}

func TestHLine(t *testing.T) {
	c := New(16, 16)
	c.HLine(2, 12, 8, testFill)

	for x := 2; x <= 12; x++ {
		if c.At(x, 8) != testFill {
			t.Errorf("(%d,8): expected line color", x)
		}
	}
	if c.At(1, 8) != (color.RGBA{}) || c.At(13, 8) != (color.RGBA{}) {
		t.Error("line extends past its inclusive span")
	}

	// Out-of-range rows are a no-op.
	c.HLine(0, 15, -1, testFill)
	c.HLine(0, 15, 16, testFill)
	for x := 0; x < 16; x++ {
		if c.At(x, 0) != (color.RGBA{}) || c.At(x, 15) != (color.RGBA{}) {
			t.Fatal("out-of-range HLine wrote pixels")
		}
	}
}

func TestFilledCircle_Predicate(t *testing.T) {
	for _, r := range []int{1, 10, 18} {
		c := New(64, 64)
		cx, cy := 32, 32
		c.FilledCircle(cx, cy, r, testFill)

		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				dx, dy := x-cx, y-cy
				inside := dx*dx+dy*dy <= r*r
				got := c.At(x, y)
				if inside && got != testFill {
					t.Fatalf("r=%d: (%d,%d) inside but not set", r, x, y)
				}
				if !inside && got != (color.RGBA{}) {
					t.Fatalf("r=%d: (%d,%d) outside but set", r, x, y)
				}
			}
		}
	}
}

func TestRoundedRect_CornerClassification(t *testing.T) {
	c := New(64, 64)
	c.Clear()

	const x, y, w, h, r = 10, 10, 40, 30, 6
	c.RoundedRect(x, y, w, h, r, testFill)

	for dy := 0; dy < r; dy++ {
		for dx := 0; dx < r; dx++ {
			outside := (r-dx)*(r-dx)+(r-dy)*(r-dy) > r*r
			corners := []struct{ px, py int }{
				{x + dx, y + dy},
				{x + w - 1 - dx, y + dy},
				{x + dx, y + h - 1 - dy},
				{x + w - 1 - dx, y + h - 1 - dy},
			}
			for _, p := range corners {
				got := c.At(p.px, p.py)
				if outside {
					if want := c.BackgroundAt(p.py); got != want {
						t.Fatalf("(%d,%d): expected background %v, got %v", p.px, p.py, want, got)
					}
				} else if got != testFill {
					t.Fatalf("(%d,%d): expected fill, got %v", p.px, p.py, got)
				}
			}
		}
	}

	// Interior and straight edges keep the fill.
	if c.At(x+w/2, y+h/2) != testFill || c.At(x+w/2, y) != testFill || c.At(x, y+h/2) != testFill {
		t.Error("interior or edge pixel lost the fill color")
	}
}
