package framebuffer

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// WeatherStar blue theme. Values match the classic broadcast look; the
// gradient and fill entries can be overridden per render via Canvas.SetTheme.
var (
	Header         = mustHex("#2846aa") // header bar blue
	HeaderBottom   = mustHex("#1e378c") // header banner lower edge
	Accent         = mustHex("#3c78d2") // accent / highlight
	Gold           = mustHex("#ffc832") // gold bar
	White          = mustHex("#ffffff")
	LightGray      = mustHex("#b4bed2")
	Yellow         = mustHex("#ffff64")
	Cyan           = mustHex("#64dcff")
	Green          = mustHex("#50dc78")
	Orange         = mustHex("#ffa032")
	GradientTop    = mustHex("#142878")
	GradientBottom = mustHex("#050f3c")
	Separator      = mustHex("#3250a0")
	TempHigh       = mustHex("#ff6450")
	TempLow        = mustHex("#64b4ff")
	LocationTop    = mustHex("#1e328c") // location bar gradient
	LocationBottom = mustHex("#14236e")
	CardFill       = mustHex("#0f195a") // conditions card / forecast boxes
	RuleDim        = mustHex("#283c82") // secondary separator rules
	StatusFill     = mustHex("#0a0f37") // bottom status bar
)

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("framebuffer: bad palette entry " + s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ParseHex parses a "#rrggbb" color, as accepted in theme configuration.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Blend linearly interpolates between a and b in RGB space. t=0 returns a
// exactly and t=1 returns b exactly.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
