package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/user/weatherstar/pkg/font"
	"github.com/user/weatherstar/pkg/framebuffer"
	"github.com/user/weatherstar/pkg/icons"
)

// Fixed captions of the display.
const (
	headerTitle   = "THE  WEATHER  CHANNEL"
	subTitle      = "LOCAL  FORECAST"
	cardLabel     = "Current Conditions"
	forecastLabel = "EXTENDED FORECAST"
	statusCaption = "Local on the 8s"
)

// Layout constants, tuned for the 640x400 canvas. Changing the canvas size
// means re-deriving these; there is no layout solver.
const (
	accentBarH = 4

	headerY = 4
	headerH = 36
	titleY  = 10

	sepY = 40

	locBarY  = 42
	locBarH  = 30
	subY     = 48
	locSepY  = 73
	locNameY = 80

	cardX = 20
	cardY = 104
	cardH = 140
	cardR = 6

	tempX     = 180
	tempScale = 5

	detailLeftX    = 36
	detailLeftVal  = detailLeftX + 11*font.Advance
	detailRightX   = 320
	detailRightVal = detailRightX + 12*font.Advance
	detailY        = 100
	detailRowH     = 12

	stripY  = 252
	boxW    = 110
	boxGap  = 10
	boxH    = 95
	statusH = 30
)

// Compose clears the canvas and draws the whole scene in a fixed order.
// Later elements intentionally overwrite earlier ones where they overlap
// (the cloud over the sun, for example). Out-of-range coordinates are
// absorbed by the rasterizer's clipping, so Compose cannot fail.
func Compose(c *framebuffer.Canvas, snap Snapshot) {
	w, h := c.Size()

	c.Clear()

	// Top gold accent bar.
	c.FillRect(0, 0, w, accentBarH, framebuffer.Gold)

	// Header banner.
	c.GradientRectV(0, headerY, w, headerH, framebuffer.Header, framebuffer.HeaderBottom)
	font.DrawStringCentered(c, titleY, headerTitle, framebuffer.White, 2)

	// Two-row gold separator.
	c.HLine(0, w-1, sepY, framebuffer.Gold)
	c.HLine(0, w-1, sepY+1, framebuffer.Gold)

	// Location bar.
	c.GradientRectV(0, locBarY, w, locBarH, framebuffer.LocationTop, framebuffer.LocationBottom)
	font.DrawStringCentered(c, subY, subTitle, framebuffer.Cyan, 2)

	c.HLine(20, w-21, locSepY, framebuffer.Separator)
	font.DrawStringCentered(c, locNameY, snap.Location, framebuffer.White, 2)

	composeCard(c, snap, w)
	composeForecast(c, snap, w)
	composeStatusBar(c, snap, w, h)
}

// composeCard draws the rounded current-conditions card. The card sits
// directly on the background gradient, which RoundedRect's corner knockout
// relies on.
func composeCard(c *framebuffer.Canvas, snap Snapshot, w int) {
	c.RoundedRect(cardX, cardY, w-2*cardX, cardH, cardR, framebuffer.CardFill)
	c.HLine(cardX+2, w-cardX-3, cardY+1, framebuffer.Separator)

	font.DrawString(c, detailLeftX, cardY+8, cardLabel, framebuffer.Accent, 1)
	c.HLine(detailLeftX, w-57, cardY+20, framebuffer.RuleDim)

	// Weather icon, sun first so the cloud overlaps it.
	icons.Sun(c, 90, cardY+55, 18)
	icons.Cloud(c, 110, cardY+60, framebuffer.LightGray)

	// Big temperature with superscript degree mark and unit letter. The
	// offsets come straight from the glyph advance at the digit scale.
	digits := strconv.Itoa(snap.Temp)
	dw := font.StringWidth(digits, tempScale)
	font.DrawString(c, tempX, cardY+30, digits, framebuffer.White, tempScale)
	font.DrawDegree(c, tempX+dw, cardY+30, framebuffer.White, 3)
	font.DrawString(c, tempX+dw+12, cardY+30, snap.TempUnit, framebuffer.White, 4)

	font.DrawString(c, tempX, cardY+75, snap.Condition, framebuffer.LightGray, 2)

	composeReadings(c, snap.LeftReadings, detailLeftX, detailLeftVal)
	composeReadings(c, snap.RightReadings, detailRightX, detailRightVal)
}

// composeReadings draws up to three label/value rows in one detail column.
func composeReadings(c *framebuffer.Canvas, readings []Reading, labelX, valueX int) {
	for i, r := range readings {
		if i >= 3 {
			break
		}
		y := cardY + detailY + i*detailRowH
		font.DrawString(c, labelX, y, r.Label, framebuffer.Cyan, 1)
		valCol := r.Color
		if valCol == (color.RGBA{}) {
			valCol = framebuffer.White
		}
		font.DrawString(c, valueX, y, r.Value, valCol, 1)
	}
}

// composeForecast draws the five-day forecast strip.
func composeForecast(c *framebuffer.Canvas, snap Snapshot, w int) {
	c.HLine(20, w-21, stripY, framebuffer.Gold)
	c.HLine(20, w-21, stripY+1, framebuffer.Gold)

	font.DrawString(c, 30, stripY+8, forecastLabel, framebuffer.Gold, 1)
	c.HLine(20, w-21, stripY+20, framebuffer.RuleDim)

	// Boxes are centered as a group.
	boxStart := (w - (ForecastDays*boxW + (ForecastDays-1)*boxGap)) / 2
	by := stripY + 26

	for i, day := range snap.Forecast {
		bx := boxStart + i*(boxW+boxGap)

		c.FillRect(bx, by, boxW, boxH, framebuffer.CardFill)
		c.HLine(bx, bx+boxW-1, by, framebuffer.Separator)

		dw := font.StringWidth(day.Day, 2)
		font.DrawString(c, bx+(boxW-dw)/2, by+4, day.Day, framebuffer.White, 2)

		font.DrawString(c, bx+8, by+30, fmt.Sprintf("Hi %d", day.High), framebuffer.TempHigh, 1)
		font.DrawString(c, bx+8, by+44, fmt.Sprintf("Lo %d", day.Low), framebuffer.TempLow, 1)
		font.DrawString(c, bx+8, by+62, day.Condition, framebuffer.LightGray, 1)

		dot := framebuffer.Yellow
		if day.Adverse {
			dot = framebuffer.Cyan
		}
		icons.Dot(c, bx+boxW-18, by+72, 3, dot)
	}
}

// composeStatusBar draws the bottom bar with date, caption, and the clock.
func composeStatusBar(c *framebuffer.Canvas, snap Snapshot, w, h int) {
	botY := h - statusH
	c.FillRect(0, botY, w, statusH, framebuffer.StatusFill)
	c.HLine(0, w-1, botY, framebuffer.Gold)
	c.HLine(0, w-1, botY+1, framebuffer.Gold)

	font.DrawString(c, 20, botY+10, snap.Clock.Date, framebuffer.LightGray, 1)

	// 12-hour clock, leading zero stripped ("08:30 PM" shows as "8:30 PM").
	timeStr := strings.TrimPrefix(snap.Clock.TimeOfDay, "0")
	tw := font.StringWidth(timeStr, 2)
	font.DrawString(c, w-tw-20, botY+6, timeStr, framebuffer.White, 2)

	font.DrawStringCentered(c, botY+10, statusCaption, framebuffer.Gold, 1)
}
