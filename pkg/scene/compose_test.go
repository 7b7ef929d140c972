package scene

import (
	"testing"
	"time"

	"github.com/user/weatherstar/pkg/font"
	"github.com/user/weatherstar/pkg/framebuffer"
)

// demoSnapshot is the fixed input scenario: San Francisco, 62F Partly
// Cloudy, five forecast days, clock pinned to 08:30 PM.
func demoSnapshot() Snapshot {
	return Snapshot{
		Location:  "San Francisco, CA",
		Temp:      62,
		TempUnit:  "F",
		Condition: "Partly Cloudy",
		LeftReadings: []Reading{
			{Label: "Humidity:", Value: "72%"},
			{Label: "Wind:", Value: "W 12 mph"},
			{Label: "Barometer:", Value: "30.12 in"},
		},
		RightReadings: []Reading{
			{Label: "Dewpoint:", Value: "54 F"},
			{Label: "Visibility:", Value: "10 mi"},
			{Label: "UV Index:", Value: "3 Moderate", Color: framebuffer.Green},
		},
		Forecast: [ForecastDays]ForecastEntry{
			{Day: "SAT", Condition: "Sunny", High: 68, Low: 52},
			{Day: "SUN", Condition: "Cloudy", High: 65, Low: 50},
			{Day: "MON", Condition: "Rain", High: 58, Low: 48, Adverse: true},
			{Day: "TUE", Condition: "P.Cloud", High: 61, Low: 49},
			{Day: "WED", Condition: "Sunny", High: 70, Low: 54},
		},
		Clock: Clock{
			TimeOfDay: "08:30 PM",
			Date:      "Saturday  Aug 22, 2026",
		},
	}
}

func composeDemo() *framebuffer.Canvas {
	c := framebuffer.New(framebuffer.Width, framebuffer.Height)
	Compose(c, demoSnapshot())
	return c
}

func TestCompose_TopAccentBar(t *testing.T) {
	c := composeDemo()

	if got := c.At(0, 0); got != framebuffer.Gold {
		t.Errorf("(0,0): expected gold accent, got %v", got)
	}
	if got := c.At(639, 3); got != framebuffer.Gold {
		t.Errorf("(639,3): expected gold accent, got %v", got)
	}
}

func TestCompose_HeaderBanner(t *testing.T) {
	c := composeDemo()

	// Row 5 is the second row of the header gradient.
	want := framebuffer.Blend(framebuffer.Header, framebuffer.HeaderBottom, 1.0/35)
	if got := c.At(0, 5); got != want {
		t.Errorf("(0,5): expected header gradient %v, got %v", want, got)
	}

	// The gold separator pair under the header.
	if c.At(320, 40) != framebuffer.Gold || c.At(320, 41) != framebuffer.Gold {
		t.Error("rows 40-41: expected gold separator")
	}
}

func TestCompose_TimeLeadingZeroStripped(t *testing.T) {
	c := composeDemo()

	// "8:30 PM" at scale 2, right-aligned with a 20px margin, lands at
	// x=536. The '8' glyph's top row covers columns 1..3.
	const startX = framebuffer.Width - 7*font.Advance*2 - 20
	if startX != 536 {
		t.Fatalf("layout drifted: expected time at x=536, got %d", startX)
	}
	if got := c.At(startX+2, 376); got != framebuffer.White {
		t.Errorf("time digits: expected white at (%d,376), got %v", startX+2, got)
	}

	// Had the zero not been stripped, "08:30 PM" would start at x=524 and
	// the '0' would light pixels around x=526.
	if got := c.At(526, 376); got != framebuffer.StatusFill {
		t.Errorf("(526,376): expected status-bar fill, got %v (leading zero rendered?)", got)
	}
}

func TestCompose_ForecastIndicatorDots(t *testing.T) {
	c := composeDemo()

	// Five 110px boxes with 10px gaps centered on 640 start at x=25; dots
	// sit at (bx+92, 350). MON (index 2) is the adverse day.
	dotY := stripY + 26 + 72
	for i := 0; i < ForecastDays; i++ {
		bx := 25 + i*(boxW+boxGap)
		want := framebuffer.Yellow
		if i == 2 {
			want = framebuffer.Cyan
		}
		if got := c.At(bx+boxW-18, dotY); got != want {
			t.Errorf("box %d dot: expected %v, got %v", i, want, got)
		}
	}
}

func TestCompose_CardCornersRounded(t *testing.T) {
	c := composeDemo()

	// The card's very corner pixel lies outside the rounding arc and must
	// show the background gradient for its row.
	if got, want := c.At(cardX, cardY), c.BackgroundAt(cardY); got != want {
		t.Errorf("card corner: expected background %v, got %v", want, got)
	}
	// Just inside the rounded region the fill shows.
	if got := c.At(cardX+cardR, cardY+cardR); got != framebuffer.CardFill {
		t.Errorf("card interior: expected card fill, got %v", got)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	a := composeDemo()
	b := composeDemo()

	w, h := a.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("renders differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestClockAt(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		wantTime string
		wantDate string
	}{
		{
			"evening zero-padded hour",
			time.Date(2026, 8, 22, 20, 30, 0, 0, time.UTC),
			"08:30 PM",
			"Saturday  Aug 22, 2026",
		},
		{
			"morning double-digit hour",
			time.Date(2026, 8, 24, 11, 5, 0, 0, time.UTC),
			"11:05 AM",
			"Monday  Aug 24, 2026",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClockAt(tt.t)
			if got.TimeOfDay != tt.wantTime {
				t.Errorf("time: expected %q, got %q", tt.wantTime, got.TimeOfDay)
			}
			if got.Date != tt.wantDate {
				t.Errorf("date: expected %q, got %q", tt.wantDate, got.Date)
			}
		})
	}
}
