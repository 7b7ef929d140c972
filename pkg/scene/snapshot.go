// Package scene composes the full weather display onto a framebuffer
// canvas from a caller-supplied snapshot. Composition is a single
// deterministic pass: it performs no I/O and cannot fail.
package scene

import (
	"image/color"
	"time"
)

// ForecastDays is the number of boxes in the extended forecast strip.
const ForecastDays = 5

// Reading is one labeled current-condition value, e.g. "Humidity:" / "72%".
// Color tints the value text; the zero value renders white.
type Reading struct {
	Label string
	Value string
	Color color.RGBA
}

// ForecastEntry is one day of the extended forecast.
type ForecastEntry struct {
	Day       string // short label, e.g. "SAT"
	Condition string // short condition text, e.g. "P.Cloud"
	High      int
	Low       int
	Adverse   bool // true for rain/storm days; tints the indicator dot
}

// Clock carries the preformatted time and date strings for one render.
type Clock struct {
	TimeOfDay string // 12-hour form, possibly zero-padded: "08:30 PM"
	Date      string // e.g. "Sunday  Aug 24, 2026"
}

// ClockAt formats a wall-clock instant the way the display expects.
func ClockAt(t time.Time) Clock {
	return Clock{
		TimeOfDay: t.Format("03:04 PM"),
		Date:      t.Format("Monday  Jan 02, 2006"),
	}
}

// Snapshot is the external data bundle one composition pass consumes. The
// composer never fetches or mutates it.
type Snapshot struct {
	Location  string
	Temp      int
	TempUnit  string // single letter, "F" or "C"
	Condition string

	// Three readings per column; extras are ignored, missing rows skipped.
	LeftReadings  []Reading
	RightReadings []Reading

	Forecast [ForecastDays]ForecastEntry
	Clock    Clock
}
