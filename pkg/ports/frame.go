package ports

import "image/color"

// Frame is a read-only view of a finished render. Exporters consume a
// Frame after composition completes and never write back into it.
type Frame interface {
	// Size returns the frame dimensions in pixels.
	Size() (width, height int)

	// At returns the pixel color at (x, y). Out-of-bounds coordinates
	// return the zero color.
	At(x, y int) color.RGBA
}

// Exporter emits a finished frame to some destination (terminal, file).
// Exporters are independent of each other and may run in any order.
type Exporter interface {
	Export(frame Frame) error
}
