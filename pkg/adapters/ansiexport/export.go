// Package ansiexport renders a finished frame to a terminal using
// truecolor escape sequences and the half-block technique: each character
// cell carries two vertically stacked pixels, the top one as foreground
// and the bottom one as background of an upper-half-block glyph.
package ansiexport

import (
	"bufio"
	"fmt"
	"io"

	"github.com/user/weatherstar/pkg/ports"
)

const (
	home      = "\033[H\033[2J"
	reset     = "\033[0m"
	halfBlock = "▀"
)

// Exporter writes a frame to a terminal-like writer. Output is best
// effort; callers treat a returned error as diagnostic only.
type Exporter struct {
	w io.Writer
}

// New creates an exporter writing to w.
func New(w io.Writer) *Exporter {
	return &Exporter{w: w}
}

// Export emits the frame as ceil(H/2) terminal lines. Each line ends with
// a style reset, and the output ends with a final reset so the terminal is
// left in its default state.
func (e *Exporter) Export(frame ports.Frame) error {
	w, h := frame.Size()
	bw := bufio.NewWriterSize(e.w, 64*1024)

	fmt.Fprint(bw, home)
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := frame.At(x, y)
			bot := top
			if y+1 < h {
				bot = frame.At(x, y+1)
			}
			fmt.Fprintf(bw, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm%s",
				top.R, top.G, top.B, bot.R, bot.G, bot.B, halfBlock)
		}
		fmt.Fprint(bw, reset+"\n")
	}
	fmt.Fprint(bw, reset)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write terminal output: %w", err)
	}
	return nil
}

var _ ports.Exporter = (*Exporter)(nil)
