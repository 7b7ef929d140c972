// Package main provides the CLI entry point for weatherstar.
package main

import (
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/user/weatherstar/pkg/adapters/ansiexport"
	"github.com/user/weatherstar/pkg/adapters/logger"
	"github.com/user/weatherstar/pkg/adapters/osfilesystem"
	"github.com/user/weatherstar/pkg/adapters/pngexport"
	"github.com/user/weatherstar/pkg/config"
	"github.com/user/weatherstar/pkg/framebuffer"
	"github.com/user/weatherstar/pkg/ports"
	"github.com/user/weatherstar/pkg/scene"
)

// CLI defines the command-line interface.
type CLI struct {
	Screenshot string `help:"Save the rendered display as a PNG file." placeholder:"FILE.png"`
	Scale      int    `default:"1" help:"Integer upscale factor for the screenshot."`
	Config     string `help:"YAML file with weather data and theme overrides." placeholder:"FILE.yaml"`

	NoAnsi    bool `help:"Suppress terminal output."`
	ForceAnsi bool `help:"Emit terminal output even when stdout is not a TTY."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// knownFlags maps the accepted long flags to whether they take a separate
// value argument. Anything else on the command line is ignored silently,
// matching the display's historical behavior.
var knownFlags = map[string]bool{
	"--screenshot": true,
	"--scale":      true,
	"--config":     true,
	"--log-level":  true,
	"--no-ansi":    false,
	"--force-ansi": false,
	"--quiet":      false,
	"--help":       false,
	"-l":           true,
	"-Q":           false,
	"-h":           false,
}

// filterKnownArgs drops unrecognized arguments before parsing.
func filterKnownArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name := arg
		if idx := strings.IndexByte(arg, '='); idx >= 0 {
			name = arg[:idx]
		}
		takesValue, ok := knownFlags[name]
		if !ok {
			continue
		}
		out = append(out, arg)
		if takesValue && name == arg && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

func main() {
	cli := CLI{}

	parser, err := kong.New(&cli,
		kong.Name("weatherstar"),
		kong.Description("Render a retro WeatherStar 4000 style weather display."),
		kong.UsageOnError(),
	)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(filterKnownArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run renders the display once and hands it to the requested exporters.
func (cmd *CLI) Run() error {
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	fs := osfilesystem.New()

	cfg := config.Defaults()
	if cmd.Config != "" {
		log.Debug("Loading weather data from %s", cmd.Config)
		var err error
		if cfg, err = config.Load(cmd.Config, fs); err != nil {
			log.Error("Failed to load config: %s", err)
			return err
		}
	} else {
		log.Debug("Using built-in demo data")
	}

	canvas := framebuffer.New(framebuffer.Width, framebuffer.Height)
	if err := cfg.ApplyTheme(canvas); err != nil {
		log.Error("Failed to load config: %s", err)
		return err
	}

	snap := cfg.Snapshot(time.Now())
	log.Debug("Composing display for %s", snap.Location)
	scene.Compose(canvas, snap)

	if cmd.ansiEnabled() {
		_, h := canvas.Size()
		log.Debug("Emitting terminal output (%d lines)", (h+1)/2)
		if err := ansiexport.New(os.Stdout).Export(canvas); err != nil {
			// Terminal output is best effort.
			log.Warn("Terminal write failed: %s", err)
		}
	} else if !cmd.NoAnsi {
		log.Debug("Terminal output skipped (not a TTY)")
	}

	if cmd.Screenshot != "" {
		w, h := canvas.Size()
		log.Debug("Encoding PNG %dx%d (scale %d)", w, h, cmd.Scale)
		if err := pngexport.New(cmd.Screenshot, fs, cmd.Scale).Export(canvas); err != nil {
			log.Error("Failed to save screenshot: %s", err)
			return err
		}
		log.Info("Screenshot saved to %s", cmd.Screenshot)
	}

	return nil
}

func (cmd *CLI) ansiEnabled() bool {
	if cmd.NoAnsi {
		return false
	}
	if cmd.ForceAnsi {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
