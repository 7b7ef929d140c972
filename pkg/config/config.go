// Package config provides the weather snapshot and theme configuration.
// Without a config file the built-in demo snapshot is used; a YAML file
// overrides it field by field.
package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/weatherstar/pkg/framebuffer"
	"github.com/user/weatherstar/pkg/ports"
	"github.com/user/weatherstar/pkg/scene"
)

// Config is the on-disk representation of one weather snapshot plus
// optional theme overrides.
type Config struct {
	Location    string `yaml:"location"`
	Temperature int    `yaml:"temperature"`
	Unit        string `yaml:"unit"`
	Condition   string `yaml:"condition"`

	Readings ReadingsConfig `yaml:"readings"`

	Forecast []ForecastConfig `yaml:"forecast"`

	Clock ClockConfig `yaml:"clock"`
	Theme ThemeConfig `yaml:"theme"`
}

// ReadingsConfig holds the six labeled current-condition values.
type ReadingsConfig struct {
	Humidity   string `yaml:"humidity"`
	Wind       string `yaml:"wind"`
	Barometer  string `yaml:"barometer"`
	Dewpoint   string `yaml:"dewpoint"`
	Visibility string `yaml:"visibility"`
	UVIndex    string `yaml:"uv_index"`
}

// ForecastConfig is one extended-forecast day.
type ForecastConfig struct {
	Day       string `yaml:"day"`
	Condition string `yaml:"condition"`
	High      int    `yaml:"high"`
	Low       int    `yaml:"low"`
	Adverse   *bool  `yaml:"adverse"` // nil derives from the condition text
}

// ClockConfig pins the displayed time and date. Empty fields fall back to
// the wall clock, so demo renders stay reproducible when pinned.
type ClockConfig struct {
	Time string `yaml:"time"` // "03:04 PM" form
	Date string `yaml:"date"`
}

// ThemeConfig overrides palette entries with "#rrggbb" values. Empty
// fields keep the default palette.
type ThemeConfig struct {
	GradientTop    string `yaml:"gradient_top"`
	GradientBottom string `yaml:"gradient_bottom"`
}

// Defaults returns the built-in demo snapshot: a pleasant evening in
// San Francisco.
func Defaults() Config {
	return Config{
		Location:    "San Francisco, CA",
		Temperature: 62,
		Unit:        "F",
		Condition:   "Partly Cloudy",
		Readings: ReadingsConfig{
			Humidity:   "72%",
			Wind:       "W 12 mph",
			Barometer:  "30.12 in",
			Dewpoint:   "54 F",
			Visibility: "10 mi",
			UVIndex:    "3 Moderate",
		},
		Forecast: []ForecastConfig{
			{Day: "SAT", Condition: "Sunny", High: 68, Low: 52},
			{Day: "SUN", Condition: "Cloudy", High: 65, Low: 50},
			{Day: "MON", Condition: "Rain", High: 58, Low: 48},
			{Day: "TUE", Condition: "P.Cloud", High: 61, Low: 49},
			{Day: "WED", Condition: "Sunny", High: 70, Low: 54},
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. Lists
// replace wholesale; scalar fields override only when set.
func Load(path string, fs ports.FileSystem) (Config, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	merge(&cfg, file)
	return cfg, nil
}

func merge(dst *Config, src Config) {
	if src.Location != "" {
		dst.Location = src.Location
	}
	if src.Temperature != 0 {
		dst.Temperature = src.Temperature
	}
	if src.Unit != "" {
		dst.Unit = src.Unit
	}
	if src.Condition != "" {
		dst.Condition = src.Condition
	}
	mergeString(&dst.Readings.Humidity, src.Readings.Humidity)
	mergeString(&dst.Readings.Wind, src.Readings.Wind)
	mergeString(&dst.Readings.Barometer, src.Readings.Barometer)
	mergeString(&dst.Readings.Dewpoint, src.Readings.Dewpoint)
	mergeString(&dst.Readings.Visibility, src.Readings.Visibility)
	mergeString(&dst.Readings.UVIndex, src.Readings.UVIndex)
	if len(src.Forecast) > 0 {
		dst.Forecast = src.Forecast
	}
	dst.Clock = src.Clock
	dst.Theme = src.Theme
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Snapshot converts the config into the scene input for one render at the
// given instant. A pinned clock in the config wins over now.
func (c Config) Snapshot(now time.Time) scene.Snapshot {
	snap := scene.Snapshot{
		Location:  c.Location,
		Temp:      c.Temperature,
		TempUnit:  c.Unit,
		Condition: c.Condition,
		LeftReadings: []scene.Reading{
			{Label: "Humidity:", Value: c.Readings.Humidity},
			{Label: "Wind:", Value: c.Readings.Wind},
			{Label: "Barometer:", Value: c.Readings.Barometer},
		},
		RightReadings: []scene.Reading{
			{Label: "Dewpoint:", Value: c.Readings.Dewpoint},
			{Label: "Visibility:", Value: c.Readings.Visibility},
			{Label: "UV Index:", Value: c.Readings.UVIndex, Color: framebuffer.Green},
		},
		Clock: scene.ClockAt(now),
	}

	for i := 0; i < scene.ForecastDays && i < len(c.Forecast); i++ {
		day := c.Forecast[i]
		snap.Forecast[i] = scene.ForecastEntry{
			Day:       day.Day,
			Condition: day.Condition,
			High:      day.High,
			Low:       day.Low,
			Adverse:   adverse(day),
		}
	}

	if c.Clock.Time != "" {
		snap.Clock.TimeOfDay = c.Clock.Time
	}
	if c.Clock.Date != "" {
		snap.Clock.Date = c.Clock.Date
	}
	return snap
}

// adverse decides the forecast indicator-dot category: an explicit flag
// wins, otherwise rainy or stormy condition text counts as adverse.
func adverse(day ForecastConfig) bool {
	if day.Adverse != nil {
		return *day.Adverse
	}
	cond := strings.ToLower(day.Condition)
	return strings.Contains(cond, "rain") || strings.Contains(cond, "storm") ||
		strings.Contains(cond, "snow")
}

// ApplyTheme installs the configured background gradient on the canvas.
func (c Config) ApplyTheme(canvas *framebuffer.Canvas) error {
	top, bottom := framebuffer.GradientTop, framebuffer.GradientBottom
	var err error
	if c.Theme.GradientTop != "" {
		if top, err = framebuffer.ParseHex(c.Theme.GradientTop); err != nil {
			return fmt.Errorf("theme gradient_top: %w", err)
		}
	}
	if c.Theme.GradientBottom != "" {
		if bottom, err = framebuffer.ParseHex(c.Theme.GradientBottom); err != nil {
			return fmt.Errorf("theme gradient_bottom: %w", err)
		}
	}
	canvas.SetTheme(top, bottom)
	return nil
}
