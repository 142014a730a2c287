// Package config holds the startup parameters shared by every backend.
package config

import (
	"encoding/json"
	"flag"
	"image/color"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidConfig marks every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// maxIntervalSeconds is the longest interval a time.Duration can hold.
const maxIntervalSeconds = float64(math.MaxInt64) / float64(time.Second)

// Config represents the startup parameters for a run.
type Config struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	CellSize    int     `json:"cell_size"`
	Background  string  `json:"background"`
	Foreground  string  `json:"foreground"`
	Interval    float64 `json:"interval"`
	Density     float64 `json:"density"`
	Seed        int64   `json:"seed"`
	Generations int     `json:"generations"`
	Backend     string  `json:"backend"`
	Glyph       string  `json:"glyph"`

	// Preset names the base values the file and flags are applied over.
	Preset string `json:"-"`
	// File is the optional JSON file the other fields were loaded from.
	File string `json:"-"`
}

// Default returns a Config populated with sensible defaults. It is the
// "coarse" preset.
func Default() Config {
	return Config{
		Width:      150,
		Height:     150,
		CellSize:   10,
		Background: "#ffffff",
		Foreground: "#006400",
		Interval:   0.1,
		Density:    0.3,
		Backend:    "term",
		Glyph:      "█",
		Preset:     "coarse",
	}
}

// presets maps a preset name to the changes it makes to Default.
var presets = map[string]func(*Config){
	"coarse": func(*Config) {},
	// A larger board of small cells, stepped fast and seeded sparsely.
	"fine": func(c *Config) {
		c.Width, c.Height = 300, 300
		c.CellSize = 5
		c.Interval = 0.01
		c.Density = 0.1
	},
}

// Preset returns Default adjusted by the named preset. An empty name is the
// default preset.
func Preset(name string) (Config, error) {
	c := Default()
	if name == "" {
		return c, nil
	}
	apply, ok := presets[name]
	if !ok {
		return c, errors.Wrapf(ErrInvalidConfig, "unknown preset %q (have %s)", name, strings.Join(PresetNames(), ", "))
	}
	apply(&c)
	c.Preset = name
	return c, nil
}

// PresetNames lists the known presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "base values: "+strings.Join(PresetNames(), " or "))
	fs.StringVar(&c.File, "config", c.File, "optional JSON configuration file")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels (window backend)")
	fs.StringVar(&c.Background, "bg", c.Background, "background color as #rrggbb")
	fs.StringVar(&c.Foreground, "fg", c.Foreground, "live cell color as #rrggbb")
	fs.Float64Var(&c.Interval, "interval", c.Interval, "seconds between generations")
	fs.Float64Var(&c.Density, "density", c.Density, "initial probability that a cell is alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 picks one from the clock")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations; 0 runs until quit")
	fs.StringVar(&c.Backend, "backend", c.Backend, "display backend: term or window")
	fs.StringVar(&c.Glyph, "glyph", c.Glyph, "character drawn for live cells (term backend)")
}

// Load reads a JSON file on top of the defaults.
func Load(filename string) (Config, error) {
	return load(filename, Default())
}

func load(filename string, c Config) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "[Load] failed to read file: %s", filename)
	}
	if err = json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %s", filename)
	}
	c.File = filename
	return c, nil
}

// FromArgs resolves the -preset values, then the -config file if given, then
// the remaining flags, and validates the result.
func FromArgs(name string, args []string) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	base, err := Preset(c.Preset)
	if err != nil {
		return c, err
	}
	if c.File != "" {
		if base, err = load(c.File, base); err != nil {
			return c, err
		}
	}
	// Flags given on the command line win over the preset and the file.
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	base.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return base, err
	}
	return base, base.Validate()
}

// Validate reports the first parameter that cannot start a simulation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return errors.Wrapf(ErrInvalidConfig, "width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "height must be positive, got %d", c.Height)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell size must be positive, got %d", c.CellSize)
	case math.IsNaN(c.Interval) || math.IsInf(c.Interval, 0) || c.Interval < 0:
		return errors.Wrapf(ErrInvalidConfig, "interval must be a non-negative number of seconds, got %v", c.Interval)
	case c.Interval >= maxIntervalSeconds:
		return errors.Wrapf(ErrInvalidConfig, "interval must be below %.0f seconds, got %v", maxIntervalSeconds, c.Interval)
	case math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "density must be within [0, 1], got %v", c.Density)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "generations must not be negative, got %d", c.Generations)
	case c.Backend == "":
		return errors.Wrap(ErrInvalidConfig, "backend must be set")
	case utf8.RuneCountInString(c.Glyph) != 1:
		return errors.Wrapf(ErrInvalidConfig, "glyph must be a single character, got %q", c.Glyph)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return errors.Wrap(err, "background")
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		return errors.Wrap(err, "foreground")
	}
	return nil
}

// TickInterval converts Interval to a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Interval * float64(time.Second))
}

// Colors returns the parsed foreground and background colors. Invalid values
// fall back to black on white; Validate reports them.
func (c Config) Colors() (fg, bg color.RGBA) {
	fg, err := ParseColor(c.Foreground)
	if err != nil {
		fg = color.RGBA{A: 0xff}
	}
	bg, err = ParseColor(c.Background)
	if err != nil {
		bg = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return fg, bg
}

// GlyphRune returns the first rune of Glyph.
func (c Config) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	return r
}

// ParseColor reads "#rrggbb" (the leading '#' is optional) into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.Wrapf(ErrInvalidConfig, "color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidConfig, "color %q is not #rrggbb", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
