package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Snapshot output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Options holds the dial configuration. Direction values <= -1 flip the
// vertical sense of the angle measurement; anything else leaves it as is.
type Options struct {
	Direction float64 `json:"direction"`

	// Terminal container, in cells
	Width  int `json:"width"`
	Height int `json:"height"`

	// Window and snapshot container side, in pixels
	Size int `json:"size"`

	// Snapshot output
	Format string `json:"format"`
	Output string `json:"output"`
}

// Flags holds CLI flag values that override options file settings.
type Flags struct {
	Direction    float64
	DirectionSet bool
	Width        int
	Height       int
	Size         int
	Format       string
	Output       string
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Size:   DefaultSize,
		Format: FormatSVG,
	}
}

// Flipped reports whether the vertical sense of measurement is inverted.
func (o Options) Flipped() bool {
	return o.Direction <= -1
}

// Load reads a JSON options file on top of the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	opts := Default()
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return opts, nil
}

// Resolve applies CLI flags and fills empty fields with defaults.
// Flags take priority when non-zero/non-empty.
func (o *Options) Resolve(flags Flags) {
	if flags.DirectionSet {
		o.Direction = flags.Direction
	}
	if flags.Width > 0 {
		o.Width = flags.Width
	}
	if flags.Height > 0 {
		o.Height = flags.Height
	}
	if flags.Size > 0 {
		o.Size = flags.Size
	}
	if flags.Format != "" {
		o.Format = flags.Format
	}
	if flags.Output != "" {
		o.Output = flags.Output
	}

	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	o.Format = strings.ToLower(o.Format)
	if o.Format == "" {
		o.Format = FormatSVG
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if math.IsNaN(o.Direction) {
		return fmt.Errorf("config: direction is NaN")
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("config: container %dx%d has a negative side", o.Width, o.Height)
	}
	if o.Size < 0 {
		return fmt.Errorf("config: size %d is negative", o.Size)
	}
	switch o.Format {
	case "", FormatSVG, FormatHTML, FormatPNG, FormatWebP:
	default:
		return fmt.Errorf("config: unknown format %q", o.Format)
	}
	return nil
}
