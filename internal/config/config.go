// Package config loads the optional HCL configuration file.
//
// A file looks like:
//
//	font   = "assets/fonts/FiraMono-Medium.ttf"
//	tracks = "explicit"
//
//	theme {
//	  column_width = 16
//	  cell_color   = colors.dark_gray
//	  align_color  = "#ff1159"
//	}
//
// Every setting is optional. Color attributes take "#RGB" or "#RRGGBB"
// strings; the colors object names the stock palette.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/grindlemire/layout-showcase/internal/showcase"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

// DefaultFontPath is the font loaded when none is configured.
const DefaultFontPath = "assets/fonts/FiraMono-Medium.ttf"

// ErrInvalidConfig is returned for files that parse but hold bad values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved program configuration.
type Config struct {
	Font   string
	Tracks showcase.Tracks
	Theme  showcase.Theme
}

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{
		Font:   DefaultFontPath,
		Tracks: showcase.TracksRepeated,
		Theme:  showcase.DefaultTheme(),
	}
}

type file struct {
	Font   *string     `hcl:"font,optional"`
	Tracks *string     `hcl:"tracks,optional"`
	Theme  *themeBlock `hcl:"theme,block"`
}

type themeBlock struct {
	ColumnWidth     *int    `hcl:"column_width,optional"`
	RowHeight       *int    `hcl:"row_height,optional"`
	Gap             *int    `hcl:"gap,optional"`
	Padding         *int    `hcl:"padding,optional"`
	AlignColor      *string `hcl:"align_color,optional"`
	JustifyColor    *string `hcl:"justify_color,optional"`
	CellColor       *string `hcl:"cell_color,optional"`
	BackgroundColor *string `hcl:"background_color,optional"`
}

// Load reads and decodes the config file at path on top of Default.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, evalContext(), &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	cfg := Default()
	if err := raw.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// evalContext exposes the stock palette to expressions as colors.<name>.
func evalContext() *hcl.EvalContext {
	palette := map[string]tui.Color{
		"black":     tui.Black,
		"white":     tui.White,
		"gray":      tui.Gray,
		"dark_gray": tui.DarkGray,
		"align":     showcase.DefaultTheme().AlignColor,
		"justify":   showcase.DefaultTheme().JustifyColor,
	}
	colors := make(map[string]cty.Value, len(palette))
	for name, c := range palette {
		colors[name] = cty.StringVal(c.String())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"colors": cty.ObjectVal(colors),
		},
	}
}

func (f *file) apply(cfg *Config) error {
	if f.Font != nil {
		if *f.Font == "" {
			return fmt.Errorf("%w: font must not be empty", ErrInvalidConfig)
		}
		cfg.Font = *f.Font
	}
	if f.Tracks != nil {
		tracks, err := showcase.ParseTracks(*f.Tracks)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cfg.Tracks = tracks
	}
	if f.Theme != nil {
		return f.Theme.apply(&cfg.Theme)
	}
	return nil
}

func (b *themeBlock) apply(t *showcase.Theme) error {
	ints := []struct {
		name string
		src  *int
		dst  *int
		min  int
	}{
		{"column_width", b.ColumnWidth, &t.ColumnWidth, 1},
		// Two label lines must fit in a row.
		{"row_height", b.RowHeight, &t.RowHeight, 2},
		{"gap", b.Gap, &t.Gap, 0},
		{"padding", b.Padding, &t.Padding, 0},
	}
	for _, v := range ints {
		if v.src == nil {
			continue
		}
		if *v.src < v.min {
			return fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalidConfig, v.name, v.min, *v.src)
		}
		*v.dst = *v.src
	}

	colors := []struct {
		name string
		src  *string
		dst  *tui.Color
	}{
		{"align_color", b.AlignColor, &t.AlignColor},
		{"justify_color", b.JustifyColor, &t.JustifyColor},
		{"cell_color", b.CellColor, &t.CellColor},
		{"background_color", b.BackgroundColor, &t.BackgroundColor},
	}
	for _, v := range colors {
		if v.src == nil {
			continue
		}
		c, err := tui.HexColor(*v.src)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, v.name, err)
		}
		*v.dst = c
	}
	return nil
}
