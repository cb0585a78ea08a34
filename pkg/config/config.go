// Package config loads optional TOML settings that restyle a roadmap.
//
// Every key is optional; anything left out keeps the built-in value from
// [graph.DefaultTheme]. A complete file looks like this:
//
//	[graph]
//	rankdir = "TB"
//	splines = "ortho"
//
//	[node]
//	shape = "box"
//	style = "rounded,filled"
//	fontsize = 12
//	width = 2.5
//	height = 0.8
//
//	[edge]
//	arrowsize = 0.7
//
//	[colors]
//	beginner = "lightyellow"
//	intermediate = "lightblue"
//	advanced = "lightpink"
//	default = "white"
//
//	[output]
//	format = "png"
//	detailed = false
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/render"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Config is the decoded settings file.
type Config struct {
	Graph  graph.LayoutAttrs `toml:"graph"`
	Node   graph.NodeAttrs   `toml:"node"`
	Edge   graph.EdgeAttrs   `toml:"edge"`
	Colors Colors            `toml:"colors"`
	Output Output            `toml:"output"`
}

// Colors overrides level fill colors.
type Colors struct {
	Beginner     string `toml:"beginner"`
	Intermediate string `toml:"intermediate"`
	Advanced     string `toml:"advanced"`
	Default      string `toml:"default"`
}

// Output holds defaults for CLI output flags.
type Output struct {
	Format   string `toml:"format"`
	Detailed bool   `toml:"detailed"`
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := checkUndecoded(meta); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode parses TOML settings from a string.
func Decode(data string) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := checkUndecoded(meta); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func checkUndecoded(meta toml.MetaData) error {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return apperr.New(apperr.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
}

// Validate rejects negative sizes and unknown output formats.
func (c *Config) Validate() error {
	sizes := []struct {
		key string
		v   float64
	}{
		{"node.fontsize", c.Node.FontSize},
		{"node.width", c.Node.Width},
		{"node.height", c.Node.Height},
		{"edge.arrowsize", c.Edge.ArrowSize},
	}
	for _, s := range sizes {
		if s.v < 0 {
			return apperr.New(apperr.ErrCodeInvalidConfig, "%s must not be negative", s.key)
		}
	}
	if c.Output.Format != "" {
		if _, err := render.ParseFormat(c.Output.Format); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "output.format")
		}
	}
	return nil
}

// Theme merges the config over [graph.DefaultTheme]. A nil config yields
// the default theme.
func (c *Config) Theme() graph.Theme {
	theme := graph.DefaultTheme()
	if c == nil {
		return theme
	}

	theme.Layout.RankDir = pick(c.Graph.RankDir, theme.Layout.RankDir)
	theme.Layout.Splines = pick(c.Graph.Splines, theme.Layout.Splines)

	theme.Node.Shape = pick(c.Node.Shape, theme.Node.Shape)
	theme.Node.Style = pick(c.Node.Style, theme.Node.Style)
	theme.Node.FontSize = pick(c.Node.FontSize, theme.Node.FontSize)
	theme.Node.Width = pick(c.Node.Width, theme.Node.Width)
	theme.Node.Height = pick(c.Node.Height, theme.Node.Height)

	theme.Edge.ArrowSize = pick(c.Edge.ArrowSize, theme.Edge.ArrowSize)

	if c.Colors != (Colors{}) {
		defaults := graph.DefaultStylePolicy()
		theme.Colors = graph.NewStylePolicy(map[roadmap.Level]string{
			roadmap.Beginner:     pick(c.Colors.Beginner, defaults.Color(roadmap.Beginner)),
			roadmap.Intermediate: pick(c.Colors.Intermediate, defaults.Color(roadmap.Intermediate)),
			roadmap.Advanced:     pick(c.Colors.Advanced, defaults.Color(roadmap.Advanced)),
		}, pick(c.Colors.Default, defaults.Fallback()))
	}
	return theme
}

func pick[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
