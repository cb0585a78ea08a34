package graph

import (
	"maps"

	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Default visual attributes.
const (
	DefaultFillColor = "white"

	DefaultShape     = "box"
	DefaultNodeStyle = "rounded,filled"
	DefaultFontSize  = 12.0
	DefaultWidth     = 2.5
	DefaultHeight    = 0.8
	DefaultArrowSize = 0.7
	DefaultRankDir   = "TB"
	DefaultSplines   = "ortho"
)

var defaultColors = map[roadmap.Level]string{
	roadmap.Beginner:     "lightyellow",
	roadmap.Intermediate: "lightblue",
	roadmap.Advanced:     "lightpink",
}

// StylePolicy maps topic levels to fill colors. Values are immutable once
// constructed; the zero value colors every level with [DefaultFillColor].
type StylePolicy struct {
	colors   map[roadmap.Level]string
	fallback string
}

// DefaultStylePolicy returns the built-in level colors.
func DefaultStylePolicy() StylePolicy {
	return StylePolicy{colors: defaultColors, fallback: DefaultFillColor}
}

// NewStylePolicy creates a policy from explicit colors. Levels missing from
// colors get fallback; an empty fallback means [DefaultFillColor].
func NewStylePolicy(colors map[roadmap.Level]string, fallback string) StylePolicy {
	if fallback == "" {
		fallback = DefaultFillColor
	}
	return StylePolicy{colors: maps.Clone(colors), fallback: fallback}
}

// Color returns the fill color for level.
func (p StylePolicy) Color(level roadmap.Level) string {
	if c, ok := p.colors[level]; ok && c != "" {
		return c
	}
	if p.fallback != "" {
		return p.fallback
	}
	return DefaultFillColor
}

// Fallback returns the color used for unrecognized levels.
func (p StylePolicy) Fallback() string {
	if p.fallback == "" {
		return DefaultFillColor
	}
	return p.fallback
}

// NodeAttrs are the visual attributes shared by every node.
type NodeAttrs struct {
	Shape    string  `json:"shape" toml:"shape"`
	Style    string  `json:"style" toml:"style"`
	FontSize float64 `json:"fontsize" toml:"fontsize"`
	Width    float64 `json:"width" toml:"width"`
	Height   float64 `json:"height" toml:"height"`
}

// EdgeAttrs are the visual attributes shared by every edge.
type EdgeAttrs struct {
	ArrowSize float64 `json:"arrowsize" toml:"arrowsize"`
}

// LayoutAttrs are graph-level hints for the layout engine.
type LayoutAttrs struct {
	RankDir string `json:"rankdir" toml:"rankdir"`
	Splines string `json:"splines" toml:"splines"`
}

// Theme bundles everything that decides how a roadmap looks.
type Theme struct {
	Colors StylePolicy
	Node   NodeAttrs
	Edge   EdgeAttrs
	Layout LayoutAttrs
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: DefaultStylePolicy(),
		Node: NodeAttrs{
			Shape:    DefaultShape,
			Style:    DefaultNodeStyle,
			FontSize: DefaultFontSize,
			Width:    DefaultWidth,
			Height:   DefaultHeight,
		},
		Edge:   EdgeAttrs{ArrowSize: DefaultArrowSize},
		Layout: LayoutAttrs{RankDir: DefaultRankDir, Splines: DefaultSplines},
	}
}
