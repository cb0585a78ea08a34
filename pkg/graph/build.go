package graph

import (
	"strings"

	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Options configures graph construction.
type Options struct {
	// Theme overrides the built-in styling. Nil means [DefaultTheme].
	Theme *Theme

	// Detailed adds the level and estimated time below each topic name.
	Detailed bool
}

func (o Options) theme() Theme {
	if o.Theme != nil {
		return *o.Theme
	}
	return DefaultTheme()
}

// Build converts a roadmap into a styled topic graph.
//
// Nodes are created first, one per topic, so that the second pass can
// resolve prerequisites declared anywhere in the roadmap. Edges whose
// prerequisite names no node are skipped. Build never fails.
func Build(rm *roadmap.Roadmap, opts Options) *Graph {
	theme := opts.theme()
	g := &Graph{
		Layout: theme.Layout,
		index:  make(map[string]int, rm.Len()),
	}
	if rm == nil {
		return g
	}

	for _, t := range rm.Topics {
		n := Node{
			Name:      t.Name,
			Level:     t.Level,
			NodeAttrs: theme.Node,
			FillColor: theme.Colors.Color(t.Level),
		}
		if opts.Detailed {
			n.Label = detailedLabel(t)
		}
		g.addNode(n)
	}

	for _, t := range rm.Topics {
		if !t.HasPrerequisite() || !g.HasNode(t.Prerequisite) {
			continue
		}
		g.Edges = append(g.Edges, Edge{
			From:      t.Prerequisite,
			To:        t.Name,
			EdgeAttrs: theme.Edge,
		})
	}
	return g
}

func detailedLabel(t roadmap.Topic) string {
	level := string(t.Level)
	if level == "" {
		level = "unrated"
	}
	parts := []string{level}
	if t.EstTime != "" {
		parts = append(parts, t.EstTime)
	}
	return t.Name + "\n" + strings.Join(parts, " · ")
}
