package graph

import "github.com/matzehuels/roadmap/pkg/roadmap"

// Node is a styled topic, ready to hand to a renderer.
type Node struct {
	Name  string        `json:"name"`
	Label string        `json:"label,omitempty"` // Display label (defaults to Name)
	Level roadmap.Level `json:"level"`
	NodeAttrs
	FillColor string `json:"fillcolor"`
}

// DisplayLabel returns the label if set, otherwise the name.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.Name
}

// Edge points from a prerequisite to the topic that depends on it.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	EdgeAttrs
}

// Graph is the renderer-facing topic graph. Nodes and Edges are in creation
// order; every edge endpoint names a node in the same graph.
type Graph struct {
	Layout LayoutAttrs `json:"layout"`
	Nodes  []Node      `json:"nodes"`
	Edges  []Edge      `json:"edges"`

	index map[string]int
}

// Node returns the node with the given name.
func (g *Graph) Node(name string) (Node, bool) {
	i, ok := g.index[name]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// HasNode reports whether a node with the given name exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// addNode inserts n, or replaces the node of the same name in place.
func (g *Graph) addNode(n Node) {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	if i, ok := g.index[n.Name]; ok {
		g.Nodes[i] = n
		return
	}
	g.index[n.Name] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
}
