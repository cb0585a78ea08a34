// Package graph builds the renderable topic graph from a loaded roadmap.
//
// The graph is an intermediate, renderer-neutral model: an ordered list of
// styled node descriptors and an ordered list of directed edge descriptors.
// Renderers in pkg/render consume it without knowing anything about
// roadmaps.
//
// # Building
//
// [Build] makes two passes over the roadmap. The first creates one node per
// topic, filled according to the topic's level. The second adds an edge
// prerequisite → topic for every topic whose prerequisite names an existing
// node. Two passes are needed because a prerequisite may be declared after
// the topic that depends on it.
//
//	rm, _ := roadmap.Load("roadmap.json")
//	g := graph.Build(rm, graph.Options{})
//	fmt.Println(len(g.Nodes), len(g.Edges))
//
// Prerequisites that name no topic are dropped without error, leaving the
// dependent topic without an incoming edge. No cycle detection or
// topological ordering is performed; the layout engine draws whatever
// directed graph it receives.
//
// # Styling
//
// A [StylePolicy] maps levels to fill colors:
//
//	beginner     → lightyellow
//	intermediate → lightblue
//	advanced     → lightpink
//	(other)      → white
//
// The remaining visual attributes (box shape, rounded+filled style, font
// size 12, 2.5×0.8 node size, 0.7 arrow size, top-to-bottom ranks with
// orthogonal edges) live in a [Theme]. [DefaultTheme] is never mutated;
// configuration builds new themes instead.
//
// # Serialization
//
// [WriteJSON] emits the node and edge descriptors exactly as a renderer
// receives them, which is handy for debugging styling rules.
package graph
