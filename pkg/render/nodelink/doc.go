// Package nodelink draws topic graphs as node-link diagrams using Graphviz.
//
// # Architecture
//
// Graphviz handles both layout and rasterization in a single step, so the
// package only has to translate the topic graph into DOT:
//
//	graph.Graph → ToDOT() → DOT → Graphviz (dot engine) → PNG / SVG
//
// The DOT text is also available as an output format of its own, which makes
// it easy to tweak a roadmap by hand in any Graphviz tool.
//
// # Usage
//
//	r := nodelink.NewRenderer()
//	var buf bytes.Buffer
//	err := r.Render(ctx, g, render.FormatPNG, &buf)
//
// Or, working with DOT directly:
//
//	dot := nodelink.ToDOT(g)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Engine
//
// Graphviz runs in-process through github.com/goccy/go-graphviz (a
// WebAssembly build), so no dot binary has to be installed on the host.
// Node and edge attributes come straight from the graph descriptors; the
// graph-level rankdir and splines come from [graph.LayoutAttrs].
package nodelink
