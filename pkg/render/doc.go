// Package render defines the boundary between the topic graph and the
// engines that draw it.
//
// # Overview
//
// A [Renderer] receives a fully styled [graph.Graph] (ordered node and
// edge descriptors plus layout hints) and writes an encoded image. Layout
// and rasterization are entirely the renderer's business, so the loader
// and builder never change when the drawing technology does.
//
// The Graphviz-backed implementation lives in the [nodelink] subpackage:
//
//	r := nodelink.NewRenderer()
//	err := render.WriteFile(ctx, r, g, render.FormatPNG, "roadmap.png")
//
// # Formats
//
//   - png: raster image (default)
//   - svg: vector image
//   - dot: the Graphviz source handed to the layout engine
//   - json: the node and edge descriptors themselves, no engine involved
//
// [FormatFromPath] picks a format from an output file extension.
//
// # Output Files
//
// [WriteFile] renders into memory first and only creates the output file
// once rendering has succeeded, so a failed run never leaves a truncated
// image behind.
//
// [nodelink]: github.com/matzehuels/roadmap/pkg/render/nodelink
package render
