// Package pkg holds the libraries behind the roadmap command.
//
// # Overview
//
// A roadmap file lists learning topics, each with a difficulty level and an
// optional prerequisite. The packages turn that file into a diagram:
//
//  1. [roadmap] - topic model and ordered JSON/YAML loading
//  2. [graph] - styled nodes and prerequisite edges built from a roadmap
//  3. [render] - output formats, with [render/nodelink] driving Graphviz
//  4. [pipeline] - load → build → render orchestration
//  5. [config] - optional TOML theme and output defaults
//  6. [cache] - rendered image cache keyed by graph content
//
// Supporting packages: [errors] for coded errors, [observability] for
// pipeline hooks, [buildinfo] for version stamping.
//
// # Data Flow
//
//	roadmap.json
//	     ↓  roadmap.Load
//	*roadmap.Roadmap (topics in file order)
//	     ↓  graph.Build
//	*graph.Graph (one node per topic, edges for resolvable prerequisites)
//	     ↓  render.Export via nodelink.Renderer
//	roadmap.png
//
// [roadmap]: github.com/matzehuels/roadmap/pkg/roadmap
// [graph]: github.com/matzehuels/roadmap/pkg/graph
// [render]: github.com/matzehuels/roadmap/pkg/render
// [render/nodelink]: github.com/matzehuels/roadmap/pkg/render/nodelink
// [pipeline]: github.com/matzehuels/roadmap/pkg/pipeline
// [config]: github.com/matzehuels/roadmap/pkg/config
// [cache]: github.com/matzehuels/roadmap/pkg/cache
// [errors]: github.com/matzehuels/roadmap/pkg/errors
// [observability]: github.com/matzehuels/roadmap/pkg/observability
// [buildinfo]: github.com/matzehuels/roadmap/pkg/buildinfo
package pkg
