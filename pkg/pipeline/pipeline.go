// Package pipeline runs the complete load → build → render flow for a
// roadmap file.
//
// # Architecture
//
// The pipeline consists of three stages, run once, in order:
//
//  1. Load: read the topic file into an ordered [roadmap.Roadmap]
//  2. Build: turn the roadmap into a styled [graph.Graph]
//  3. Render: hand the graph to a [render.Renderer] (or reuse a cached
//     image of the same graph) and write the output file
//
// Each stage can be run on its own through the [Runner] methods, which is
// how the inspect command previews a build without rendering.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger) // no cache, Graphviz renderer
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "roadmap.json",
//	    Output: "roadmap.png",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.NodeCount, result.Output)
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/render"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// DefaultOutput is the output path used when none is given. An explicit
// non-PNG format swaps the extension, e.g. roadmap.svg.
const DefaultOutput = "roadmap.png"

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Input is the roadmap file (JSON, or YAML by extension).
	Input string

	// Output is the destination file. Defaults to [DefaultOutput].
	Output string

	// Format selects the encoding. Empty means inferred from the Output
	// extension, falling back to [render.DefaultFormat].
	Format render.Format

	// Theme overrides the built-in styling.
	Theme *graph.Theme

	// Detailed adds level and estimated time to node labels.
	Detailed bool

	// Strict turns repeated topic keys into an error instead of a warning.
	Strict bool

	// Logger receives progress and data warnings. Nil uses the runner's logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "input file is required")
	}
	if o.Output == "" {
		o.Output = DefaultOutput
		if o.Format != "" && o.Format != render.FormatPNG {
			o.Output = strings.TrimSuffix(DefaultOutput, filepath.Ext(DefaultOutput)) + "." + string(o.Format)
		}
	}
	if err := apperr.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if o.Format == "" {
		if f, ok := render.FormatFromPath(o.Output); ok {
			o.Format = f
		} else {
			o.Format = render.DefaultFormat
		}
	}
	if _, err := render.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return nil
}

func (o Options) buildOptions() graph.Options {
	return graph.Options{Theme: o.Theme, Detailed: o.Detailed}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Roadmap is the loaded topic set.
	Roadmap *roadmap.Roadmap

	// Graph is the graph handed to the renderer.
	Graph *graph.Graph

	// Output is the path that was written.
	Output string

	// Format is the encoding that was written.
	Format render.Format

	// Cached is true when the image was served from the artifact cache.
	Cached bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TopicCount   int
	NodeCount    int
	EdgeCount    int
	DroppedEdges int // prerequisites that named no topic
	Duplicates   int // topic keys collapsed into an earlier occurrence
	LoadTime     time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}
