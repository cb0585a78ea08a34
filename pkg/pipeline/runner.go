package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roadmap/pkg/cache"
	apperr "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/observability"
	"github.com/matzehuels/roadmap/pkg/render"
	"github.com/matzehuels/roadmap/pkg/render/nodelink"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Runner executes pipeline stages against a renderer and an artifact cache.
//
// The Runner holds no per-run state; results are returned, not stored.
type Runner struct {
	Cache    cache.Cache
	Renderer render.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil renderer
// means the Graphviz renderer, and a nil logger means log.Default().
func NewRunner(c cache.Cache, r render.Renderer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if r == nil {
		r = nodelink.NewRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Renderer: r, Logger: logger}
}

// Execute runs the complete load → build → render pipeline.
// Either the output file is fully written or an error is returned and
// nothing is written.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Output: opts.Output, Format: opts.Format}

	// Stage 1: Load
	loadStart := time.Now()
	rm, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Roadmap = rm
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.TopicCount = rm.Len()
	result.Stats.Duplicates = len(rm.Duplicates)

	// Stage 2: Build
	buildStart := time.Now()
	g := r.Build(ctx, rm, opts)
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.EdgeCount = len(g.Edges)
	result.Stats.DroppedEdges = len(rm.Dangling())

	// Stage 3: Render
	renderStart := time.Now()
	cached, err := r.Render(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Cached = cached
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("pipeline complete",
		"topics", result.Stats.TopicCount,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"output", result.Output)

	return result, nil
}

// Load reads the roadmap named by opts.Input. Repeated topic keys are
// logged, or rejected when opts.Strict is set.
func (r *Runner) Load(ctx context.Context, opts Options) (*roadmap.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Input == "" {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "input file is required")
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	rm, err := roadmap.Load(opts.Input)
	if err == nil && opts.Strict && len(rm.Duplicates) > 0 {
		err = apperr.New(apperr.ErrCodeDuplicateTopic, "%s: repeated topic keys: %v", opts.Input, rm.Duplicates)
	}
	hooks.OnLoadComplete(ctx, opts.Input, rm.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	for _, name := range rm.Duplicates {
		opts.Logger.Warn("topic defined more than once, keeping last definition", "topic", name)
	}
	opts.Logger.Debug("loaded roadmap", "path", opts.Input, "topics", rm.Len())
	return rm, nil
}

// Build converts a roadmap into the renderer-facing graph. Dropped
// prerequisites and unrecognized levels are reported at debug level only.
func (r *Runner) Build(ctx context.Context, rm *roadmap.Roadmap, opts Options) *graph.Graph {
	r.applyLogger(&opts)

	start := time.Now()
	g := graph.Build(rm, opts.buildOptions())
	dangling := rm.Dangling()

	observability.Pipeline().OnBuildComplete(ctx, len(g.Nodes), len(g.Edges), len(dangling), time.Since(start))

	for _, t := range dangling {
		opts.Logger.Debug("prerequisite not defined, edge skipped", "topic", t.Name, "prerequisite", t.Prerequisite)
	}
	for _, t := range rm.Topics {
		if !t.Level.Known() {
			opts.Logger.Debug("unrecognized level, using default color", "topic", t.Name, "level", fmt.Sprintf("%q", t.Level))
		}
	}
	opts.Logger.Debug("built graph", "nodes", len(g.Nodes), "edges", len(g.Edges))
	return g
}

// Render writes g to opts.Output in opts.Format and reports whether the
// bytes came from the cache. Image formats are cached by graph content;
// dot and json are cheap to produce and always regenerated.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts Options) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := apperr.ValidateOutputPath(opts.Output); err != nil {
		return false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(opts.Format))
	start := time.Now()

	data, cached, err := r.artifact(ctx, g, opts)
	if err == nil {
		err = render.WriteOutput(opts.Output, data)
	}
	hooks.OnRenderComplete(ctx, string(opts.Format), opts.Output, time.Since(start), err)
	if err != nil {
		return false, err
	}

	opts.Logger.Debug("rendered", "format", opts.Format, "output", opts.Output, "cached", cached, "duration", time.Since(start))
	return cached, nil
}

// artifact returns the encoded output, consulting the cache for image
// formats. Cache failures are logged and never fail the render.
func (r *Runner) artifact(ctx context.Context, g *graph.Graph, opts Options) ([]byte, bool, error) {
	if opts.Format != render.FormatPNG && opts.Format != render.FormatSVG {
		data, err := render.Export(ctx, r.Renderer, g, opts.Format)
		return data, false, err
	}

	source, err := graph.Marshal(g)
	if err != nil {
		return nil, false, apperr.Wrap(apperr.ErrCodeInternal, err, "encode graph")
	}
	key := cache.ArtifactKey(source, string(opts.Format))

	if data, ok, err := r.Cache.Get(ctx, key); err != nil {
		opts.Logger.Debug("cache read failed", "error", err)
	} else if ok {
		return data, true, nil
	}

	data, err := render.Export(ctx, r.Renderer, g, opts.Format)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		opts.Logger.Debug("cache write failed", "error", err)
	}
	return data, false, nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
