package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/pkg/config"
	"github.com/matzehuels/roadmap/pkg/pipeline"
	"github.com/matzehuels/roadmap/pkg/render"
)

// runUsage is printed when run is invoked without an input file.
var runUsage = fmt.Sprintf("Usage: %s run <json_file> [output_file.png]", appName)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	format   string // png (default), svg, dot, json; empty infers from output
	config   string // optional TOML settings file
	strict   bool   // fail on repeated topic keys
	detailed bool   // add level and estimated time to labels
	noCache  bool   // always invoke Graphviz
}

// runCommand creates the run command, which renders a roadmap file.
//
// Running without arguments prints the usage line and succeeds, so the
// command is safe to call bare from scripts that only want the hint.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run <json_file> [output_file.png]",
		Short: "Render a roadmap file to an image",
		Long: `Render a roadmap file to an image.

The input is a JSON object mapping topic names to {"level", "prerequisite"}.
Each topic becomes a box colored by level (beginner, intermediate, advanced);
each prerequisite that names another topic becomes an arrow. Files ending in
.yaml or .yml are read as YAML with the same shape.

The output defaults to roadmap.png. The format follows the output extension
(.png, .svg, .dot, .gv, .json) unless --format is given.`,
		Example: `  roadmap run golang.json
  roadmap run golang.json golang.svg
  roadmap run golang.json out.png --detailed --config theme.toml`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(stdout(cmd), runUsage)
				return nil
			}
			var output string
			if len(args) > 1 {
				output = args[1]
			}
			return c.runRun(cmd, args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg, dot, json")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file overriding colors and node styling")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a topic is defined more than once")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show level and estimated time in node labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render even if an identical image is cached")

	return cmd
}

func (c *CLI) runRun(cmd *cobra.Command, input, output string, opts runOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	pipeOpts, err := pipelineOptions(cfg, input, output, opts, cmd.Flags().Changed("detailed"))
	if err != nil {
		return err
	}
	pipeOpts.Logger = logger

	prog := newProgress(logger)
	result, err := c.execute(ctx, cmd, c.newRunner(opts.noCache), pipeOpts)
	if err != nil {
		return err
	}
	prog.done("Rendered " + result.Output)

	out := stdout(cmd)
	printSuccess(out, "Roadmap saved as %s", result.Output)
	printStats(out, result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.DroppedEdges, result.Cached)
	return nil
}

// execute runs the pipeline, showing a spinner unless debug logs would
// interleave with it.
func (c *CLI) execute(ctx context.Context, cmd *cobra.Command, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	if c.isDebug() {
		return runner.Execute(ctx, opts)
	}

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering "+opts.Input+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if spinner.Cancelled() {
		spinner.Stop()
		return nil, context.Canceled
	}
	spinner.Stop()
	return result, err
}

// pipelineOptions merges flags over the config file. Format precedence is
// --format, then the output extension, then [output].format.
func pipelineOptions(cfg *config.Config, input, output string, opts runOpts, detailedSet bool) (pipeline.Options, error) {
	theme := cfg.Theme()
	po := pipeline.Options{
		Input:    input,
		Output:   output,
		Theme:    &theme,
		Detailed: opts.detailed,
		Strict:   opts.strict,
	}

	format := opts.format
	if cfg != nil {
		if _, ok := render.FormatFromPath(output); format == "" && !ok {
			format = cfg.Output.Format
		}
		if !detailedSet {
			po.Detailed = cfg.Output.Detailed
		}
	}
	if format != "" {
		f, err := render.ParseFormat(format)
		if err != nil {
			return po, err
		}
		po.Format = f
	}
	return po, nil
}
