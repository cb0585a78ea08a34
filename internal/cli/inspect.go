package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/pipeline"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	config string
	strict bool
}

// inspectCommand creates the inspect command. It loads and builds a roadmap
// the same way run does, then prints what would be drawn instead of
// invoking Graphviz.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <json_file>",
		Short: "Summarize a roadmap without rendering it",
		Long: `Summarize a roadmap without rendering it.

Lists every topic in file order with its level, fill color and prerequisite,
marking prerequisites that name no topic (their arrows are skipped), and
reports repeated topic keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file overriding colors and node styling")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a topic is defined more than once")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, input string, opts inspectOpts) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	theme := cfg.Theme()
	pipeOpts := pipeline.Options{
		Input:  input,
		Theme:  &theme,
		Strict: opts.strict,
		Logger: loggerFromContext(ctx),
	}

	runner := c.newRunner(true)
	rm, err := runner.Load(ctx, pipeOpts)
	if err != nil {
		return err
	}
	g := runner.Build(ctx, rm, pipeOpts)

	printSummary(stdout(cmd), input, rm, g, theme.Colors.Fallback())
	return nil
}

// printSummary writes the inspect report for rm and the graph built from it.
func printSummary(w io.Writer, input string, rm *roadmap.Roadmap, g *graph.Graph, fallback string) {
	fmt.Fprintln(w, StyleTitle.Render("Roadmap")+" "+StyleValue.Render(input))
	printKeyValue(w, "topics", strconv.Itoa(len(g.Nodes)))
	printKeyValue(w, "edges", strconv.Itoa(len(g.Edges)))
	printKeyValue(w, "skipped", strconv.Itoa(len(rm.Dangling())))
	fmt.Fprintln(w)

	if rm.Len() == 0 {
		printInfo(w, "No topics; the image would be empty")
		return
	}

	unknown := 0
	for _, t := range rm.Topics {
		var fill string
		if n, ok := g.Node(t.Name); ok {
			fill = n.FillColor
		}
		printTopic(w, rm, t, fill)
		if !t.Level.Known() {
			unknown++
		}
	}
	fmt.Fprintln(w)

	for _, name := range rm.Duplicates {
		printWarning(w, "%q is defined more than once; the last definition wins", name)
	}
	if unknown > 0 {
		printDetail(w, "%s with an unrecognized level will be filled %s", plural(unknown, "topic"), fallback)
	}
	printStats(w, len(g.Nodes), len(g.Edges), len(rm.Dangling()), false)
	printNextStep(w, "Render it", appName+" run "+input)
}
