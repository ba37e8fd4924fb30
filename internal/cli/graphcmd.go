package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/export"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/render"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/simulate"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/spread"
)

// topologyAll selects all three topologies at once.
const topologyAll = "all"

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	simFlags
	topology string   // regular, small-world, random, or all
	output   string   // output file path (or base path for multiple outputs)
	formats  []string // output formats: json, dot, svg, png
	spread   bool     // color nodes by message arrival step
	showIDs  bool     // label nodes with their ids
}

// graphCommand creates the graph command: build a single network and write
// it out for inspection, as data (JSON, DOT) or as a rendered image.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build one network and write it as JSON, DOT, SVG, or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateTopology(opts.topology); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runGraph(cmd, &opts)
		},
	}

	opts.register(cmd)
	opts.registerStart(cmd)
	cmd.Flags().StringVarP(&opts.topology, "topology", "t", simulate.NameSmallWorld, "topology: regular, small-world, random, or all")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single topology/format) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.spread, "spread", false, "color nodes by message arrival step")
	cmd.Flags().BoolVar(&opts.showIDs, "ids", false, "label nodes with their ids")

	return cmd
}

// validTopologies is the set of accepted --topology values.
var validTopologies = map[string]bool{
	simulate.NameRegular:    true,
	simulate.NameSmallWorld: true,
	simulate.NameRandom:     true,
	topologyAll:             true,
}

// validateTopology checks that the topology is one of the known names.
func validateTopology(s string) error {
	if !validTopologies[s] {
		return fmt.Errorf("invalid topology: %s (must be 'regular', 'small-world', 'random', or 'all')", s)
	}
	return nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"json": true, "dot": true, "svg": true, "png": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'json', 'dot', 'svg', or 'png')", f)
		}
	}
	return nil
}

func (c *CLI) runGraph(cmd *cobra.Command, opts *graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	simOpts, err := opts.options(cmd, logger)
	if err != nil {
		return err
	}
	if err := simOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	topologies := []string{opts.topology}
	if opts.topology == topologyAll {
		topologies = []string{simulate.NameRegular, simulate.NameSmallWorld, simulate.NameRandom}
	}

	for _, topology := range topologies {
		if err := c.writeTopology(ctx, simOpts, topology, opts); err != nil {
			return err
		}
	}
	return nil
}

// writeTopology builds one network and writes every requested format.
func (c *CLI) writeTopology(ctx context.Context, simOpts simulate.Options, topology string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	cfg := network.Config{
		Population: simOpts.Population,
		Degree:     simOpts.Degree,
		Rewire:     simulate.RewireFor(topology, simOpts.Rewire),
	}
	g, err := network.Build(cfg, network.NewRand(simOpts.Seed))
	if err != nil {
		return fmt.Errorf("build %s network: %w", topology, err)
	}
	logger.Debug("built network", "topology", topology, "nodes", g.Order(), "edges", g.EdgeCount())

	var depths []int
	if opts.spread {
		depths, err = spreadDepths(g, simOpts.Start)
		if err != nil {
			return err
		}
	}

	printSuccess("Built %s network", topology)
	printStats(g.Order(), g.EdgeCount(), g.Stats().Rewired)

	for _, format := range opts.formats {
		path := outputPath(opts, topology, format)
		if err := writeFormat(g, depths, topology, format, path, opts.showIDs); err != nil {
			return fmt.Errorf("%s/%s: %w", topology, format, err)
		}
		printFile(path)
	}
	return nil
}

// spreadDepths replays the message spread and returns each node's arrival
// step, -1 for nodes the message never reached.
func spreadDepths(g *network.Graph, start int) ([]int, error) {
	stream, err := spread.NewStream(g, start)
	if err != nil {
		return nil, err
	}

	depths := make([]int, g.Order())
	for i := range depths {
		depths[i] = -1
	}
	for {
		snap, ok := stream.Next()
		if !ok {
			return depths, nil
		}
		depths[snap.Node] = snap.Depth
	}
}

// outputPath derives the file name for one topology/format pair.
// A single topology and format uses --output verbatim when set; every other
// combination derives base_topology.format names.
func outputPath(opts *graphOpts, topology, format string) string {
	single := opts.topology != topologyAll && len(opts.formats) == 1
	if single && opts.output != "" {
		return opts.output
	}

	base := opts.output
	if base == "" {
		base = "network"
	} else {
		// Strip a known format extension from the base path
		ext := filepath.Ext(base)
		if validFormats[strings.TrimPrefix(ext, ".")] {
			base = strings.TrimSuffix(base, ext)
		}
	}
	return fmt.Sprintf("%s_%s.%s", base, topology, format)
}

// writeFormat writes the graph in one format to path.
func writeFormat(g *network.Graph, depths []int, topology, format, path string, showIDs bool) error {
	if format == "json" {
		return export.ExportGraphJSON(g, path)
	}

	dot := render.ToDOT(g, render.Options{Label: topology, Depths: depths, ShowIDs: showIDs})
	switch format {
	case "dot":
		return os.WriteFile(path, []byte(dot), 0644)
	case "svg":
		data, err := render.RenderSVG(dot)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	case "png":
		data, err := render.RenderPNG(dot)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	}
	return fmt.Errorf("unknown format: %s", format)
}
