package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/export"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/simulate"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	simFlags
	noAnim   bool   // skip the animated spread
	jsonPath string // write the run summary to this file
}

// runCommand creates the run command, the default way to use the tool: it
// builds the regular, small-world, and random networks, spreads a message
// through each, and shows the animated spread, the reach curves, and the
// results table.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate message spread across the three networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSimulation(cmd, &opts)
		},
	}

	opts.register(cmd)
	opts.registerStart(cmd)
	cmd.Flags().BoolVar(&opts.noAnim, "no-anim", false, "skip the spread animation")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "write the run summary to a JSON file")

	return cmd
}

func (c *CLI) runSimulation(cmd *cobra.Command, opts *runOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	simOpts, err := opts.options(cmd, logger)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := simulate.NewRunner(logger).Execute(ctx, simOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Simulated %d networks", result.Stats.Networks))

	if shouldAnimate(opts.noAnim) {
		if err := runAnimation(result); err != nil {
			return err
		}
	}

	printSpreadChart(result.Networks)
	printResultsTable(result.Networks)

	for _, nw := range result.Networks {
		if !nw.ReachedAll {
			printWarning("the %s network reached %d of %d people", nw.Name, nw.Reach.Total(), nw.Graph.Order())
		}
	}

	if opts.jsonPath != "" {
		if err := export.ExportRunJSON(result, opts.jsonPath); err != nil {
			return err
		}
		printFile(opts.jsonPath)
	}

	printNewline()
	printNextStep("Inspect a topology", appName+" graph --topology small-world --format svg")
	return nil
}

// shouldAnimate reports whether the animated spread should run: only on a
// real terminal and only when not disabled by flag.
func shouldAnimate(noAnim bool) bool {
	if noAnim {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
