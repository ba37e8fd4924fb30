// Package cli implements the smallworld command-line interface.
//
// This package provides commands for running the three-network spread
// comparison, exporting and rendering network topologies, and computing
// structural metrics. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - run: Simulate message spread across regular, small-world, and random networks
//   - graph: Build a single topology and write it as JSON, DOT, SVG, or PNG
//   - metrics: Compute path length, clustering, and degree statistics
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults can be placed in an optional TOML file at
// $XDG_CONFIG_HOME/smallworld/config.toml. Command-line flags override
// file values.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/buildinfo"
)

const (
	// appName is the application name used for directories and display.
	appName = "smallworld"

	// configFileName is the TOML file read from the config directory.
	configFileName = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose flag is handled here: it lowers the log level before any
// subcommand runs, and the logger is attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Smallworld compares how a message spreads across network topologies",
		Long: `Smallworld builds Watts-Strogatz networks over the same population and
simulates how a message spreads through them, comparing a regular ring
lattice, a small-world network, and a fully random network side by side.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.metricsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the config directory using XDG standard (~/.config/smallworld/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
