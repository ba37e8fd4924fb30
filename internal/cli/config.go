package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/simulate"
)

// fileConfig mirrors the optional TOML config file. Zero values mean the
// key was not set.
type fileConfig struct {
	Population int     `toml:"population"`
	Degree     int     `toml:"degree"`
	Rewire     float64 `toml:"rewire"`
	Seed       uint64  `toml:"seed"`
	Start      int     `toml:"start"`
}

// loadConfig reads the config file from the XDG config directory. A missing
// file yields a zero config and no error.
func loadConfig() (fileConfig, error) {
	dir, err := configDir()
	if err != nil {
		return fileConfig{}, nil
	}
	return loadConfigFile(filepath.Join(dir, configFileName))
}

func loadConfigFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig fills options from the config file wherever the matching flag
// was not set on the command line. Flags win over the file; the file wins
// over built-in defaults.
func applyConfig(opts *simulate.Options, cfg fileConfig, changed func(string) bool) {
	if cfg.Population != 0 && !changed("population") {
		opts.Population = cfg.Population
	}
	if cfg.Degree != 0 && !changed("degree") {
		opts.Degree = cfg.Degree
	}
	if cfg.Rewire != 0 && !changed("rewire") {
		opts.Rewire = cfg.Rewire
	}
	if cfg.Seed != 0 && !changed("seed") {
		opts.Seed = cfg.Seed
	}
	if cfg.Start != 0 && !changed("start") {
		opts.Start = cfg.Start
	}
}

// simFlags holds the network parameters shared by the run, graph, and
// metrics commands.
type simFlags struct {
	population int
	degree     int
	rewire     float64
	seed       uint64
	start      int
}

// register adds the shared network parameter flags to cmd.
func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.population, "population", "n", simulate.DefaultPopulation, "number of people in each network")
	cmd.Flags().IntVarP(&f.degree, "degree", "k", simulate.DefaultDegree, "how many neighbors each person starts with (even)")
	cmd.Flags().Float64VarP(&f.rewire, "rewire", "p", simulate.DefaultRewire, "small-world rewiring probability")
	cmd.Flags().Uint64Var(&f.seed, "seed", simulate.DefaultSeed, "random seed for reproducible runs")
}

// registerStart adds the start-node flag for commands that spread a message.
func (f *simFlags) registerStart(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.start, "start", 0, "node the message starts from")
}

// options builds simulate options from the flags and the config file.
func (f *simFlags) options(cmd *cobra.Command, logger *log.Logger) (simulate.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return simulate.Options{}, err
	}

	opts := simulate.Options{
		Population: f.population,
		Degree:     f.degree,
		Rewire:     f.rewire,
		Seed:       f.seed,
		Start:      f.start,
		Logger:     logger,
	}
	applyConfig(&opts, cfg, cmd.Flags().Changed)
	return opts, nil
}
