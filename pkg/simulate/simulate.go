// Package simulate runs the three-network spread comparison.
//
// A single run builds three graphs over the same population and degree:
// a regular ring lattice (rewiring 0), a small-world network at the
// configured rewiring probability, and a random network (rewiring 1). The
// same message spread is traversed on each, producing the per-depth reach
// histogram and the cumulative reach curve that presentation layers chart
// side by side.
//
// The three networks are independent, so [Runner.Execute] builds and
// traverses them concurrently. Every network is seeded from the same
// [Options.Seed], which keeps the whole comparison reproducible: the
// regular network of a run equals a direct network.Build with rewiring 0
// and that seed.
//
// Create a [Runner] and execute a run:
//
//	runner := simulate.NewRunner(logger)
//	result, err := runner.Execute(ctx, simulate.Options{
//	    Population: 50,
//	    Degree:     4,
//	    Rewire:     0.1,
//	})
//
// Zero options fall back to the classic demonstration values: population
// 50, degree 4, rewiring 0.1, seed 42, start node 0.
package simulate

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/spread"
)

const (
	// DefaultPopulation is the default number of nodes per network.
	DefaultPopulation = 50

	// DefaultDegree is the default ring-lattice degree.
	DefaultDegree = 4

	// DefaultRewire is the default small-world rewiring probability,
	// used by the CLI flag; an explicit 0 stays 0.
	DefaultRewire = 0.1

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// Network names, in the order they appear in [Result.Networks].
const (
	NameRegular    = "regular"
	NameSmallWorld = "small-world"
	NameRandom     = "random"
)

// RewireFor returns the rewiring probability the named network uses in a
// comparison: 0 for the regular ring, 1 for the random network, and the
// configured probability for the small-world network. Unknown names fall
// back to the configured probability.
func RewireFor(name string, rewire float64) float64 {
	switch name {
	case NameRegular:
		return 0
	case NameRandom:
		return 1
	}
	return rewire
}

// Options contains all configuration for a comparison run.
// This struct supports JSON serialization for exported run summaries.
type Options struct {
	// Population and Degree are shared by all three networks.
	Population int `json:"population"`
	Degree     int `json:"degree"`

	// Rewire is the middle network's rewiring probability. The regular
	// and random networks always use 0 and 1.
	Rewire float64 `json:"rewire"`

	// Seed feeds every network's random source.
	Seed uint64 `json:"seed"`

	// Start is the node the message starts from.
	Start int `json:"start"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once. Only impossible zero values are defaulted: a rewiring
// probability of 0 is meaningful (a fully regular middle network) and is
// kept as given.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Population == 0 {
		o.Population = DefaultPopulation
	}
	if o.Degree == 0 {
		o.Degree = DefaultDegree
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	// The middle network carries the user's probability; validating its
	// config covers population, degree, and the probability range at once.
	if err := o.networkConfig(o.Rewire).Validate(); err != nil {
		return err
	}
	if o.Start < 0 || o.Start >= o.Population {
		return fmt.Errorf("start node %d outside population of %d", o.Start, o.Population)
	}

	o.validated = true
	return nil
}

func (o *Options) networkConfig(rewire float64) network.Config {
	return network.Config{Population: o.Population, Degree: o.Degree, Rewire: rewire}
}

// NetworkResult holds one network's graph and its traversal outcome.
type NetworkResult struct {
	// Name is one of [NameRegular], [NameSmallWorld], [NameRandom].
	Name string

	// Config is the configuration the network was built from; only the
	// Rewire field differs across the three networks of a run.
	Config network.Config

	// Graph is the built network.
	Graph *network.Graph

	// Reach is the spread histogram from the start node.
	Reach *spread.Reach

	// StepsToAll is the depth of the farthest reached node: the number of
	// steps until the spread stopped growing.
	StepsToAll int

	// ReachedAll reports whether the spread covered the whole population.
	ReachedAll bool

	BuildTime  time.Duration
	SpreadTime time.Duration
}

// Result contains the outputs of one comparison run.
type Result struct {
	// Options echoes the validated options the run used.
	Options Options

	// Networks holds the regular, small-world, and random results in
	// that order.
	Networks []NetworkResult

	// Stats contains timing information.
	Stats Stats
}

// Stats contains run execution statistics.
type Stats struct {
	Networks  int
	TotalTime time.Duration
}
