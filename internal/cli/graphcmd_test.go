package cli

import (
	"slices"
	"testing"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
)

func TestValidateTopology(t *testing.T) {
	for _, topology := range []string{"regular", "small-world", "random", "all"} {
		if err := validateTopology(topology); err != nil {
			t.Errorf("validateTopology(%q) error: %v", topology, err)
		}
	}

	if err := validateTopology("mesh"); err == nil {
		t.Error("validateTopology(\"mesh\") should error")
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); !slices.Equal(got, []string{"svg"}) {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	if got := parseFormats("json,png"); !slices.Equal(got, []string{"json", "png"}) {
		t.Errorf("parseFormats(\"json,png\") = %v", got)
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"json", "dot", "svg", "png"}); err != nil {
		t.Errorf("validateFormats() error on valid formats: %v", err)
	}
	if err := validateFormats([]string{"svg", "pdf"}); err == nil {
		t.Error("validateFormats() should reject pdf")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		opts     graphOpts
		topology string
		format   string
		want     string
	}{
		{
			name:     "single topology and format honors output",
			opts:     graphOpts{topology: "small-world", formats: []string{"svg"}, output: "mygraph.svg"},
			topology: "small-world",
			format:   "svg",
			want:     "mygraph.svg",
		},
		{
			name:     "single without output derives name",
			opts:     graphOpts{topology: "regular", formats: []string{"dot"}},
			topology: "regular",
			format:   "dot",
			want:     "network_regular.dot",
		},
		{
			name:     "all topologies derive per-topology names",
			opts:     graphOpts{topology: "all", formats: []string{"svg"}},
			topology: "random",
			format:   "svg",
			want:     "network_random.svg",
		},
		{
			name:     "multiple formats strip the extension from output",
			opts:     graphOpts{topology: "small-world", formats: []string{"svg", "json"}, output: "out.svg"},
			topology: "small-world",
			format:   "json",
			want:     "out_small-world.json",
		},
		{
			name:     "base path without extension is kept",
			opts:     graphOpts{topology: "all", formats: []string{"png"}, output: "renders/base"},
			topology: "regular",
			format:   "png",
			want:     "renders/base_regular.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(&tt.opts, tt.topology, tt.format); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpreadDepths(t *testing.T) {
	g, err := network.Build(network.Config{Population: 8, Degree: 2, Rewire: 0}, network.NewRand(1))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	depths, err := spreadDepths(g, 0)
	if err != nil {
		t.Fatalf("spreadDepths() error: %v", err)
	}

	// Depths around the ring rise to the far side and fall back
	want := []int{0, 1, 2, 3, 4, 3, 2, 1}
	if !slices.Equal(depths, want) {
		t.Errorf("spreadDepths() = %v, want %v", depths, want)
	}
}
