package network_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     network.Config
		wantErr bool
		field   string // substring the error message must name
	}{
		{"simulator defaults", network.Config{Population: 50, Degree: 4, Rewire: 0.1}, false, ""},
		{"smallest valid graph", network.Config{Population: 4, Degree: 2, Rewire: 0}, false, ""},
		{"complete graph", network.Config{Population: 5, Degree: 4, Rewire: 1}, false, ""},
		{"rewire boundary values", network.Config{Population: 10, Degree: 4, Rewire: 1}, false, ""},

		{"population too small", network.Config{Population: 3, Degree: 2, Rewire: 0}, true, "population"},
		{"zero population", network.Config{Population: 0, Degree: 2, Rewire: 0}, true, "population"},
		{"degree below minimum", network.Config{Population: 10, Degree: 0, Rewire: 0}, true, "degree"},
		{"odd degree", network.Config{Population: 10, Degree: 3, Rewire: 0}, true, "degree"},
		{"degree equals population", network.Config{Population: 6, Degree: 6, Rewire: 0}, true, "degree"},
		{"degree above population", network.Config{Population: 4, Degree: 6, Rewire: 0}, true, "degree"},
		{"negative rewire", network.Config{Population: 10, Degree: 4, Rewire: -0.1}, true, "rewire"},
		{"rewire above one", network.Config{Population: 10, Degree: 4, Rewire: 1.5}, true, "rewire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, network.ErrInvalidParameter) {
				t.Fatalf("Validate() = %v, want ErrInvalidParameter", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name the %q field", err, tt.field)
			}
		})
	}
}

func TestGraphAccessorBounds(t *testing.T) {
	g, err := network.Build(network.Config{Population: 6, Degree: 2, Rewire: 0}, testRand(1))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	for _, id := range []int{-1, 6, 99} {
		if got := g.Degree(id); got != 0 {
			t.Errorf("Degree(%d) = %d, want 0", id, got)
		}
		if got := g.Neighbors(id); got != nil {
			t.Errorf("Neighbors(%d) = %v, want nil", id, got)
		}
	}
	if g.HasEdge(-1, 0) {
		t.Error("HasEdge(-1, 0) = true, want false")
	}
	if g.HasEdge(6, 0) {
		t.Error("HasEdge(6, 0) = true, want false")
	}
}

func TestGraphEdges(t *testing.T) {
	g, err := network.Build(network.Config{Population: 6, Degree: 2, Rewire: 0}, testRand(1))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []network.Edge{{U: 0, V: 1}, {U: 0, V: 5}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}
