package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
)

type graphJSON struct {
	Config *network.Config `json:"config,omitempty"`
	Nodes  int             `json:"nodes"`
	Edges  []network.Edge  `json:"edges"`
}

// WriteGraphJSON encodes a built network as JSON and writes it to w.
// The output includes the construction parameters, the node count, and
// every edge. This format can be re-imported with [ReadGraphJSON].
func WriteGraphJSON(g *network.Graph, w io.Writer) error {
	cfg := g.Config()
	out := graphJSON{
		Config: &cfg,
		Nodes:  g.Order(),
		Edges:  g.Edges(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportGraphJSON writes a built network to a JSON file at path.
// This is a convenience wrapper around [WriteGraphJSON] for file-based
// output.
func ExportGraphJSON(g *network.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraphJSON(g, f)
}
