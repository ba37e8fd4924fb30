package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/simulate"
)

type runJSON struct {
	RunID     string           `json:"run_id"`
	CreatedAt time.Time        `json:"created_at"`
	Options   simulate.Options `json:"options"`
	Networks  []runNetworkJSON `json:"networks"`
}

type runNetworkJSON struct {
	Name       string             `json:"name"`
	Rewire     float64            `json:"rewire"`
	BuildStats network.BuildStats `json:"build_stats"`
	Histogram  []depthCountJSON   `json:"histogram"`
	Cumulative []int              `json:"cumulative"`
	StepsToAll int                `json:"steps_to_all"`
	ReachedAll bool               `json:"reached_all"`
}

type depthCountJSON struct {
	Depth int `json:"depth"`
	Count int `json:"count"`
}

// WriteRunJSON encodes a whole comparison run as JSON and writes it to w.
// Every call stamps the output with a fresh run id and the current UTC
// time; the rest of the document is a pure function of the result.
func WriteRunJSON(res *simulate.Result, w io.Writer) error {
	out := runJSON{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Options:   res.Options,
		Networks:  make([]runNetworkJSON, len(res.Networks)),
	}

	for i, nw := range res.Networks {
		hist := make([]depthCountJSON, 0, len(nw.Reach.Depths()))
		for _, d := range nw.Reach.Depths() {
			hist = append(hist, depthCountJSON{Depth: d, Count: nw.Reach.Count(d)})
		}
		out.Networks[i] = runNetworkJSON{
			Name:       nw.Name,
			Rewire:     nw.Config.Rewire,
			BuildStats: nw.Graph.Stats(),
			Histogram:  hist,
			Cumulative: nw.Reach.Cumulative(),
			StepsToAll: nw.StepsToAll,
			ReachedAll: nw.ReachedAll,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportRunJSON writes a comparison run to a JSON file at path.
// This is a convenience wrapper around [WriteRunJSON] for file-based
// output.
func ExportRunJSON(res *simulate.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteRunJSON(res, f)
}
