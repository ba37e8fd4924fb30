package render

import (
	"bytes"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette shared with the terminal styles: dark background, dim edges,
// gray unreached nodes, blue-to-navy gradient for reached ones.
const (
	colorBackground = "#0e1117"
	colorEdge       = "#1c2028"
	colorUnreached  = "#555555"
	colorReached    = "#00bfff"
	colorDeep       = "#001f3f"
)

var (
	gradStart, _ = colorful.Hex(colorReached)
	gradEnd, _   = colorful.Hex(colorDeep)
)

// Graph is the read access rendering needs. *network.Graph and
// export.Graph both satisfy it.
type Graph interface {
	// Order returns the number of nodes.
	Order() int

	// Neighbors returns the adjacent node ids of id in ascending order.
	Neighbors(id int) []int
}

// Options configures diagram generation.
type Options struct {
	// Label titles the diagram. Empty means no title.
	Label string

	// Depths colors node i by Depths[i], the number of steps the message
	// took to arrive there. Negative entries (and nodes past the end of
	// the slice) are drawn as unreached. Nil disables depth coloring and
	// every node keeps the unreached color.
	Depths []int

	// ShowIDs labels each node with its id instead of drawing bare dots.
	ShowIDs bool
}

// ToDOT converts a graph to Graphviz DOT in a circular layout. The
// resulting string can be rendered with [RenderSVG] or [RenderPNG], or
// written out for external tooling.
func ToDOT(g Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=\"circo\";\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", colorBackground)
	if opts.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Label)
		buf.WriteString("  labelloc=\"t\";\n")
		buf.WriteString("  fontcolor=\"white\";\n")
	}
	if opts.ShowIDs {
		buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fontcolor=white, width=0.3, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=circle, style=filled, label=\"\", width=0.15, fixedsize=true];\n")
	}
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=0.6];\n", colorEdge)
	buf.WriteString("\n")

	max := maxDepth(opts.Depths)
	for id := range g.Order() {
		fmt.Fprintf(&buf, "  %d [fillcolor=%q];\n", id, fillColor(opts.Depths, id, max))
	}

	buf.WriteString("\n")
	for u := range g.Order() {
		for _, v := range g.Neighbors(u) {
			if v > u {
				fmt.Fprintf(&buf, "  %d -- %d;\n", u, v)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func maxDepth(depths []int) int {
	max := 0
	for _, d := range depths {
		if d > max {
			max = d
		}
	}
	return max
}

func fillColor(depths []int, id, max int) string {
	if id >= len(depths) || depths[id] < 0 {
		return colorUnreached
	}
	return depthColor(depths[id], max)
}

// depthColor blends from the bright start color to the deep end color as
// depth grows. Depth 0 and the maximum depth map onto the palette
// constants exactly.
func depthColor(depth, max int) string {
	switch {
	case depth <= 0:
		return colorReached
	case depth >= max:
		return colorDeep
	}
	return gradStart.BlendLuv(gradEnd, float64(depth)/float64(max)).Hex()
}
