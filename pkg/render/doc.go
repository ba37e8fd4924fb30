// Package render draws networks as circular node-link diagrams.
//
// # Overview
//
// This package turns a graph into Graphviz DOT text and rasterizes it.
// Networks are laid out on a circle (the circo engine), which keeps the
// ring lattice readable and makes rewired shortcuts visible as chords.
// It provides:
//
//   - DOT generation with optional spread-depth coloring ([ToDOT])
//   - SVG rendering via Graphviz ([RenderSVG])
//   - PNG rendering via Graphviz ([RenderPNG])
//
// # Basic Usage
//
// Convert a graph to DOT, then render it:
//
//	dot := render.ToDOT(g, render.Options{Label: "small-world"})
//	svg, err := render.RenderSVG(dot)
//	png, err := render.RenderPNG(dot)
//
// # Depth Coloring
//
// When [Options.Depths] is set, each node is filled with a gradient color
// from bright blue (the start of the spread) to deep navy (the farthest
// reached nodes). Unreached nodes stay gray. The depth of node i is
// Depths[i]; negative entries mark unreached nodes.
package render
