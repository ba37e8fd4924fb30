package render

import (
	"bytes"
	"strings"
	"testing"
)

type pathGraph [][]int

func (g pathGraph) Order() int             { return len(g) }
func (g pathGraph) Neighbors(id int) []int { return g[id] }

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(pathGraph{{1, 3}, {0, 2}, {1, 3}, {0, 2}}, Options{Label: "ring"})

	svg, err := RenderSVG(dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
	if !strings.Contains(string(svg), "#0e1117") {
		t.Error("RenderSVG() output missing the background color")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG("not valid DOT {{{"); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestRenderPNG(t *testing.T) {
	dot := ToDOT(pathGraph{{1, 3}, {0, 2}, {1, 3}, {0, 2}}, Options{})

	png, err := RenderPNG(dot)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("RenderPNG() output missing PNG signature")
	}
}
