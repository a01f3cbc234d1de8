package plotter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verdantlab/go-lsys/turtle"
)

func TestRenderBasicDocument(t *testing.T) {
	vp := Viewport{Width: 300, Height: 200, Padding: 10}
	s := seg(10, 10, 50, 50)
	s.Color = "#00ff00"
	s.Width = 1

	svg := NewSVGPlotter(vp).SetBackground("#000000").Render([]turtle.Segment{s})

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="300" height="200">`) {
		t.Errorf("unexpected SVG header: %s", svg[:60])
	}
	if !strings.Contains(svg, `<rect width="300" height="200" fill="#000000"/>`) {
		t.Error("missing background rect")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing segment stroke color")
	}
	if !strings.HasSuffix(svg, `</svg>`) {
		t.Error("document not closed")
	}
}

func TestRenderMergesContinuousRuns(t *testing.T) {
	a := seg(0, 0, 10, 0)
	b := seg(10, 0, 10, 10) // continues from a
	c := seg(50, 50, 60, 60) // detached
	for _, s := range []*turtle.Segment{&a, &b, &c} {
		s.Color = "#ffffff"
		s.Width = 1
	}

	svg := NewSVGPlotter(Viewport{Width: 100, Height: 100}).Render([]turtle.Segment{a, b, c})
	if got := strings.Count(svg, "<path "); got != 2 {
		t.Errorf("got %d path elements, want 2 (continuous run merged)", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	svg := NewSVGPlotter(Viewport{Width: 100, Height: 100}).Render(nil)
	if strings.Contains(svg, "<path") {
		t.Error("empty render should contain no paths")
	}
	if !strings.Contains(svg, "<rect") {
		t.Error("empty render should still paint the background")
	}
}

func TestRenderTitleEscaped(t *testing.T) {
	svg := NewSVGPlotter(Viewport{Width: 10, Height: 10}).SetTitle(`a<b&"c"`).Render(nil)
	if !strings.Contains(svg, "<title>a&lt;b&amp;&quot;c&quot;</title>") {
		t.Errorf("title not escaped: %s", svg)
	}
}

func TestSaveSVG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plant.svg")
	s := seg(0, 0, 5, 5)
	s.Color = "#00ff00"
	s.Width = 1

	if err := SaveSVG(path, []turtle.Segment{s}, Viewport{Width: 50, Height: 50}, "#111111"); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), `fill="#111111"`) {
		t.Error("written file missing background")
	}
}
