package plotter

import (
	"fmt"
	"os"
	"strings"

	"github.com/verdantlab/go-lsys/turtle"
)

// SVGPlotter renders viewport-space segments as an SVG document.
type SVGPlotter struct {
	Viewport   Viewport
	Background string
	Title      string
}

// NewSVGPlotter creates a plotter for the given viewport with a black
// background.
func NewSVGPlotter(vp Viewport) *SVGPlotter {
	return &SVGPlotter{Viewport: vp, Background: "#000000"}
}

// SetBackground sets the background fill color.
func (p *SVGPlotter) SetBackground(color string) *SVGPlotter {
	p.Background = color
	return p
}

// SetTitle sets the document title element.
func (p *SVGPlotter) SetTitle(title string) *SVGPlotter {
	p.Title = title
	return p
}

// Render generates the SVG document. Segments are expected in viewport
// space (see Fit); consecutive segments that share an endpoint and a
// style are merged into one path element to keep the output compact.
// With no segments only the background is drawn.
func (p *SVGPlotter) Render(segments []turtle.Segment) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		int(p.Viewport.Width), int(p.Viewport.Height)))
	if p.Title != "" {
		sb.WriteString(fmt.Sprintf(`<title>%s</title>`, escape(p.Title)))
	}
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`,
		int(p.Viewport.Width), int(p.Viewport.Height), p.Background))

	i := 0
	for i < len(segments) {
		run := segments[i]
		path := strings.Builder{}
		path.WriteString(fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f", run.From.X, run.From.Y, run.To.X, run.To.Y))
		j := i + 1
		for j < len(segments) {
			next := segments[j]
			if next.From != segments[j-1].To || next.Color != run.Color || next.Width != run.Width {
				break
			}
			path.WriteString(fmt.Sprintf(" L%.2f,%.2f", next.To.X, next.To.Y))
			j++
		}
		sb.WriteString(fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="%g" fill="none" stroke-linecap="round"/>`,
			path.String(), run.Color, run.Width))
		i = j
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// SaveSVG renders segments into the viewport and writes the document to
// a file.
func SaveSVG(filename string, segments []turtle.Segment, vp Viewport, background string) error {
	svg := NewSVGPlotter(vp).SetBackground(background).Render(segments)
	return os.WriteFile(filename, []byte(svg), 0644)
}

// escape sanitizes text embedded in SVG markup.
func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
