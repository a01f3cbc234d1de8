package server

import (
	"html/template"
	"net/http"

	"github.com/verdantlab/go-lsys/engine"
	"github.com/verdantlab/go-lsys/plotter"
	"github.com/verdantlab/go-lsys/settings"
)

type pageData struct {
	Config        settings.Config
	SVG           template.HTML
	Error         string
	CeilingWarned bool
	UnmatchedPops int
	SegmentCount  int
	ExpandedLen   int
	DurationMS    int64
	Presets       []string
}

func (s *Server) renderPage(w http.ResponseWriter, cfg settings.Config, result *engine.Result, errMsg string) {
	data := pageData{
		Config:  cfg,
		Error:   errMsg,
		Presets: settings.PresetNames(),
	}
	if result != nil {
		svg := plotter.NewSVGPlotter(s.vp).SetBackground(cfg.Background).Render(result.Segments)
		data.SVG = template.HTML(svg)
		data.CeilingWarned = result.CeilingWarned
		data.UnmatchedPops = result.UnmatchedPops
		data.SegmentCount = len(result.Segments)
		data.ExpandedLen = result.ExpandedLen
		data.DurationMS = result.Duration.Milliseconds()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Error("render page", "err", err)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>L-System Studio</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #1a1a2e; color: #eee; }
    .container { display: flex; min-height: 100vh; }
    .sidebar { width: 340px; background: #16213e; border-right: 1px solid #0f3460; padding: 16px; }
    .main { flex: 1; display: flex; flex-direction: column; align-items: center; padding: 24px; }
    h1 { font-size: 18px; font-weight: 500; margin-bottom: 16px; }
    label { display: block; font-size: 12px; text-transform: uppercase; letter-spacing: 1px; color: #888; margin: 12px 0 4px; }
    input { width: 100%; background: #1a1a2e; color: #eee; border: 1px solid #0f3460; border-radius: 4px; padding: 8px; font-family: 'Monaco', 'Menlo', monospace; font-size: 13px; }
    input:focus { outline: none; border-color: #e94560; }
    .btn { background: #e94560; color: white; border: none; padding: 10px 20px; border-radius: 4px; cursor: pointer; font-size: 14px; margin-top: 16px; }
    .btn:hover { background: #ff6b6b; }
    .btn.secondary { background: #0f3460; }
    .banner { width: 100%; padding: 10px 16px; border-radius: 4px; margin-bottom: 16px; font-size: 14px; }
    .banner.error { background: #5c1a2e; border: 1px solid #e94560; }
    .banner.warn { background: #5c4a1a; border: 1px solid #e9b145; }
    .stats { color: #888; font-size: 12px; margin-top: 12px; }
    .drawing svg { border: 1px solid #0f3460; border-radius: 8px; }
    .presets a { color: #4fc3f7; font-size: 13px; margin-right: 8px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="sidebar">
      <h1>L-System Settings</h1>
      <form method="post" action="/apply">
        <label>Axiom</label>
        <input name="axiom" value="{{.Config.Axiom}}">
        <label>Rules</label>
        <input name="rules" value="{{.Config.Rules}}">
        <label>Iterations</label>
        <input name="iterations" type="number" min="0" value="{{.Config.Iterations}}">
        <label>Angle (deg)</label>
        <input name="angle" value="{{.Config.Angle}}">
        <label>Start Angle (deg)</label>
        <input name="start_angle" value="{{.Config.StartAngle}}">
        <label>Length</label>
        <input name="length" value="{{.Config.Length}}">
        <label>Line Width</label>
        <input name="line_width" value="{{.Config.LineWidth}}">
        <label>Angle Variation (deg)</label>
        <input name="angle_variation" value="{{.Config.AngleVariation}}">
        <label>Length Variation</label>
        <input name="length_variation" value="{{.Config.LengthVariation}}">
        <label>Line Color</label>
        <input name="line_color" value="{{.Config.LineColor}}">
        <label>Background</label>
        <input name="background" value="{{.Config.Background}}">
        <label>Seed (0 = random)</label>
        <input name="seed" value="{{.Config.Seed}}">
        <button class="btn" type="submit">Apply</button>
        <a class="btn secondary" href="/redraw" style="display:inline-block;text-decoration:none;">Redraw</a>
      </form>
    </div>
    <div class="main">
      {{if .Error}}<div class="banner error">{{.Error}}</div>{{end}}
      {{if .CeilingWarned}}<div class="banner warn">Large expansion: rendering may be slow at this iteration count.</div>{{end}}
      {{if .UnmatchedPops}}<div class="banner warn">Malformed rules: {{.UnmatchedPops}} unmatched ] ignored.</div>{{end}}
      <div class="drawing">{{.SVG}}</div>
      {{if .SegmentCount}}<div class="stats">{{.SegmentCount}} segments &middot; {{.ExpandedLen}} symbols &middot; {{.DurationMS}} ms</div>{{end}}
    </div>
  </div>
</body>
</html>
`))
