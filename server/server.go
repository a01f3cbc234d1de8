// Package server exposes the render pipeline over HTTP: an interactive
// settings page with Apply and Redraw, a raw SVG endpoint, the render
// log and Prometheus metrics. The server is the render sink and
// settings GUI collaborator; the core packages know nothing about it.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verdantlab/go-lsys/engine"
	"github.com/verdantlab/go-lsys/plotter"
	"github.com/verdantlab/go-lsys/renderlog"
	"github.com/verdantlab/go-lsys/settings"
)

// Server serves the interactive L-system preview.
type Server struct {
	mu      sync.Mutex // the engine is synchronous and single-threaded
	engine  *engine.Engine
	vp      plotter.Viewport
	store   *renderlog.Store
	log     *slog.Logger
	metrics *metrics
}

// Option configures a Server.
type Option func(*Server)

// WithStore attaches a render log for the /runs endpoint.
func WithStore(store *renderlog.Store) Option {
	return func(s *Server) { s.store = store }
}

// WithLogger sets the request/render logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// New creates a server around the given engine and applies the default
// configuration so the first page load has something to draw.
func New(e *engine.Engine, vp plotter.Viewport, opts ...Option) (*Server, error) {
	s := &Server{
		engine:  e,
		vp:      vp,
		log:     slog.New(slog.DiscardHandler),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, ok := e.Config(); !ok {
		if _, err := s.apply(settings.Default()); err != nil {
			return nil, fmt.Errorf("apply default config: %w", err)
		}
	}
	return s, nil
}

// Handler returns the HTTP handler tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/", s.handleIndex)
	r.Post("/apply", s.handleApply)
	r.Get("/redraw", s.handleRedraw)
	r.Get("/render.svg", s.handleRenderSVG)
	r.Get("/runs", s.handleRuns)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

// requestLogger emits one structured line per request once the
// response is written.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start))
		})
	}
}

// apply runs engine.Apply under the server lock and records metrics.
func (s *Server) apply(cfg settings.Config) (*engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, err := s.engine.Apply(cfg)
	if err != nil {
		return nil, err
	}
	s.metrics.observe("apply", result.Duration.Seconds(), len(result.Segments))
	return result, nil
}

// redraw runs engine.Redraw under the server lock and records metrics.
func (s *Server) redraw() (*engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, err := s.engine.Redraw()
	if err != nil {
		return nil, err
	}
	s.metrics.observe("redraw", result.Duration.Seconds(), len(result.Segments))
	return result, nil
}

func (s *Server) currentConfig() settings.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.engine.Config()
	if !ok {
		return settings.Default()
	}
	return cfg
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	result, err := s.redraw()
	if err != nil {
		s.renderPage(w, s.currentConfig(), nil, err.Error())
		return
	}
	s.renderPage(w, s.currentConfig(), result, "")
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	cfg, err := configFromForm(r)
	if err != nil {
		s.renderPage(w, s.currentConfig(), nil, err.Error())
		return
	}

	result, err := s.apply(cfg)
	if err != nil {
		s.log.Warn("apply rejected", "err", err)
		s.renderPage(w, s.currentConfig(), nil, err.Error())
		return
	}
	s.log.Info("applied", "iterations", cfg.Iterations,
		"expanded_len", result.ExpandedLen, "segments", len(result.Segments))
	s.renderPage(w, cfg, result, "")
}

func (s *Server) handleRedraw(w http.ResponseWriter, r *http.Request) {
	result, err := s.redraw()
	if err != nil {
		s.renderPage(w, s.currentConfig(), nil, err.Error())
		return
	}
	s.renderPage(w, s.currentConfig(), result, "")
}

// handleRenderSVG serves a raw SVG. Query parameters override the
// current configuration and take the Apply path; redraw=1 (or a bare
// request) takes the Redraw path over the installed configuration.
func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var result *engine.Result
	if q.Get("redraw") == "1" || len(q) == 0 {
		res, err := s.redraw()
		if err != nil {
			if errors.Is(err, engine.ErrNothingToRedraw) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		result = res
	} else {
		cfg, err := configFromValues(s.currentConfig(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := s.apply(cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result = res
	}

	cfg := s.currentConfig()
	svg := plotter.NewSVGPlotter(s.vp).SetBackground(cfg.Background).Render(result.Segments)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "render log not enabled", http.StatusNotFound)
		return
	}
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	entries, err := s.store.Recent(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// configFromForm decodes the settings form on top of the defaults.
// Field-level parse failures surface as one error so the page can
// show them in the banner.
func configFromForm(r *http.Request) (settings.Config, error) {
	if err := r.ParseForm(); err != nil {
		return settings.Config{}, fmt.Errorf("parse form: %w", err)
	}
	return configFromValues(settings.Default(), r.Form)
}

// configFromValues overlays the supplied values onto base. String
// fields override when the key is present, numeric fields when the
// value is non-empty; an empty color keeps the base color so a blank
// form field cannot produce invisible strokes.
func configFromValues(base settings.Config, v url.Values) (settings.Config, error) {
	cfg := base
	if v.Has("axiom") {
		cfg.Axiom = v.Get("axiom")
	}
	if v.Has("rules") {
		cfg.Rules = v.Get("rules")
	}
	if c := v.Get("line_color"); c != "" {
		cfg.LineColor = c
	}
	if c := v.Get("background"); c != "" {
		cfg.Background = c
	}

	var err error
	numbers := []struct {
		name string
		dst  *float64
	}{
		{"angle", &cfg.Angle},
		{"start_angle", &cfg.StartAngle},
		{"length", &cfg.Length},
		{"line_width", &cfg.LineWidth},
		{"angle_variation", &cfg.AngleVariation},
		{"length_variation", &cfg.LengthVariation},
	}
	for _, field := range numbers {
		raw := v.Get(field.name)
		if raw == "" {
			continue
		}
		if *field.dst, err = strconv.ParseFloat(raw, 64); err != nil {
			return settings.Config{}, fmt.Errorf("field %s: %w", field.name, err)
		}
	}
	if raw := v.Get("iterations"); raw != "" {
		if cfg.Iterations, err = strconv.Atoi(raw); err != nil {
			return settings.Config{}, fmt.Errorf("field iterations: %w", err)
		}
	}
	if seed := v.Get("seed"); seed != "" {
		if cfg.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return settings.Config{}, fmt.Errorf("field seed: %w", err)
		}
	}
	return cfg, nil
}
