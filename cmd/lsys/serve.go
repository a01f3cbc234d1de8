package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/verdantlab/go-lsys/engine"
	"github.com/verdantlab/go-lsys/logging"
	"github.com/verdantlab/go-lsys/plotter"
	"github.com/verdantlab/go-lsys/renderlog"
	"github.com/verdantlab/go-lsys/server"
)

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "Listen address")
	width := fs.Float64("width", 800, "Drawing width")
	height := fs.Float64("height", 600, "Drawing height")
	padding := fs.Float64("padding", 50, "Viewport padding")
	dbPath := fs.String("db", "", "SQLite render-log path (empty disables logging)")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys serve [options]

Run the interactive HTTP preview with a settings form, Apply/Redraw,
Prometheus metrics and an optional render log.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  lsys serve --addr :8080
  lsys serve --db runs.db --log-level debug
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	log := logging.New(logging.ParseLevel(*logLevel))
	vp := plotter.Viewport{Width: *width, Height: *height, Padding: *padding}

	engineOpts := []engine.Option{engine.WithLogger(log)}
	serverOpts := []server.Option{server.WithLogger(log)}
	if *dbPath != "" {
		store, err := renderlog.Open(*dbPath)
		if err != nil {
			return fmt.Errorf("open render log: %w", err)
		}
		defer store.Close()
		engineOpts = append(engineOpts, engine.WithSink(store))
		serverOpts = append(serverOpts, server.WithStore(store))
	}

	srv, err := server.New(engine.New(vp, engineOpts...), vp, serverOpts...)
	if err != nil {
		return err
	}

	log.Info("serving", "addr", *addr)
	return http.ListenAndServe(*addr, srv.Handler())
}
