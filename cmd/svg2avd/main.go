// Command svg2avd converts SVG files to Android vector drawables.
//
//	svg2avd -i icon.svg -o res/drawable
//	svg2avd -i icons/ -o res/drawable -r -preview
//	svg2avd -serve
//
// Defaults are read from the SVG2AVD_* environment variables,
// and overridden by the flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benoitkugler/svg2avd/avd"
	"github.com/benoitkugler/svg2avd/batch"
	"github.com/benoitkugler/svg2avd/internal/config"
	"github.com/benoitkugler/svg2avd/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	input := flag.String("i", "", "input SVG file or directory")
	output := flag.String("o", "", "output directory for the drawables")
	recursive := flag.Bool("r", false, "convert the sub directories of the input")
	preview := flag.Bool("preview", false, "also write a PNG preview of each file")
	errorMode := flag.String("errors", cfg.ErrorMode, "unsupported elements handling: ignore, warn or strict")
	workers := flag.Int("workers", cfg.NumWorkers(), "number of parallel conversions")
	noDecl := flag.Bool("no-decl", !cfg.XMLDeclaration, "omit the XML declaration")
	serve := flag.Bool("serve", false, "start the HTTP conversion service on "+cfg.Addr)
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	avd.SetLogger(logger)

	cfg.ErrorMode = *errorMode
	cfg.XMLDeclaration = !*noDecl
	cfg.Workers = *workers
	opts, err := cfg.ConvertOptions()
	if err != nil {
		slog.Error("invalid options", "error", err)
		os.Exit(1)
	}

	if *serve {
		if err := runServer(cfg, opts); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "svg2avd: both -i and -o are required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conv := batch.Converter{
		Options:      opts,
		Recursive:    *recursive,
		Workers:      cfg.NumWorkers(),
		Preview:      *preview,
		PreviewScale: cfg.PreviewScale,
		Logger:       logger,
	}
	if _, err := conv.Run(ctx, *input, *output); err != nil {
		slog.Error("conversion failed", "input", *input, "error", err)
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, opts avd.Options) error {
	handler, err := server.New(server.Options{
		Convert:       opts,
		CacheMaxCost:  cfg.CacheMaxCost,
		MaxUploadSize: cfg.MaxUploadSize,
		PreviewScale:  cfg.PreviewScale,
	})
	if err != nil {
		return err
	}
	defer handler.Close()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
