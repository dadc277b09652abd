package config

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/benoitkugler/svg2avd/avd"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" || cfg.PreviewScale != 4 || !cfg.XMLDeclaration || cfg.CacheMaxCost != 64<<20 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.NumWorkers() != runtime.NumCPU() {
		t.Errorf("expected %d workers, got %d", runtime.NumCPU(), cfg.NumWorkers())
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("unexpected level %v", cfg.Level())
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SVG2AVD_WORKERS", "3")
	t.Setenv("SVG2AVD_LOG_LEVEL", "debug")
	t.Setenv("SVG2AVD_ERROR_MODE", "strict")
	t.Setenv("SVG2AVD_XML_DECLARATION", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NumWorkers() != 3 || cfg.Level() != slog.LevelDebug {
		t.Errorf("unexpected config %+v", cfg)
	}
	opts, err := cfg.ConvertOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts != (avd.Options{ErrorMode: avd.StrictErrorMode, OmitDeclaration: true}) {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("SVG2AVD_ERROR_MODE", "loud")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid error mode")
	}

	t.Setenv("SVG2AVD_ERROR_MODE", "warn")
	t.Setenv("SVG2AVD_WORKERS", "many")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid workers")
	}
}
