package config

import (
	"log/slog"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/benoitkugler/svg2avd/avd"
)

// Config is read from the SVG2AVD_* environment variables.
type Config struct {
	Addr           string  `envconfig:"ADDR" default:":8080"`
	Workers        int     `envconfig:"WORKERS" default:"0"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	ErrorMode      string  `envconfig:"ERROR_MODE" default:"ignore"`
	XMLDeclaration bool    `envconfig:"XML_DECLARATION" default:"true"`
	CacheMaxCost   int64   `envconfig:"CACHE_MAX_COST" default:"67108864"`
	MaxUploadSize  int64   `envconfig:"MAX_UPLOAD_SIZE" default:"10485760"`
	PreviewScale   float64 `envconfig:"PREVIEW_SCALE" default:"4"`
}

// Load reads the configuration from the environment, applying
// the defaults, and checks that the error mode is known.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SVG2AVD", &cfg); err != nil {
		return nil, err
	}
	if _, err := avd.ParseErrorMode(cfg.ErrorMode); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConvertOptions returns the avd options matching the configuration.
func (c *Config) ConvertOptions() (avd.Options, error) {
	mode, err := avd.ParseErrorMode(c.ErrorMode)
	if err != nil {
		return avd.Options{}, err
	}
	return avd.Options{ErrorMode: mode, OmitDeclaration: !c.XMLDeclaration}, nil
}

// NumWorkers returns the number of parallel conversions,
// defaulting to the number of CPUs.
func (c *Config) NumWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
