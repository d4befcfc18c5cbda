// Package config loads comik CLI settings from the environment.
//
// Every setting has a default; command-line flags override the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/ben0x539/comik"
)

// Config holds CLI settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"COMIK_LOG_LEVEL" envDefault:"warn"`

	// LogFormat is text or json.
	LogFormat string `env:"COMIK_LOG_FORMAT" envDefault:"text"`

	// MaxEntrySize limits the uncompressed size of one page entry.
	MaxEntrySize uint64 `env:"COMIK_MAX_ENTRY_SIZE" envDefault:"536870912"`

	// MaxPixels rejects pages with more pixels when preparing textures.
	// Zero means no limit.
	MaxPixels int `env:"COMIK_MAX_PIXELS" envDefault:"0"`

	// ImagesOnly hides archive entries without an image extension.
	ImagesOnly bool `env:"COMIK_IMAGES_ONLY" envDefault:"false"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// Logger builds a slog.Logger writing to w according to LogLevel and
// LogFormat.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
}

// ComicOptions returns the comik options implied by the config.
func (c *Config) ComicOptions() []comik.Option {
	opts := []comik.Option{comik.WithMaxEntrySize(c.MaxEntrySize)}
	if c.ImagesOnly {
		opts = append(opts, comik.WithEntryFilter(comik.ImagesOnly))
	}
	return opts
}
