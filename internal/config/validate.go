package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aretw0/cellar/pkg/core"
)

var (
	validAdapters   = []string{"fs", "sqlite"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the loaded values. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validAdapters, c.Journal.Adapter) {
		errs = append(errs, fmt.Errorf("journal.adapter must be one of %v, got %q", validAdapters, c.Journal.Adapter))
	}
	if strings.TrimSpace(c.Journal.Key) == "" {
		errs = append(errs, errors.New("journal.key must not be empty"))
	}
	if c.Journal.Locale != "" && !core.ValidLocale(c.Journal.Locale) {
		errs = append(errs, fmt.Errorf("journal.locale %q is not a valid language tag", c.Journal.Locale))
	}
	if c.Gemini.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("gemini.timeout must be positive, got %s", c.Gemini.Timeout))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v, got %q", validLogFormats, c.Log.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
