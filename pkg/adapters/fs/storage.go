// Package fs stores journal slots as files in a local directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/cellar/pkg/core"
)

// DefaultExtension is appended to slot keys to form file names.
const DefaultExtension = ".json"

// Storage implements core.Storage with one file per slot.
type Storage struct {
	Path   string
	config Config
	logger *slog.Logger

	mu            sync.RWMutex
	writes        int
	lastWrite     *time.Time
	watcherActive bool
}

// Config holds the configuration for the filesystem storage.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	Extension    string // e.g. ".json"
	Logger       *slog.Logger
	EventBuffer  int           // size of the Watch channel buffer
	Debounce     time.Duration // quiet period before a Watch event is emitted
	ErrorHandler func(error)   // receives watcher failures; they are logged otherwise
}

// NewStorage creates a new filesystem-backed storage.
func NewStorage(config Config) *Storage {
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 16
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Storage{
		Path:   config.Path,
		config: config,
		logger: logger.With("adapter", "fs"),
	}
}

// Initialize ensures the journal directory exists.
func (s *Storage) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("journal path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("journal path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}
	return nil
}

// Get reads the slot file. A missing file is core.ErrNotFound.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	filename, err := s.filename(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("slot %s: %w", key, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, nil
}

// Put writes the slot file atomically.
func (s *Storage) Put(ctx context.Context, key string, data []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	filename, err := s.filename(key)
	if err != nil {
		return err
	}

	s.logger.Debug("writing slot to disk", "key", key, "path", filename, "bytes", len(data))
	if err := writeFileAtomic(filename, data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	now := time.Now()
	s.writes++
	s.lastWrite = &now
	s.mu.Unlock()
	return nil
}

// Slots lists the keys that currently have a file in the journal directory.
func (s *Storage) Slots() ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(s.Path), "*"+s.config.Extension)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m[:len(m)-len(s.config.Extension)])
	}
	return keys, nil
}

func (s *Storage) filename(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.Path, key+s.config.Extension), nil
}

// ValidateKey accepts keys made of letters, digits, '-', '_' and '.'.
// Keys double as file names and watch patterns, so nothing else is allowed.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("invalid slot key %q", key)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("invalid slot key %q: unexpected %q", key, r)
		}
	}
	return nil
}

var (
	_ core.Storage     = (*Storage)(nil)
	_ core.Initializer = (*Storage)(nil)
	_ core.Watchable   = (*Storage)(nil)
)
