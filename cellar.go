package cellar

import (
	"context"
	"log/slog"

	"github.com/aretw0/cellar/internal/platform"
	"github.com/aretw0/cellar/pkg/adapters/gemini"
	"github.com/aretw0/cellar/pkg/core"
)

// --- Types ---

// Service is the journal application service.
type Service = core.Service

// WineNote is one journal entry.
type WineNote = core.WineNote

// --- Configuration ---

// Option defines a functional option for configuring a journal.
type Option = platform.Option

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage injects a custom storage port.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithGateway injects a custom AI gateway.
func WithGateway(gw core.Gateway) Option {
	return platform.WithGateway(gw)
}

// WithGemini configures the default Gemini gateway.
func WithGemini(cfg gemini.Config) Option {
	return platform.WithGemini(cfg)
}

// WithAdapter selects the storage adapter by name ("fs" or "sqlite").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithKey sets the storage slot holding the collection.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithLocale picks the placeholder language for missing AI fields.
func WithLocale(locale string) Option {
	return platform.WithLocale(locale)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist requires the journal directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the journal into a temporary directory.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithEventBuffer sets the buffer size of the fs watch channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens the journal at path and returns a ready Service.
func New(ctx context.Context, path string, opts ...Option) (*Service, error) {
	return platform.New(ctx, path, opts...)
}

// FindRoot looks upwards from dir for a cellar.yaml file or .cellar directory.
func FindRoot(dir string) (string, error) {
	return platform.FindRoot(dir)
}

// ResolveJournalPath applies the dev sandbox rules to path.
func ResolveJournalPath(path string, forceTemp bool) string {
	return platform.ResolveJournalPath(path, forceTemp)
}

// IsDevRun reports whether the process was started by `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
