package platform

import (
	"log/slog"

	"github.com/aretw0/cellar/pkg/adapters/gemini"
	"github.com/aretw0/cellar/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
)

// options holds the internal configuration for a journal.
type options struct {
	storage      core.Storage
	gateway      core.Gateway
	gemini       gemini.Config
	logger       *slog.Logger
	adapter      string
	key          string
	locale       string
	readOnly     bool
	mustExist    bool
	forceTemp    bool
	devSafety    bool
	eventBuffer  int
	errorHandler func(error)
}

// Option defines a functional option for configuring a journal.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:   AdapterFS,
		key:       core.DefaultKey,
		devSafety: true,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithLogger sets the logger shared by the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage injects a custom storage port (e.g. a mock).
// If provided, the adapter selected by WithAdapter is skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithGateway injects a custom AI gateway. It takes precedence over WithGemini.
func WithGateway(gw core.Gateway) Option {
	return func(o *options) {
		o.gateway = gw
	}
}

// WithGemini configures the default Gemini gateway.
func WithGemini(cfg gemini.Config) Option {
	return func(o *options) {
		o.gemini = cfg
	}
}

// WithAdapter selects the storage adapter by name ("fs" or "sqlite").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithKey sets the storage slot holding the collection.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithLocale picks the placeholder language for missing AI fields (e.g. "en", "zh").
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithReadOnly enables read-only mode.
// Writes return core.ErrReadOnly, the journal directory is never created,
// and the dev sandbox is bypassed.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist requires the journal directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the journal into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the journal is re-rooted into a temporary directory.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithEventBuffer sets the buffer size of the fs watch channel.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
