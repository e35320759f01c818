package platform

import (
	"log/slog"

	"github.com/fberthelot/akhet/pkg/core"
)

// options holds the internal configuration for the dashboard service.
type options struct {
	store        core.Store
	logger       *slog.Logger
	prefix       string
	autoInit     bool
	mustExist    bool
	autoSeed     bool
	onChange     func(key string, value any)
	errorHandler func(error)
}

// Option defines a functional option for configuring the dashboard.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoInit: true,
		autoSeed: true,
	}
}

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrefix overrides the document namespace prefix (defaults to "akhet").
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithStore allows injecting a custom storage adapter (e.g. mock, memory).
// If provided, the default filesystem adapter will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAutoInit enables automatic creation of the vault directory.
// Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithAutoSeed controls whether an empty vault is seeded with the yearly goal
// catalog on first load. Enabled by default.
func WithAutoSeed(seed bool) Option {
	return func(o *options) {
		o.autoSeed = seed
	}
}

// WithOnChange registers a callback invoked after every persisted mutation.
func WithOnChange(fn func(key string, value any)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
