package akhet

import (
	"context"
	"log/slog"

	"github.com/fberthelot/akhet/internal/platform"
	"github.com/fberthelot/akhet/pkg/core"
	"github.com/fberthelot/akhet/pkg/oracle"
	"github.com/fberthelot/akhet/pkg/typed"
)

// --- Types ---

// Service is a public alias for the dashboard service.
type Service = core.Service

// Snapshot is a public alias for the full dashboard state.
type Snapshot = core.Snapshot

// Collection is a public alias for the typed collection binding.
type Collection[T any] = typed.Collection[T]

// --- Configuration ---

// Option defines a functional option for configuring the dashboard.
type Option = platform.Option

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithPrefix overrides the document namespace prefix (defaults to "akhet").
func WithPrefix(prefix string) Option {
	return platform.WithPrefix(prefix)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAutoInit enables automatic creation of the vault directory.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithAutoSeed controls seeding of an empty vault with the yearly catalog.
func WithAutoSeed(seed bool) Option {
	return platform.WithAutoSeed(seed)
}

// WithOnChange registers a callback invoked after every persisted mutation.
func WithOnChange(fn func(key string, value any)) Option {
	return platform.WithOnChange(fn)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a dashboard service over the vault at path, creating and
// seeding it as needed.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Open is like New but requires the vault to already exist.
func Open(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, append(opts, platform.WithMustExist(true))...)
}

// FindVault recursively looks upwards for a directory holding dashboard
// documents.
func FindVault(startDir string) (string, error) {
	return platform.FindVault(startDir)
}

// --- Typed Collections ---

// NewCollection creates a typed binding for a single store key.
func NewCollection[T any](store core.Store, key string, defaults func() T) *Collection[T] {
	return typed.NewCollection[T](store, key, defaults)
}

// --- Oracle ---

// NewOracle creates the AI provider used for coaching advice and book lookup.
// The Gemini API key is taken from the environment.
func NewOracle(ctx context.Context, logger *slog.Logger) (oracle.Provider, error) {
	return oracle.NewGeminiProvider(ctx, logger)
}
