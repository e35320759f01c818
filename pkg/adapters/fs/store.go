package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fberthelot/akhet/pkg/core"
)

// DefaultPrefix namespaces every document written by the store.
const DefaultPrefix = "akhet"

// Store implements core.Store on the local filesystem: one JSON document per
// collection key, written as "<prefix>_<key>.json" inside the vault directory.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	Prefix    string // namespace for the document filenames, e.g. "akhet"
	AutoInit  bool
	MustExist bool
	Logger    *slog.Logger
	// ErrorHandler receives runtime watcher failures that would otherwise
	// only be logged.
	ErrorHandler func(error)
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.Prefix == "" {
		config.Prefix = DefaultPrefix
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the vault directory exists. A missing directory is
// created only when AutoInit is set; with MustExist (or without AutoInit) it
// is an error instead.
func (s *Store) Initialize(ctx context.Context) error {
	info, err := os.Stat(s.Path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", s.Path)
		}
		return nil
	case os.IsNotExist(err):
		if s.config.MustExist || !s.config.AutoInit {
			return fmt.Errorf("vault path does not exist: %s", s.Path)
		}
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
		return nil
	default:
		return err
	}
}

// filename maps a collection key to its namespaced document path.
func (s *Store) filename(key string) string {
	return filepath.Join(s.Path, s.config.Prefix+"_"+key+".json")
}

// resolveKey maps a document path back to its collection key. Returns false
// for files outside the namespace (temp files, foreign files, wrong prefix).
func (s *Store) resolveKey(path string) (string, bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, TempFilePrefix) {
		return "", false
	}
	if !strings.HasSuffix(base, ".json") {
		return "", false
	}
	name := strings.TrimSuffix(base, ".json")
	prefix := s.config.Prefix + "_"
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(name, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// Load reads the document under key into v.
//
// Contract (the caller supplies the default):
//   - absent key or unavailable store: (false, nil), v untouched;
//   - undecodable document: logged, treated as absent; a corrupt file must
//     never take the whole dashboard down;
//   - read failures other than absence are surfaced for the caller to log.
func (s *Store) Load(ctx context.Context, key string, v any) (bool, error) {
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.config.Logger.Warn("corrupt document, falling back to default",
			"key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Save encodes v and writes it atomically under key (temp file + rename), so
// a crash mid-write can never leave a truncated document behind.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	if key == "" {
		return fmt.Errorf("document has no key")
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := writeFileAtomic(s.filename(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.filename(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Keys lists the collection keys currently present in the vault.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if key, ok := s.resolveKey(e.Name()); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
