package core

import (
	"context"
	"fmt"
)

// Store defines the contract for the namespaced key-value persistence layer.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem today, anything byte-addressable tomorrow).
type Store interface {
	// Load reads the document stored under key into v. It returns false when
	// the key is absent or the store is unavailable, leaving v untouched so
	// the caller's default applies. A present but undecodable document is
	// treated as absent (logged by the implementation), never as an error.
	Load(ctx context.Context, key string, v any) (bool, error)

	// Save encodes v and writes it under key, replacing any previous value.
	Save(ctx context.Context, key string, v any) error

	// Delete removes the document under key. Removing an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// vault directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for stores that can report external changes.
type Watchable interface {
	// Watch emits an Event whenever a document matching pattern changes on
	// disk. The channel closes when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// EventType represents the type of change observed in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to one collection key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and lifecycle.Event).
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
