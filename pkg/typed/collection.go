// Package typed provides type-safe bindings over the raw key-value store.
//
// The core store moves untyped documents ("goals", "books", ...) in and out of
// the vault; a Collection[T] pins one key to one Go type and supplies the
// default value returned when the key is absent.
package typed

import (
	"context"
	"fmt"

	"github.com/fberthelot/akhet/pkg/core"
)

// Collection binds a store key to a concrete type T with a default value.
type Collection[T any] struct {
	store      core.Store
	key        string
	defaultsFn func() T
}

// NewCollection creates a typed binding for key. defaults is called to produce
// the value returned by Load when the key is absent or undecodable; it may be
// nil, in which case the zero value of T is used.
func NewCollection[T any](store core.Store, key string, defaults func() T) *Collection[T] {
	return &Collection[T]{
		store:      store,
		key:        key,
		defaultsFn: defaults,
	}
}

// Key returns the store key this collection is bound to.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load reads the collection from the store. Absent or corrupt documents yield
// the default value and found=false; only real I/O failures return an error.
func (c *Collection[T]) Load(ctx context.Context) (value T, found bool, err error) {
	var v T
	found, err = c.store.Load(ctx, c.key, &v)
	if err != nil {
		return c.defaults(), false, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !found {
		return c.defaults(), false, nil
	}
	return v, true, nil
}

// Save writes the collection to the store.
func (c *Collection[T]) Save(ctx context.Context, value T) error {
	if err := c.store.Save(ctx, c.key, value); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Update loads the collection, applies fn, and saves the result back.
func (c *Collection[T]) Update(ctx context.Context, fn func(T) T) (T, error) {
	value, _, err := c.Load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	value = fn(value)
	if err := c.Save(ctx, value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func (c *Collection[T]) defaults() T {
	if c.defaultsFn != nil {
		return c.defaultsFn()
	}
	var zero T
	return zero
}
