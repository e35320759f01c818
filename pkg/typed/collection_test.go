package typed_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fberthelot/akhet/pkg/adapters/fs"
	"github.com/fberthelot/akhet/pkg/core"
	"github.com/fberthelot/akhet/pkg/typed"
)

func newTestStore(t *testing.T) *fs.Store {
	t.Helper()
	store := fs.NewStore(fs.Config{
		Path:   t.TempDir(),
		Logger: slog.Default(),
	})
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func TestCollectionDefaultsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	books := typed.NewCollection(store, core.KeyBooks, func() []core.Book {
		return []core.Book{}
	})

	value, found, err := books.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	books := typed.NewCollection[[]core.Book](store, core.KeyBooks, nil)

	in := []core.Book{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", Status: core.BookReading, AddedAt: "2026-01-15"},
	}
	require.NoError(t, books.Save(ctx, in))

	out, found, err := books.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	runs := typed.NewCollection(store, core.KeyWeeklyRuns, core.DefaultWeeklyRuns)

	updated, err := runs.Update(ctx, func(weeks []core.WeeklyRun) []core.WeeklyRun {
		weeks[0].R1 = true
		return weeks
	})
	require.NoError(t, err)
	assert.True(t, updated[0].R1)

	// The mutation must be visible on a fresh load.
	out, found, err := runs.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, out[0].R1)
	assert.Len(t, out, 52)
}

func TestCollectionZeroDefault(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	url := typed.NewCollection[string](store, core.KeyDarebeeURL, nil)

	value, found, err := url.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "", value)
}
