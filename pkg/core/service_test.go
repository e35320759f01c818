package core_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fberthelot/akhet/pkg/adapters/fs"
	"github.com/fberthelot/akhet/pkg/core"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newVault returns a loaded service over a fresh vault, plus the store so
// tests can reopen the same vault.
func newVault(t *testing.T) (*core.Service, *fs.Store) {
	t.Helper()
	store := fs.NewStore(fs.Config{
		Path:   t.TempDir(),
		Logger: discard(),
	})
	require.NoError(t, store.Initialize(context.Background()))

	service := core.NewService(store, discard())
	service.Load(context.Background())
	return service, store
}

func TestLoadSeedsEmptyVault(t *testing.T) {
	service, store := newVault(t)

	assert.Len(t, service.Snapshot().Goals, 87)

	// The seed is persisted, not only in memory.
	var goals []core.Goal
	found, err := store.Load(context.Background(), core.KeyGoals, &goals)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, goals, 87)
}

func TestLoadRespectsExistingData(t *testing.T) {
	ctx := context.Background()
	store := fs.NewStore(fs.Config{Path: t.TempDir(), Logger: discard()})
	require.NoError(t, store.Initialize(ctx))

	existing := []core.Goal{{ID: "fin-per-1", Category: core.CategoryFinance, Title: "Versement PER", Month: 1, Completed: true}}
	require.NoError(t, store.Save(ctx, core.KeyGoals, existing))

	service := core.NewService(store, discard())
	service.Load(ctx)

	// A non-empty goal collection is never re-seeded.
	assert.Len(t, service.Snapshot().Goals, 1)
	assert.Equal(t, 100, service.GlobalProgress())
}

func TestLoadWithoutAutoSeed(t *testing.T) {
	store := fs.NewStore(fs.Config{Path: t.TempDir(), Logger: discard()})
	require.NoError(t, store.Initialize(context.Background()))

	service := core.NewService(store, discard())
	service.SetAutoSeed(false)
	service.Load(context.Background())

	assert.Empty(t, service.Snapshot().Goals)
}

func TestAddGoalValidation(t *testing.T) {
	ctx := context.Background()
	service, _ := newVault(t)

	cases := []core.Goal{
		{Category: core.CategoryFinance, Month: 1},                      // no title
		{Category: "Musique", Title: "Piano", Month: 1},                 // unknown category
		{Category: core.CategoryFinance, Title: "Versement", Month: 0},  // month too low
		{Category: core.CategoryFinance, Title: "Versement", Month: 13}, // month too high
	}
	before := len(service.Snapshot().Goals)
	for _, goal := range cases {
		_, ok := service.AddGoal(ctx, goal)
		assert.False(t, ok, "goal %+v should be rejected", goal)
	}
	assert.Len(t, service.Snapshot().Goals, before)

	created, ok := service.AddGoal(ctx, core.Goal{Category: core.CategoryFinance, Title: "Objectif perso", Month: 3})
	require.True(t, ok)
	assert.False(t, created.Seeded())
	assert.Equal(t, created.ID, service.Snapshot().Goals[0].ID, "user goals are prepended")
}

func TestToggleGoalMovesProgressAndRewards(t *testing.T) {
	ctx := context.Background()
	store := fs.NewStore(fs.Config{Path: t.TempDir(), Logger: discard()})
	require.NoError(t, store.Initialize(ctx))

	service := core.NewService(store, discard())
	service.SetAutoSeed(false)
	service.Load(ctx)

	goal, ok := service.AddGoal(ctx, core.Goal{Category: core.CategoryFinance, Title: "Versement PER", Month: 1})
	require.True(t, ok)

	assert.Equal(t, 0, service.CategoryProgress(core.CategoryFinance))

	require.True(t, service.ToggleGoal(ctx, goal.ID))
	assert.Equal(t, 100, service.CategoryProgress(core.CategoryFinance))

	unlocked := map[string]bool{}
	for _, r := range service.Rewards() {
		unlocked[r.ID] = r.Unlocked
	}
	assert.True(t, unlocked["f3"], "100% Finance should unlock f3")

	// Toggling back re-locks: no ratchet.
	require.True(t, service.ToggleGoal(ctx, goal.ID))
	for _, r := range service.Rewards() {
		if r.ID == "f3" {
			assert.False(t, r.Unlocked)
		}
	}

	assert.False(t, service.ToggleGoal(ctx, "missing-id"))
}

func TestMutationsPersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	service, store := newVault(t)

	book, ok := service.AddBook(ctx, core.Book{Title: "Dune", Author: "Frank Herbert"})
	require.True(t, ok)
	require.True(t, service.SetBookStatus(ctx, book.ID, core.BookRead))
	require.True(t, service.ToggleRun(ctx, 10, core.RunSlot2))
	service.SetDarebeeURL(ctx, "https://darebee.com/programs/foundation.html")

	reopened := core.NewService(store, discard())
	reopened.Load(ctx)

	snap := reopened.Snapshot()
	require.Len(t, snap.Books, 1)
	assert.Equal(t, core.BookRead, snap.Books[0].Status)
	assert.True(t, snap.WeeklyRuns[9].R2)
	assert.Equal(t, "https://darebee.com/programs/foundation.html", snap.DarebeeURL)
}

func TestToggleRunBounds(t *testing.T) {
	ctx := context.Background()
	service, _ := newVault(t)

	assert.False(t, service.ToggleRun(ctx, 0, core.RunSlot1))
	assert.False(t, service.ToggleRun(ctx, 53, core.RunSlot1))
	assert.False(t, service.ToggleRun(ctx, 10, "r9"))

	require.True(t, service.ToggleRun(ctx, 52, core.RunSlot4))
	assert.True(t, service.Snapshot().WeeklyRuns[51].R4)
	require.True(t, service.ToggleRun(ctx, 52, core.RunSlot4))
	assert.False(t, service.Snapshot().WeeklyRuns[51].R4)
}

func TestFixedSlotUpdates(t *testing.T) {
	ctx := context.Background()
	service, _ := newVault(t)

	title := "AWS Solutions Architect"
	status := core.CertPassed
	require.True(t, service.UpdateCertification(ctx, "cert-1", core.CertificationUpdate{
		Title:  &title,
		Status: &status,
	}))
	assert.False(t, service.UpdateCertification(ctx, "cert-9", core.CertificationUpdate{Title: &title}))

	done := core.TrainingDone
	require.True(t, service.UpdateTraining(ctx, "train-2", core.TrainingUpdate{Status: &done}))

	iotTitle, iotEnd := "Station météo", "2026-06-01"
	require.True(t, service.UpdateIoTProject(ctx, "iot-1", core.IoTProjectUpdate{
		Title:   &iotTitle,
		EndDate: &iotEnd,
	}))

	snap := service.Snapshot()
	assert.Equal(t, core.CertPassed, snap.Certifications[0].Status)
	assert.Equal(t, core.TrainingDone, snap.Trainings[1].Status)
	assert.True(t, snap.IoTProjects[0].Done())

	// Slots are fixed: the collections never grow.
	assert.Len(t, snap.Certifications, 2)
	assert.Len(t, snap.Trainings, 4)
	assert.Len(t, snap.IoTProjects, 2)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	service, _ := newVault(t)

	book, _ := service.AddBook(ctx, core.Book{Title: "Dune"})
	service.SetBookStatus(ctx, book.ID, core.BookRead)
	require.True(t, service.ToggleGoal(ctx, "fin-per-1"))

	archive, err := service.Export(ctx)
	require.NoError(t, err)

	// Wreck the state, then restore from the archive.
	other, _ := newVault(t)
	require.NoError(t, other.Import(ctx, archive))

	snap := other.Snapshot()
	require.Len(t, snap.Books, 1)
	assert.Equal(t, "Dune", snap.Books[0].Title)
	assert.Equal(t, service.GlobalProgress(), other.GlobalProgress())
}

func TestImportPartialArchive(t *testing.T) {
	ctx := context.Background()
	service, _ := newVault(t)

	service.AddBook(ctx, core.Book{Title: "Dune"})

	// An archive naming only goals leaves the other collections alone.
	require.NoError(t, service.Import(ctx, []byte(`{"goals": []}`)))

	snap := service.Snapshot()
	assert.Empty(t, snap.Goals)
	assert.Len(t, snap.Books, 1)
}

func TestImportCorruptArchive(t *testing.T) {
	ctx := context.Background()
	service, _ := newVault(t)
	before := service.Snapshot()

	err := service.Import(ctx, []byte(`{"goals": [`))
	require.ErrorIs(t, err, core.ErrCorruptImport)

	err = service.Import(ctx, []byte(`{"goals": {"not": "a list"}}`))
	require.ErrorIs(t, err, core.ErrCorruptImport)

	assert.Equal(t, len(before.Goals), len(service.Snapshot().Goals))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	service, store := newVault(t)

	service.AddBook(ctx, core.Book{Title: "Dune"})
	service.ToggleGoal(ctx, "fin-per-1")
	service.SetDarebeeURL(ctx, "https://darebee.com")

	require.NoError(t, service.Reset(ctx))

	snap := service.Snapshot()
	assert.Empty(t, snap.Books)
	assert.Equal(t, "", snap.DarebeeURL)
	assert.Len(t, snap.Goals, 87)
	assert.Equal(t, 0, service.GlobalProgress())

	// Reopening sees the reset state.
	reopened := core.NewService(store, discard())
	reopened.Load(ctx)
	assert.Empty(t, reopened.Snapshot().Books)
}

func TestOnChangeNotifications(t *testing.T) {
	ctx := context.Background()
	store := fs.NewStore(fs.Config{Path: t.TempDir(), Logger: discard()})
	require.NoError(t, store.Initialize(ctx))

	var keys []string
	service := core.NewService(store, discard())
	service.SetAutoSeed(false)
	service.SetOnChange(func(key string, value any) {
		keys = append(keys, key)
	})
	service.Load(ctx)

	service.AddBook(ctx, core.Book{Title: "Dune"})
	service.SetDarebeeURL(ctx, "https://darebee.com")

	assert.Equal(t, []string{core.KeyBooks, core.KeyDarebeeURL}, keys)
}

func TestGoalsAccessorFilters(t *testing.T) {
	service, _ := newVault(t)

	finance := service.Goals(core.CategoryFinance)
	assert.Len(t, finance, 36)
	for _, g := range finance {
		assert.Equal(t, core.CategoryFinance, g.Category)
	}
}
