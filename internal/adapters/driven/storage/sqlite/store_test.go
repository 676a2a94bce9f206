package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "zuc.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".zuc", "data", "zuc.db"), store.Path())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	for _, table := range []string{"flags", "events", "counters"} {
		var tableExists int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&tableExists)
		require.NoError(t, err)
		assert.Equal(t, 1, tableExists, "table %s should exist", table)
	}
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.FlagStore().SetFlag(ctx, "welcome", true))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	value, found, err := store.FlagStore().GetFlag(ctx, "welcome")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, value)

	var migrations int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&migrations))
	assert.Equal(t, 2, migrations)
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestStore_InterfaceGetters(t *testing.T) {
	store := setupTestStore(t)

	assert.NotNil(t, store.FlagStore())
	assert.NotNil(t, store.EventStore())
	assert.NotNil(t, store.CounterStore())
}

// ==================== FlagStore Tests ====================

func TestFlagStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	flags := setupTestStore(t).FlagStore()

	_, found, err := flags.GetFlag(ctx, "is-shown-welcome-screen-v1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, flags.SetFlag(ctx, "is-shown-welcome-screen-v1", true))
	value, found, err := flags.GetFlag(ctx, "is-shown-welcome-screen-v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, value)

	require.NoError(t, flags.SetFlag(ctx, "is-shown-welcome-screen-v1", false))
	value, found, err = flags.GetFlag(ctx, "is-shown-welcome-screen-v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, value)
}

func TestFlagStore_EmptyKey(t *testing.T) {
	flags := setupTestStore(t).FlagStore()

	err := flags.SetFlag(context.Background(), "", true)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ==================== EventStore Tests ====================

func TestEventStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	events := setupTestStore(t).EventStore()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, events.Append(ctx, domain.AnalyticsEvent{
		ID: "e1", SessionID: "s", Name: domain.EventConvert, Time: base,
		Properties: map[string]any{domain.PropMethod: "zg2uni", domain.PropInputLength: 4},
	}))
	require.NoError(t, events.Append(ctx, domain.AnalyticsEvent{
		ID: "e2", SessionID: "s", Name: domain.EventShare, Time: base.Add(time.Second),
	}))
	require.NoError(t, events.Append(ctx, domain.AnalyticsEvent{
		ID: "e3", SessionID: "s", Name: domain.EventConvert, Time: base.Add(2 * time.Second),
	}))

	all, err := events.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "e3", all[0].ID)
	assert.Equal(t, "e1", all[2].ID)
	assert.Equal(t, "zg2uni", all[2].Properties[domain.PropMethod])
	assert.Equal(t, float64(4), all[2].Properties[domain.PropInputLength])
	assert.True(t, base.Equal(all[2].Time))
	assert.Nil(t, all[1].Properties)

	latest, err := events.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "e2", latest[1].ID)

	n, err := events.CountByName(ctx, domain.EventConvert)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestEventStore_Validation(t *testing.T) {
	ctx := context.Background()
	events := setupTestStore(t).EventStore()

	assert.ErrorIs(t, events.Append(ctx, domain.AnalyticsEvent{ID: "x"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, events.Append(ctx, domain.AnalyticsEvent{Name: "x"}), domain.ErrInvalidInput)

	require.NoError(t, events.Append(ctx, domain.AnalyticsEvent{ID: "dup", Name: "x"}))
	assert.Error(t, events.Append(ctx, domain.AnalyticsEvent{ID: "dup", Name: "x"}))
}

// ==================== CounterStore Tests ====================

func TestCounterStore(t *testing.T) {
	ctx := context.Background()
	counters := setupTestStore(t).CounterStore()

	n, err := counters.Count(ctx, "uses")
	require.NoError(t, err)
	assert.Zero(t, n)

	for want := 1; want <= 3; want++ {
		n, err = counters.Increment(ctx, "uses")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, err = counters.Count(ctx, "uses")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, counters.Reset(ctx, "uses"))
	n, err = counters.Count(ctx, "uses")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = counters.Increment(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
