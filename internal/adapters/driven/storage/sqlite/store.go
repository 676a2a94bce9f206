package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/myanmartools/zuc-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// dbFile is the database file name inside the data directory.
const dbFile = "zuc.db"

// Store is a unified SQLite-based storage that provides access to
// all store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.zuc/data/zuc.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".zuc", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)

	// WAL lets the TUI and a concurrent CLI invocation share the file.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
		now:  func() time.Time { return time.Now().UTC() },
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FlagStore returns a FlagStore interface backed by this store.
func (s *Store) FlagStore() driven.FlagStore {
	return &flagStore{store: s}
}

// EventStore returns an EventStore interface backed by this store.
func (s *Store) EventStore() driven.EventStore {
	return &eventStore{store: s}
}

// CounterStore returns a CounterStore interface backed by this store.
func (s *Store) CounterStore() driven.CounterStore {
	return &counterStore{store: s}
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("getting schema version: %w", err)
	}
	return version, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	currentVersion, err := s.SchemaVersion(context.Background())
	if err != nil {
		return err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) applyMigration(version int, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(content); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Flag Store ====================

// flagStore implements driven.FlagStore.
type flagStore struct {
	store *Store
}

var _ driven.FlagStore = (*flagStore)(nil)

// GetFlag returns the flag value and whether it exists.
func (s *flagStore) GetFlag(ctx context.Context, key string) (value, found bool, err error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT value FROM flags WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("scanning flag: %w", err)
	}
	return value, true, nil
}

// SetFlag stores or updates a flag.
func (s *flagStore) SetFlag(ctx context.Context, key string, value bool) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO flags (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, s.store.now())
	if err != nil {
		return fmt.Errorf("saving flag: %w", err)
	}
	return nil
}

// ==================== Event Store ====================

// eventStore implements driven.EventStore.
type eventStore struct {
	store *Store
}

var _ driven.EventStore = (*eventStore)(nil)

// Append stores an event.
func (s *eventStore) Append(ctx context.Context, event domain.AnalyticsEvent) error {
	if event.Name == "" || event.ID == "" {
		return domain.ErrInvalidInput
	}

	propsJSON, err := json.Marshal(event.Properties)
	if err != nil {
		return fmt.Errorf("marshalling properties: %w", err)
	}

	created := event.Time
	if created.IsZero() {
		created = s.store.now()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO events (id, session_id, name, properties, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, event.ID, event.SessionID, event.Name, string(propsJSON), created.UTC())
	if err != nil {
		return fmt.Errorf("saving event: %w", err)
	}
	return nil
}

// List returns up to limit events, newest first. A limit <= 0 returns all.
func (s *eventStore) List(ctx context.Context, limit int) ([]domain.AnalyticsEvent, error) {
	query := `
		SELECT id, session_id, name, properties, created_at
		FROM events ORDER BY created_at DESC, rowid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []domain.AnalyticsEvent //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ev domain.AnalyticsEvent
		var propsJSON sql.NullString
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Name, &propsJSON, &ev.Time); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		if propsJSON.Valid && propsJSON.String != jsonNull {
			if err := json.Unmarshal([]byte(propsJSON.String), &ev.Properties); err != nil {
				return nil, fmt.Errorf("unmarshalling properties: %w", err)
			}
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// CountByName counts stored events with the given name.
func (s *eventStore) CountByName(ctx context.Context, name string) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events WHERE name = ?", name)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return count, nil
}

// ==================== Counter Store ====================

// counterStore implements driven.CounterStore.
type counterStore struct {
	store *Store
}

var _ driven.CounterStore = (*counterStore)(nil)

// Increment adds one to the counter and returns the new value.
func (s *counterStore) Increment(ctx context.Context, key string) (int, error) {
	if key == "" {
		return 0, domain.ErrInvalidInput
	}

	var value int
	row := s.store.db.QueryRowContext(ctx, `
		INSERT INTO counters (key, value, updated_at)
		VALUES (?, 1, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = value + 1,
			updated_at = excluded.updated_at
		RETURNING value
	`, key, s.store.now())
	if err := row.Scan(&value); err != nil {
		return 0, fmt.Errorf("incrementing counter: %w", err)
	}
	return value, nil
}

// Count returns the counter value.
func (s *counterStore) Count(ctx context.Context, key string) (int, error) {
	var value int
	row := s.store.db.QueryRowContext(ctx, "SELECT value FROM counters WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading counter: %w", err)
	}
	return value, nil
}

// Reset sets the counter to zero.
func (s *counterStore) Reset(ctx context.Context, key string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM counters WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("resetting counter: %w", err)
	}
	return nil
}
