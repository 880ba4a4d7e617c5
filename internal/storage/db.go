package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	liftlog "github.com/claude/liftlog"
)

// Document keys. Each record class lives in one JSON document, mirroring the
// storage layout of the original browser app.
const (
	docLogs     = "logs"
	docSession  = "session"
	docProgram  = "program"
	docSettings = "settings"
)

const dbFileName = "liftlog.db"

// Store is the local document store backing all persisted state. It wraps a
// single SQLite database with one documents table.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// DBPath returns the SQLite file path inside the given data directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, dbFileName)
}

// RunMigrations applies all pending migrations to the database in dataDir,
// creating the directory and database file if needed.
func RunMigrations(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dataDir, err)
	}

	src, err := iofs.New(liftlog.MigrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+DBPath(dataDir))
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Open opens the store in dataDir. RunMigrations must have been called first.
func Open(dataDir string, log *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", DBPath(dataDir))
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging store: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// loadDoc unmarshals the document under key into v. A missing document
// returns found=false. A corrupt document is logged and treated as missing so
// a bad payload never breaks the logging flow.
func (s *Store) loadDoc(ctx context.Context, key string, v any) (found bool, err error) {
	var raw string
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading document %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.log.Warn("corrupt document, treating as empty", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// saveDoc marshals v and upserts it under key.
func (s *Store) saveDoc(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("writing document %s: %w", key, err)
	}
	return nil
}

// deleteDoc removes the document under key. Removing a missing key is a no-op.
func (s *Store) deleteDoc(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting document %s: %w", key, err)
	}
	return nil
}
