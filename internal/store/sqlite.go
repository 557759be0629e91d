package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/triagelabs/healthbot/internal/domain"
	"github.com/triagelabs/healthbot/internal/shared"
)

const (
	sqliteRetryAttempts = 3
	sqliteRetryBase     = 100 * time.Millisecond
)

// SQLiteStore implements Store on a local SQLite database. Entries are
// ordered by rowid, which preserves append order.
type SQLiteStore struct {
	db      *sql.DB
	writeMu sync.Mutex // serializes writers to keep SQLITE_BUSY rare
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite creates a SQLite-backed history store at dbPath.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		user_message TEXT NOT NULL,
		reply TEXT NOT NULL,
		ai INTEGER NOT NULL DEFAULT 0
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Append inserts one exchange at the end of the history.
func (s *SQLiteStore) Append(ctx context.Context, entry domain.Entry) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err := shared.RetrySQLite(sqliteRetryAttempts, sqliteRetryBase, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO history (timestamp, user_message, reply, ai) VALUES (?, ?, ?, ?)`,
			entry.Timestamp.UTC().Format(time.RFC3339Nano), entry.User, entry.Reply, entry.AI,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// List returns every entry in append order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT timestamp, user_message, reply, ai FROM history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close history rows", "error", closeErr)
		}
	}()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		var entry domain.Entry
		var ts string

		if err := rows.Scan(&ts, &entry.User, &entry.Reply, &entry.AI); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entry.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse history timestamp %q: %w", ts, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}

	return entries, nil
}

// Clear deletes every entry.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err := shared.RetrySQLite(sqliteRetryAttempts, sqliteRetryBase, func() error {
		_, err := s.db.ExecContext(ctx, `DELETE FROM history`)
		return err
	})
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
