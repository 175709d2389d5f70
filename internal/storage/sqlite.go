package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agric-empower/portal/internal/platform/timeutil"
)

const localStorageTable = `
CREATE TABLE IF NOT EXISTS local_storage (
	client_id  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (client_id, key)
);`

// SQLiteStore keeps client stores in a single SQLite file.
type SQLiteStore struct {
	db    *sql.DB
	quota int
	now   timeutil.Clock
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string, quota int) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer keeps quota checks and upserts serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(localStorageTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create local_storage table: %w", err)
	}
	return &SQLiteStore{db: db, quota: quota, now: timeutil.SystemClock}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *SQLiteStore) Get(ctx context.Context, clientID, key string) (string, error) {
	if clientID == "" {
		return "", ErrInvalidClient
	}
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM local_storage WHERE client_id = ? AND key = ?", clientID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

// Set upserts key inside a transaction that also enforces the quota.
func (s *SQLiteStore) Set(ctx context.Context, clientID, key, value string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if s.quota > 0 {
		var used, current int
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))), 0),
			        COALESCE(SUM(CASE WHEN key = ? THEN LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB)) ELSE 0 END), 0)
			   FROM local_storage WHERE client_id = ?`, key, clientID).Scan(&used, &current)
		if err != nil {
			return fmt.Errorf("usage: %w", err)
		}
		if used-current+len(key)+len(value) > s.quota {
			return ErrQuotaExceeded
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO local_storage (client_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		clientID, key, value, s.now().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return tx.Commit()
}

// Remove deletes key. Removing an absent key is not an error.
func (s *SQLiteStore) Remove(ctx context.Context, clientID, key string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM local_storage WHERE client_id = ? AND key = ?", clientID, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Clear deletes every row owned by clientID.
func (s *SQLiteStore) Clear(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM local_storage WHERE client_id = ?", clientID); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
