package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/vaultos/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteBackend keeps the state document in a single-row-per-key table, the
// on-disk stand-in for origin-scoped local storage.
type SQLiteBackend struct {
	db  *sql.DB
	key string
	now func() time.Time
}

func NewSQLiteBackend(db *sql.DB, key string) (*SQLiteBackend, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if key == "" {
		key = LocalStateKey
	}
	return &SQLiteBackend{db: db, key: key, now: time.Now}, nil
}

func OpenSQLite(path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	backend, err := NewSQLiteBackend(db, LocalStateKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return backend, nil
}

func (b *SQLiteBackend) Name() string { return "local" }

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Load(ctx context.Context) (model.AppState, error) {
	var raw string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM state_entries WHERE key = ?`, b.key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AppState{}, ErrNotFound
		}
		return model.AppState{}, fmt.Errorf("read %s: %w", b.key, err)
	}
	return decodeState([]byte(raw))
}

func (b *SQLiteBackend) Save(ctx context.Context, state model.AppState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	_, err = b.db.ExecContext(ctx, `
		INSERT INTO state_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		b.key, string(payload), b.now().UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", b.key, err)
	}
	return nil
}
