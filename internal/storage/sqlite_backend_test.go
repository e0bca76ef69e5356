package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/sandeepkv93/vaultos/internal/model"
)

func setupSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	backend, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "vaultos-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestSQLiteLoadMissingReturnsNotFound(t *testing.T) {
	backend := setupSQLite(t)
	_, err := backend.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteSaveOverwritesWholeDocument(t *testing.T) {
	backend := setupSQLite(t)
	ctx := context.Background()
	backend.now = func() time.Time { return time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC) }

	first := model.DefaultState()
	first.Tasks["1"] = true
	_ = first.Record(model.LogDecision, model.LogEntry{ID: "e1", Idea: "dark mode", Decision: model.TagAdopted, Timestamp: "t1"})
	if err := backend.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := model.DefaultState()
	_ = second.Record(model.LogParking, model.LogEntry{ID: "e2", Idea: "blockchain", Decision: model.TagDiscarded, Timestamp: "t2"})
	if err := backend.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Fatalf("loaded state mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteSaveFailureSurfacesError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO state_entries").WillReturnError(errors.New("disk full"))

	backend, err := NewSQLiteBackend(db, "")
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	if err := backend.Save(context.Background(), model.DefaultState()); err == nil {
		t.Fatal("expected save error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNewSQLiteBackendRejectsNilDB(t *testing.T) {
	if _, err := NewSQLiteBackend(nil, LocalStateKey); err == nil {
		t.Fatal("expected error for nil db")
	}
}
