// ABOUTME: Tests for database connection and lifecycle
// ABOUTME: Verifies file-backed open, persistence across reopen, and defaults
package sqlite

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/mailvec/internal/models"
)

func TestOpen_CreatesFileAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mailvec.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.Path() != path {
		t.Errorf("Path() = %v, want %v", db.Path(), path)
	}

	// Schema is in place: a write through the store succeeds
	store := NewRecordStore(db)
	rec := &models.EmbeddingRecord{ID: "emb_1", MessageID: "msg_1", Vector: []float64{1, 0}}
	if err := store.Put(rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mailvec.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	store := NewRecordStore(db)
	rec := &models.EmbeddingRecord{ID: "emb_1", MessageID: "msg_1", SourceText: "hello", Vector: []float64{1, 0, 0}}
	if err := store.Put(rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store = NewRecordStore(db)
	records, err := store.GetAll()
	if err != nil {
		t.Fatalf("GetAll() after reopen error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "emb_1" {
		t.Errorf("records after reopen = %+v, want the stored record", records)
	}

	// The dimension stamp survives too
	dim, err := store.Dimension()
	if err != nil {
		t.Fatalf("Dimension() error = %v", err)
	}
	if dim != 3 {
		t.Errorf("Dimension() after reopen = %d, want 3", dim)
	}
}

func TestDefaultDataDir_XDGOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-test")

	dir := DefaultDataDir()
	if dir != filepath.Join("/tmp/xdg-test", "mailvec") {
		t.Errorf("DefaultDataDir() = %v, want /tmp/xdg-test/mailvec", dir)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path := DefaultDBPath()
	if !strings.HasSuffix(path, filepath.Join("mailvec", "mailvec.db")) {
		t.Errorf("DefaultDBPath() = %v, want .../mailvec/mailvec.db", path)
	}
}
