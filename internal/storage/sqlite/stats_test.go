// ABOUTME: Tests for store statistics aggregation
// ABOUTME: Covers counts, category histogram, timestamp range, and size estimate
package sqlite

import (
	"testing"
	"time"

	"github.com/harper/mailvec/internal/models"
)

func TestStats_EmptyStore(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()
	store := NewRecordStore(db)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Count != 0 {
		t.Errorf("Count = %d, want 0", stats.Count)
	}
	if len(stats.ByCategory) != 0 {
		t.Errorf("ByCategory = %v, want empty", stats.ByCategory)
	}
	if !stats.OldestTimestamp.IsZero() {
		t.Errorf("OldestTimestamp = %v, want zero", stats.OldestTimestamp)
	}
	if stats.ApproximateStorageBytes != 0 {
		t.Errorf("ApproximateStorageBytes = %d, want 0", stats.ApproximateStorageBytes)
	}
}

func TestStats_Aggregates(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()
	store := NewRecordStore(db)

	put := func(id string, category models.Category, ts time.Time) {
		rec := testRecord(id, "msg_"+id, []float64{1, 0, 0})
		rec.Metadata.Category = category
		rec.Metadata.Timestamp = ts
		if err := store.Put(rec); err != nil {
			t.Fatalf("Put(%s) error = %v", id, err)
		}
	}

	oldest := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	newest := time.Date(2026, 8, 20, 17, 30, 0, 0, time.UTC)
	put("a", models.CategoryWork, newest)
	put("b", models.CategoryWork, oldest)
	put("c", models.CategoryFinance, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.Count != 3 {
		t.Errorf("Count = %d, want 3", stats.Count)
	}
	if stats.ByCategory[models.CategoryWork] != 2 {
		t.Errorf("ByCategory[work] = %d, want 2", stats.ByCategory[models.CategoryWork])
	}
	if stats.ByCategory[models.CategoryFinance] != 1 {
		t.Errorf("ByCategory[finance] = %d, want 1", stats.ByCategory[models.CategoryFinance])
	}
	if !stats.OldestTimestamp.Equal(oldest) {
		t.Errorf("OldestTimestamp = %v, want %v", stats.OldestTimestamp, oldest)
	}
	if !stats.NewestTimestamp.Equal(newest) {
		t.Errorf("NewestTimestamp = %v, want %v", stats.NewestTimestamp, newest)
	}

	// 3 vectors of 3 float64s plus 3 copies of the source text
	wantBytes := int64(3*(3*8) + 3*len("some email text"))
	if stats.ApproximateStorageBytes != wantBytes {
		t.Errorf("ApproximateStorageBytes = %d, want %d", stats.ApproximateStorageBytes, wantBytes)
	}
}

func TestStats_SkipsUnsetCategory(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()
	store := NewRecordStore(db)

	rec := testRecord("emb_1", "msg_1", []float64{1, 0})
	rec.Metadata.Category = ""
	if err := store.Put(rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Count != 1 {
		t.Errorf("Count = %d, want 1", stats.Count)
	}
	if len(stats.ByCategory) != 0 {
		t.Errorf("ByCategory = %v, want empty for uncategorized records", stats.ByCategory)
	}
}
