// ABOUTME: Read-only storage statistics computed by scanning all records
// ABOUTME: No running counters; a full scan is fine at this corpus scale
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harper/mailvec/internal/models"
)

// Stats aggregates record count, per-category counts, the timestamp range,
// and an approximation of bytes on disk (vector blobs plus source text).
func (s *RecordStore) Stats() (*models.StoreStats, error) {
	rows, err := s.db.Query(`
		SELECT category, timestamp, length(vector), length(source_text)
		FROM embeddings
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying stats: %v", models.ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	stats := &models.StoreStats{
		ByCategory: make(map[models.Category]int),
	}

	for rows.Next() {
		var (
			category  sql.NullString
			timestamp sql.NullTime
			vecBytes  int64
			textBytes int64
		)
		if err := rows.Scan(&category, &timestamp, &vecBytes, &textBytes); err != nil {
			return nil, fmt.Errorf("%w: scanning stats row: %v", models.ErrStorage, err)
		}

		stats.Count++
		if category.Valid && category.String != "" {
			stats.ByCategory[models.Category(category.String)]++
		}
		if timestamp.Valid {
			ts := timestamp.Time
			if stats.OldestTimestamp.IsZero() || ts.Before(stats.OldestTimestamp) {
				stats.OldestTimestamp = ts
			}
			if ts.After(stats.NewestTimestamp) {
				stats.NewestTimestamp = ts
			}
		}
		stats.ApproximateStorageBytes += vecBytes + textBytes
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating stats: %v", models.ErrStorage, err)
	}
	return stats, nil
}
