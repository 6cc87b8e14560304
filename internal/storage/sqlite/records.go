// ABOUTME: Embedding record persistence for SQLite
// ABOUTME: Append-only writes, vector BLOB codec, and the store dimension stamp
package sqlite

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/harper/mailvec/internal/models"
)

// RecordStore handles embedding record persistence. Writes are append-only:
// a message may accumulate multiple records, and the store never dedupes by
// message id. The first write stamps the store with its vector dimension;
// any later write with a different dimension is rejected rather than mixing
// incomparable vectors in one store.
type RecordStore struct {
	db *DB
}

// NewRecordStore creates a new RecordStore
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

// Put inserts a new embedding record. The write either fully commits or the
// caller gets an error; there are no partial writes.
func (s *RecordStore) Put(rec *models.EmbeddingRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: record id is empty", models.ErrValidation)
	}
	if rec.MessageID == "" {
		return fmt.Errorf("%w: message id is empty", models.ErrValidation)
	}
	if len(rec.Vector) == 0 {
		return fmt.Errorf("%w: vector is empty", models.ErrValidation)
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", models.ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := stampDimension(tx, len(rec.Vector)); err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO embeddings (id, message_id, source_text, vector, subject, sender, timestamp, thread_id, category, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.MessageID, rec.SourceText, vectorToBlob(rec.Vector),
		rec.Metadata.Subject, rec.Metadata.Sender, nullTime(rec.Metadata.Timestamp),
		nullString(rec.Metadata.ThreadID), nullString(string(rec.Metadata.Category)),
		nullString(rec.Metadata.Priority), createdAt)
	if err != nil {
		return fmt.Errorf("%w: inserting record: %v", models.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", models.ErrStorage, err)
	}
	return nil
}

// stampDimension records the store's vector dimension on first write and
// rejects writes that disagree with it.
func stampDimension(tx *sql.Tx, dim int) error {
	var value string
	err := tx.QueryRow(`SELECT value FROM store_meta WHERE key = ?`, MetaKeyDimension).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.Exec(`INSERT INTO store_meta (key, value) VALUES (?, ?)`,
			MetaKeyDimension, strconv.Itoa(dim)); err != nil {
			return fmt.Errorf("%w: stamping dimension: %v", models.ErrStorage, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("%w: reading dimension stamp: %v", models.ErrStorage, err)
	}

	stamped, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: corrupt dimension stamp %q", models.ErrStorage, value)
	}
	if stamped != dim {
		return fmt.Errorf("%w: store holds %d-dimension vectors, got %d", models.ErrDimensionMismatch, stamped, dim)
	}
	return nil
}

// Dimension returns the store's stamped vector dimension, or 0 for an empty
// (unstamped) store.
func (s *RecordStore) Dimension() (int, error) {
	value, err := s.GetMeta(MetaKeyDimension)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	dim, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: corrupt dimension stamp %q", models.ErrStorage, value)
	}
	return dim, nil
}

// GetMeta reads a store_meta value; missing keys return the empty string.
func (s *RecordStore) GetMeta(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM store_meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading store meta: %v", models.ErrStorage, err)
	}
	return value, nil
}

// SetMeta writes a store_meta value, overwriting any previous one.
func (s *RecordStore) SetMeta(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO store_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: writing store meta: %v", models.ErrStorage, err)
	}
	return nil
}

// GetAll returns every record in insertion order.
func (s *RecordStore) GetAll() ([]models.EmbeddingRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, message_id, source_text, vector, subject, sender, timestamp, thread_id, category, priority, created_at
		FROM embeddings
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying records: %v", models.ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	return scanRecords(rows)
}

// GetByMessageID returns all records for one message in insertion order.
func (s *RecordStore) GetByMessageID(messageID string) ([]models.EmbeddingRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, message_id, source_text, vector, subject, sender, timestamp, thread_id, category, priority, created_at
		FROM embeddings
		WHERE message_id = ?
		ORDER BY created_at ASC, id ASC
	`, messageID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying records: %v", models.ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	return scanRecords(rows)
}

// DeleteByMessageID removes every record for the message. Deleting a message
// with no records is a no-op, not an error.
func (s *RecordStore) DeleteByMessageID(messageID string) error {
	_, err := s.db.Exec(`DELETE FROM embeddings WHERE message_id = ?`, messageID)
	if err != nil {
		return fmt.Errorf("%w: deleting records: %v", models.ErrStorage, err)
	}
	return nil
}

// Clear removes all records and resets the store stamps, so the next write
// may establish a new dimension.
func (s *RecordStore) Clear() error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", models.ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM embeddings`); err != nil {
		return fmt.Errorf("%w: clearing records: %v", models.ErrStorage, err)
	}
	if _, err := tx.Exec(`DELETE FROM store_meta`); err != nil {
		return fmt.Errorf("%w: clearing store meta: %v", models.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", models.ErrStorage, err)
	}
	return nil
}

// scanRecords scans rows into embedding records
func scanRecords(rows *sql.Rows) ([]models.EmbeddingRecord, error) {
	var records []models.EmbeddingRecord

	for rows.Next() {
		var (
			rec       models.EmbeddingRecord
			blob      []byte
			timestamp sql.NullTime
			threadID  sql.NullString
			category  sql.NullString
			priority  sql.NullString
			subject   sql.NullString
			sender    sql.NullString
		)

		if err := rows.Scan(&rec.ID, &rec.MessageID, &rec.SourceText, &blob,
			&subject, &sender, &timestamp, &threadID, &category, &priority, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning record: %v", models.ErrStorage, err)
		}

		rec.Vector = blobToVector(blob)
		rec.Metadata = models.RecordMetadata{
			Subject:  subject.String,
			Sender:   sender.String,
			ThreadID: threadID.String,
			Category: models.Category(category.String),
			Priority: priority.String,
		}
		if timestamp.Valid {
			rec.Metadata.Timestamp = timestamp.Time
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating records: %v", models.ErrStorage, err)
	}
	return records, nil
}

// vectorToBlob converts a float64 slice to binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
