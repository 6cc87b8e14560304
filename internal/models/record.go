// ABOUTME: Embedding record and metadata models for vector storage
// ABOUTME: Defines EmbeddingRecord, RecordMetadata, and the closed category set
package models

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a stored message. The set is closed: anything the
// caller sends that is not a known category is rejected at the write
// boundary rather than stored as free text.
type Category string

const (
	CategoryWork       Category = "work"
	CategoryPersonal   Category = "personal"
	CategoryFinance    Category = "finance"
	CategoryTravel     Category = "travel"
	CategoryNewsletter Category = "newsletter"
	CategoryOther      Category = "other"
)

// Categories lists all valid categories.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryFinance,
	CategoryTravel,
	CategoryNewsletter,
	CategoryOther,
}

// ParseCategory validates a category string. Empty input means "unset" and
// parses to the empty Category; unknown values are an error.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", nil
	}
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}

// RecordMetadata is the denormalized message metadata stored alongside each
// vector so filtering and display need no join back to the mail source.
type RecordMetadata struct {
	Subject   string    `json:"subject"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	ThreadID  string    `json:"thread_id,omitempty"`
	Category  Category  `json:"category,omitempty"`
	Priority  string    `json:"priority,omitempty"`
}

// EmbeddingRecord is the persisted unit: one encoded text with its vector.
// Records are immutable once written except for deletion. MessageID is not
// unique; re-embedding a message appends a new record.
type EmbeddingRecord struct {
	ID         string         `json:"id"`
	MessageID  string         `json:"message_id"`
	SourceText string         `json:"source_text"`
	Vector     []float64      `json:"vector"`
	Metadata   RecordMetadata `json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
}

// StoreStats is a read-only aggregate over the record store.
type StoreStats struct {
	Count                   int              `json:"count"`
	ByCategory              map[Category]int `json:"by_category"`
	OldestTimestamp         time.Time        `json:"oldest_timestamp"`
	NewestTimestamp         time.Time        `json:"newest_timestamp"`
	ApproximateStorageBytes int64            `json:"approximate_storage_bytes"`
}
