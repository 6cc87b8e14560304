// ABOUTME: Similarity engine orchestrating encode, filter, score, rank, cache
// ABOUTME: The single public operation surface over the embedding store
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harper/mailvec/internal/encoder"
	"github.com/harper/mailvec/internal/models"
	"github.com/harper/mailvec/internal/storage/sqlite"
)

// Engine ties the encoder, the record store, and the result cache together.
// Construct one per process and pass it by reference; there is no package
// singleton.
type Engine struct {
	store *sqlite.RecordStore
	enc   encoder.Encoder
	cache *Cache
}

// NewEngine creates a similarity engine. A nil cache gets the default TTL.
func NewEngine(store *sqlite.RecordStore, enc encoder.Encoder, cache *Cache) *Engine {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Engine{
		store: store,
		enc:   enc,
		cache: cache,
	}
}

// StoreMessage encodes text for a message and appends an embedding record.
// When text is empty, the message's subject and body are encoded. Returns
// the new record id. Two calls for the same message both persist; records
// accumulate rather than replace.
func (e *Engine) StoreMessage(ctx context.Context, msg *models.EmailMessage, text string, category models.Category, priority string) (string, error) {
	if msg == nil || msg.ID == "" {
		return "", fmt.Errorf("%w: message id is required", models.ErrValidation)
	}
	if text == "" {
		text = msg.EmbeddingText()
	}
	if text == "" {
		return "", fmt.Errorf("%w: nothing to encode for message %s", models.ErrValidation, msg.ID)
	}
	// Persist the canonical category, not the caller's spelling.
	category, err := models.ParseCategory(string(category))
	if err != nil {
		return "", err
	}

	vector, err := e.enc.Encode(ctx, text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrEncoding, err)
	}

	rec := &models.EmbeddingRecord{
		ID:         fmt.Sprintf("emb_%s", uuid.New().String()),
		MessageID:  msg.ID,
		SourceText: text,
		Vector:     vector,
		Metadata: models.RecordMetadata{
			Subject:   msg.Subject,
			Sender:    msg.From,
			Timestamp: msg.Timestamp,
			ThreadID:  msg.ThreadID,
			Category:  category,
			Priority:  priority,
		},
		CreatedAt: time.Now(),
	}

	if err := e.store.Put(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Search runs the full pipeline: cache check, encode, candidate retrieval,
// predicate filtering, cosine scoring, stable ranking, thresholding, cache
// write. TotalFound counts the whole thresholded set before the limit so
// callers can tell more results exist without a second query.
func (e *Engine) Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error) {
	start := time.Now()

	q.Normalize()
	if err := q.Validate(); err != nil {
		return models.SearchResult{}, err
	}

	if cached, ok := e.cache.Lookup(q.Text); ok {
		cached.ProcessingTime = time.Since(start)
		return cached, nil
	}

	queryVector, err := e.enc.Encode(ctx, q.Text)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %v", models.ErrEncoding, err)
	}

	records, err := e.store.GetAll()
	if err != nil {
		return models.SearchResult{}, err
	}

	// Filter before scoring so the vector math only runs on the relevant
	// subset.
	scored := make([]models.SimilarityResult, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !matchesQuery(rec, &q) {
			continue
		}
		if len(rec.Vector) != len(queryVector) {
			return models.SearchResult{}, fmt.Errorf("%w: record %s has %d dimensions, query has %d",
				models.ErrDimensionMismatch, rec.ID, len(rec.Vector), len(queryVector))
		}

		sim := Cosine(queryVector, rec.Vector)
		scored = append(scored, models.SimilarityResult{
			MessageID:  rec.MessageID,
			Similarity: sim,
			Distance:   1 - sim,
			Text:       rec.SourceText,
			Metadata:   rec.Metadata,
		})
	}

	// Stable sort: ties keep retrieval order, no secondary key.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	passed := make([]models.SimilarityResult, 0, len(scored))
	for _, r := range scored {
		if r.Similarity >= q.Threshold {
			passed = append(passed, r)
		}
	}
	totalFound := len(passed)
	if len(passed) > q.Limit {
		passed = passed[:q.Limit]
	}

	result := models.SearchResult{
		Results:        passed,
		TotalFound:     totalFound,
		Query:          q.Text,
		ProcessingTime: time.Since(start),
	}

	e.cache.Store(q.Text, result)
	return result, nil
}

// matchesQuery applies the metadata predicates: exact category, sender
// case-insensitive substring, inclusive date range.
func matchesQuery(rec *models.EmbeddingRecord, q *models.SearchQuery) bool {
	if q.Category != "" && rec.Metadata.Category != q.Category {
		return false
	}
	if q.Sender != "" && !strings.Contains(strings.ToLower(rec.Metadata.Sender), strings.ToLower(q.Sender)) {
		return false
	}
	if q.DateRange != nil {
		ts := rec.Metadata.Timestamp
		if ts.Before(q.DateRange.Start) || ts.After(q.DateRange.End) {
			return false
		}
	}
	return true
}

// DeleteMessage removes every record for the message. Cached search results
// that referenced it stay until their TTL expires; the cache is a bounded-
// staleness layer, not a consistency one.
func (e *Engine) DeleteMessage(messageID string) error {
	return e.store.DeleteByMessageID(messageID)
}

// Reset clears the store and invalidates the cache together, so a cleared
// store never serves pre-clear results past the reset.
func (e *Engine) Reset() error {
	if err := e.store.Clear(); err != nil {
		return err
	}
	e.cache.Clear()
	return nil
}

// Stats reports storage aggregates.
func (e *Engine) Stats() (*models.StoreStats, error) {
	return e.store.Stats()
}

// Dimension returns the active encoder's output dimension.
func (e *Engine) Dimension() int {
	return e.enc.Dimension()
}
