// ABOUTME: Search query and result models for similarity search
// ABOUTME: Defines SearchQuery validation and the SimilarityResult response shape
package models

import (
	"fmt"
	"time"
)

const (
	// DefaultSearchLimit is the result page size when the caller gives none.
	DefaultSearchLimit = 10
	// DefaultSearchThreshold is the minimum similarity when the caller gives none.
	DefaultSearchThreshold = 0.3
)

// DateRange is an inclusive [Start, End] window over record timestamps.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SearchQuery is an ephemeral similarity-search request. Use NewSearchQuery
// for defaulted Limit and Threshold; a zero Threshold built by hand is taken
// as an explicit "no threshold".
type SearchQuery struct {
	Text      string     `json:"text"`
	Limit     int        `json:"limit"`
	Threshold float64    `json:"threshold"`
	Category  Category   `json:"category,omitempty"`
	Sender    string     `json:"sender,omitempty"`
	DateRange *DateRange `json:"date_range,omitempty"`
}

// NewSearchQuery builds a query with default limit and threshold.
func NewSearchQuery(text string) SearchQuery {
	return SearchQuery{
		Text:      text,
		Limit:     DefaultSearchLimit,
		Threshold: DefaultSearchThreshold,
	}
}

// Normalize fills the default limit for queries built as struct literals.
// Threshold is left alone: zero is a valid explicit choice.
func (q *SearchQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = DefaultSearchLimit
	}
}

// Validate checks the query for malformed inputs and rewrites the category
// to its canonical lowercase form.
func (q *SearchQuery) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("%w: query text is empty", ErrValidation)
	}
	if q.Threshold < 0 || q.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be in [0,1], got %g", ErrValidation, q.Threshold)
	}
	if q.Category != "" {
		parsed, err := ParseCategory(string(q.Category))
		if err != nil {
			return err
		}
		// Canonical form, so the exact-equality filter sees one spelling.
		q.Category = parsed
	}
	if q.DateRange != nil && q.DateRange.Start.After(q.DateRange.End) {
		return fmt.Errorf("%w: date range start %s is after end %s",
			ErrValidation, q.DateRange.Start.Format(time.RFC3339), q.DateRange.End.Format(time.RFC3339))
	}
	return nil
}

// SimilarityResult is one scored match.
type SimilarityResult struct {
	MessageID  string         `json:"message_id"`
	Similarity float64        `json:"similarity"`
	Distance   float64        `json:"distance"`
	Text       string         `json:"text"`
	Metadata   RecordMetadata `json:"metadata"`
}

// SearchResult is the full response for one query. TotalFound counts every
// candidate at or above the threshold before the limit is applied, so a
// caller can tell whether more results exist beyond the returned page.
type SearchResult struct {
	Results        []SimilarityResult `json:"results"`
	TotalFound     int                `json:"total_found"`
	Query          string             `json:"query"`
	ProcessingTime time.Duration      `json:"processing_time"`
}
