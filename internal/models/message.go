// ABOUTME: Email message input model consumed by the embedding pipeline
// ABOUTME: Produced by the webmail extraction collaborator, not by this module
package models

import (
	"strings"
	"time"
)

// EmailMessage is the input record supplied by the extraction layer.
type EmailMessage struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	From      string    `json:"from"`
	To        []string  `json:"to,omitempty"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	ThreadID  string    `json:"thread_id,omitempty"`
}

// EmbeddingText returns the text that gets encoded when the caller does not
// supply its own: subject and body joined with a blank line.
func (m *EmailMessage) EmbeddingText() string {
	return strings.TrimSpace(m.Subject + "\n\n" + m.Body)
}
