// ABOUTME: Retry utilities for API calls with exponential backoff
// ABOUTME: Used by the model-backed encoder for transient embedding failures
package util

import (
	"math/rand/v2"
	"time"
)

// Backoff returns exponential backoff with jitter.
// Base delay is doubled each attempt, with random jitter up to 25%.
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	// Cap at 30 seconds
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	// Jitter: -25% to +25% using auto-seeded math/rand/v2. A zero base
	// delay has no jitter window.
	if half := int64(backoff) / 2; half > 0 {
		jitter := time.Duration(rand.Int64N(half)) - backoff/4
		backoff += jitter
	}
	return backoff
}
