// ABOUTME: Two-variant encoder that degrades from model-backed to deterministic
// ABOUTME: The switchover is an explicit, observable state transition, logged once
package encoder

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Fallback wraps a primary encoder and a deterministic hash encoder of the
// same dimension. The first primary failure switches the instance to the
// deterministic variant for the rest of the process lifetime, so repeated
// searches stay self-consistent instead of flapping between models. The
// caller never sees the failure; availability wins over accuracy here.
// Context cancellation is the one exception: it propagates and does not
// count against the primary.
type Fallback struct {
	primary Encoder
	hash    *HashEncoder

	mu       sync.Mutex
	degraded bool
}

// NewFallback wraps primary with a deterministic fallback of matching
// dimension.
func NewFallback(primary Encoder) *Fallback {
	return &Fallback{
		primary: primary,
		hash:    NewHashEncoder(primary.Dimension()),
	}
}

// Encode tries the primary encoder, switching permanently to the
// deterministic variant on the first failure.
func (f *Fallback) Encode(ctx context.Context, text string) ([]float64, error) {
	f.mu.Lock()
	degraded := f.degraded
	f.mu.Unlock()

	if !degraded {
		vec, err := f.primary.Encode(ctx, text)
		if err == nil {
			return vec, nil
		}

		// Cancellation is the caller's act, not a model failure; propagate
		// it without writing off the primary.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		f.mu.Lock()
		if !f.degraded {
			f.degraded = true
			log.Printf("Warning: embedding model unavailable, switching to deterministic fallback: %v", err)
		}
		f.mu.Unlock()
	}

	return f.hash.Encode(ctx, text)
}

// Dimension returns the shared dimension of both variants.
func (f *Fallback) Dimension() int {
	return f.primary.Dimension()
}

// Degraded reports whether the encoder has switched to the deterministic
// variant.
func (f *Fallback) Degraded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.degraded
}
