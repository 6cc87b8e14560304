// ABOUTME: Tests for the model-to-deterministic fallback switchover
// ABOUTME: Verifies the transition is explicit, permanent, and error-free for callers
package encoder

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

// failingEncoder always errors, standing in for an unreachable model.
type failingEncoder struct {
	dim   int
	calls int
}

func (f *failingEncoder) Encode(_ context.Context, _ string) ([]float64, error) {
	f.calls++
	return nil, errors.New("model unavailable")
}

func (f *failingEncoder) Dimension() int { return f.dim }

// workingEncoder returns a fixed unit vector.
type workingEncoder struct {
	dim int
}

func (w *workingEncoder) Encode(_ context.Context, _ string) ([]float64, error) {
	vec := make([]float64, w.dim)
	vec[0] = 1
	return vec, nil
}

func (w *workingEncoder) Dimension() int { return w.dim }

func TestFallback_UsesPrimaryWhenHealthy(t *testing.T) {
	f := NewFallback(&workingEncoder{dim: 8})

	vec, err := f.Encode(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if vec[0] != 1 {
		t.Errorf("vec[0] = %v, want 1 (primary output)", vec[0])
	}
	if f.Degraded() {
		t.Error("Degraded() = true with a healthy primary")
	}
}

func TestFallback_SwitchesOnFailure(t *testing.T) {
	primary := &failingEncoder{dim: 16}
	f := NewFallback(primary)
	ctx := context.Background()

	vec, err := f.Encode(ctx, "hello")
	if err != nil {
		t.Fatalf("Encode() error = %v, fallback must hide primary failure", err)
	}
	if len(vec) != 16 {
		t.Errorf("len(vec) = %d, want primary dimension 16", len(vec))
	}
	if !f.Degraded() {
		t.Error("Degraded() = false after primary failure")
	}

	// Fallback output must be the deterministic hash vector
	hash := NewHashEncoder(16)
	want, _ := hash.Encode(ctx, "hello")
	for i := range vec {
		if math.Float64bits(vec[i]) != math.Float64bits(want[i]) {
			t.Fatalf("vec[%d] = %v, want hash output %v", i, vec[i], want[i])
		}
	}
}

func TestFallback_SwitchIsPermanent(t *testing.T) {
	primary := &failingEncoder{dim: 8}
	f := NewFallback(primary)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := f.Encode(ctx, "text"); err != nil {
			t.Fatalf("Encode() call %d error = %v", i, err)
		}
	}

	// Primary is tried once, then never again
	if primary.calls != 1 {
		t.Errorf("primary called %d times, want 1", primary.calls)
	}
}

// canceledEncoder reports the context's cancellation error, like a real
// client whose in-flight request was cancelled by the caller.
type canceledEncoder struct {
	dim   int
	calls int
}

func (c *canceledEncoder) Encode(ctx context.Context, _ string) ([]float64, error) {
	c.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make([]float64, c.dim)
	vec[0] = 1
	return vec, nil
}

func (c *canceledEncoder) Dimension() int { return c.dim }

func TestFallback_CancellationDoesNotDegrade(t *testing.T) {
	primary := &canceledEncoder{dim: 8}
	f := NewFallback(primary)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Encode(ctx, "hello"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Encode() with cancelled context error = %v, want context.Canceled", err)
	}
	if f.Degraded() {
		t.Fatal("Degraded() = true after caller cancellation")
	}

	// The primary is still trusted for the next call
	vec, err := f.Encode(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Encode() after cancellation error = %v", err)
	}
	if vec[0] != 1 {
		t.Errorf("vec[0] = %v, want 1 (primary output)", vec[0])
	}
	if primary.calls != 2 {
		t.Errorf("primary called %d times, want 2", primary.calls)
	}
}

func TestFallback_DeadlineDoesNotDegrade(t *testing.T) {
	primary := &canceledEncoder{dim: 8}
	f := NewFallback(primary)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	if _, err := f.Encode(ctx, "hello"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Encode() past deadline error = %v, want context.DeadlineExceeded", err)
	}
	if f.Degraded() {
		t.Error("Degraded() = true after caller deadline")
	}
}

func TestFallback_Dimension(t *testing.T) {
	f := NewFallback(&workingEncoder{dim: 1536})
	if f.Dimension() != 1536 {
		t.Errorf("Dimension() = %d, want 1536", f.Dimension())
	}
}

func TestFallback_DegradedResultsAreRepeatable(t *testing.T) {
	f := NewFallback(&failingEncoder{dim: 32})
	ctx := context.Background()

	first, _ := f.Encode(ctx, "repeat me")
	second, _ := f.Encode(ctx, "repeat me")

	for i := range first {
		if math.Float64bits(first[i]) != math.Float64bits(second[i]) {
			t.Fatalf("degraded encode not repeatable at index %d", i)
		}
	}
}
