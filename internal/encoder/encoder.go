// ABOUTME: Encoder interface and shared vector helpers
// ABOUTME: All encoders emit fixed-dimension L2-normalized float64 vectors
package encoder

import (
	"context"
	"math"
)

// Encoder turns text into a fixed-dimension unit vector, so a plain dot
// product between two encoded vectors is their cosine similarity.
type Encoder interface {
	// Encode returns a vector of length Dimension(), L2-normalized.
	Encode(ctx context.Context, text string) ([]float64, error)

	// Dimension returns the length of every vector this encoder produces.
	Dimension() int
}

// Normalize scales v to unit length in place and returns it. A zero vector
// is returned unchanged rather than producing NaNs.
func Normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return v
}
