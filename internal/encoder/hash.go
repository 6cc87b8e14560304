// ABOUTME: Deterministic hash-based fallback encoder
// ABOUTME: Same text always yields a bit-identical unit vector, no model needed
package encoder

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
)

// DefaultHashDimension is the standalone hash-encoder dimension, matching
// the small sentence-transformer models the real pipeline would load.
const DefaultHashDimension = 384

// HashEncoder derives a pseudo-random vector from a stable hash of the
// input text. The output carries no semantic meaning; its only guarantees
// are determinism (same text, same bits) and unit length, which is enough
// for the system to keep returning self-consistent results when no
// embedding model is available.
type HashEncoder struct {
	dim int
}

// NewHashEncoder creates a deterministic encoder with the given dimension.
// Non-positive dimensions fall back to DefaultHashDimension.
func NewHashEncoder(dim int) *HashEncoder {
	if dim <= 0 {
		dim = DefaultHashDimension
	}
	return &HashEncoder{dim: dim}
}

// Encode hashes the text into PCG seeds and expands the stream into a
// normalized vector. It never fails.
func (e *HashEncoder) Encode(_ context.Context, text string) ([]float64, error) {
	sum := sha256.Sum256([]byte(text))
	rng := rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	))

	vec := make([]float64, e.dim)
	for i := range vec {
		vec[i] = rng.Float64()*2 - 1
	}
	return Normalize(vec), nil
}

// Dimension returns the fixed output dimension.
func (e *HashEncoder) Dimension() int {
	return e.dim
}
