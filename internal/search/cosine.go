// ABOUTME: Cosine similarity for float64 vectors
// ABOUTME: Zero-magnitude vectors score 0; never NaN, never a panic
package search

import "math"

// Cosine calculates the cosine similarity between two vectors. Mismatched
// lengths return 0; callers that need an error for that check lengths first.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
