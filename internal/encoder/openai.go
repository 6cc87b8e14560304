// ABOUTME: Model-backed encoder using the OpenAI embeddings API
// ABOUTME: Retries with exponential backoff, re-normalizes output to unit length
package encoder

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/mailvec/internal/util"
)

const (
	// DefaultEmbeddingModel is the default OpenAI embedding model.
	DefaultEmbeddingModel = openai.SmallEmbedding3
	// DefaultOpenAIDimension is the output dimension of text-embedding-3-small.
	DefaultOpenAIDimension = 1536
)

// OpenAIConfig holds configuration for the model-backed encoder.
type OpenAIConfig struct {
	APIKey     string
	Model      openai.EmbeddingModel
	Dimension  int
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// DefaultOpenAIConfig returns the default encoder configuration.
func DefaultOpenAIConfig(apiKey string) *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:     apiKey,
		Model:      DefaultEmbeddingModel,
		Dimension:  DefaultOpenAIDimension,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		Timeout:    30 * time.Second,
	}
}

// OpenAIEncoder generates embeddings through the OpenAI API with retry.
type OpenAIEncoder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dim        int
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
}

// NewOpenAIEncoder creates a model-backed encoder.
func NewOpenAIEncoder(cfg *OpenAIConfig) (*OpenAIEncoder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultEmbeddingModel
	}
	if cfg.Dimension <= 0 {
		cfg.Dimension = DefaultOpenAIDimension
	}

	return &OpenAIEncoder{
		client:     openai.NewClient(cfg.APIKey),
		model:      cfg.Model,
		dim:        cfg.Dimension,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		timeout:    cfg.Timeout,
	}, nil
}

// Encode requests an embedding from the API, retrying transient failures
// with exponential backoff, and returns a unit-length vector.
func (e *OpenAIEncoder) Encode(ctx context.Context, text string) ([]float64, error) {
	var lastErr error

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(util.Backoff(e.retryDelay, attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
		resp, err := e.client.CreateEmbeddings(attemptCtx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: e.model,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		embedding := resp.Data[0].Embedding
		if len(embedding) != e.dim {
			return nil, fmt.Errorf("model returned %d dimensions, expected %d", len(embedding), e.dim)
		}

		vec := make([]float64, len(embedding))
		for i, v := range embedding {
			vec[i] = float64(v)
		}
		return Normalize(vec), nil
	}

	return nil, fmt.Errorf("embedding failed after %d attempts: %w", e.maxRetries+1, lastErr)
}

// Dimension returns the configured model output dimension.
func (e *OpenAIEncoder) Dimension() int {
	return e.dim
}
