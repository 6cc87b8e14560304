// ABOUTME: Tests for the model-backed encoder configuration
// ABOUTME: Verifies config values reach the encoder and defaults fill the gaps
package encoder

import (
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewOpenAIEncoder_UsesConfiguredModel(t *testing.T) {
	enc, err := NewOpenAIEncoder(&OpenAIConfig{
		APIKey:    "test-key",
		Model:     openai.LargeEmbedding3,
		Dimension: 3072,
	})
	if err != nil {
		t.Fatalf("NewOpenAIEncoder() error = %v", err)
	}

	if enc.model != openai.LargeEmbedding3 {
		t.Errorf("model = %q, want %q", enc.model, openai.LargeEmbedding3)
	}
	if enc.Dimension() != 3072 {
		t.Errorf("Dimension() = %d, want 3072", enc.Dimension())
	}
}

func TestNewOpenAIEncoder_Defaults(t *testing.T) {
	enc, err := NewOpenAIEncoder(&OpenAIConfig{
		APIKey: "test-key",
	})
	if err != nil {
		t.Fatalf("NewOpenAIEncoder() error = %v", err)
	}

	if enc.model != DefaultEmbeddingModel {
		t.Errorf("model = %q, want %q", enc.model, DefaultEmbeddingModel)
	}
	if enc.Dimension() != DefaultOpenAIDimension {
		t.Errorf("Dimension() = %d, want %d", enc.Dimension(), DefaultOpenAIDimension)
	}
}

func TestNewOpenAIEncoder_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIEncoder(&OpenAIConfig{}); err == nil {
		t.Error("NewOpenAIEncoder() without a key should fail")
	}
}

func TestDefaultOpenAIConfig(t *testing.T) {
	cfg := DefaultOpenAIConfig("key")

	if cfg.Model != DefaultEmbeddingModel {
		t.Errorf("Model = %q, want %q", cfg.Model, DefaultEmbeddingModel)
	}
	if cfg.Dimension != DefaultOpenAIDimension {
		t.Errorf("Dimension = %d, want %d", cfg.Dimension, DefaultOpenAIDimension)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}
