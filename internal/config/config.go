// ABOUTME: Centralized configuration for the mailvec embedding subsystem
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Config holds all configuration for the embedding store and search engine
type Config struct {
	// Storage settings
	DataDir string

	// OpenAI settings
	OpenAIKey      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Vector settings
	VectorDimension int

	// Search settings
	SearchLimit     int
	SearchThreshold float64
	CacheTTL        time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DataDir:         getEnv("MAILVEC_DATA_DIR", defaultDataDir()),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:  getEnv("MAILVEC_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		VectorDimension: getEnvInt("MAILVEC_DIMENSION", 1536),
		SearchLimit:     getEnvInt("MAILVEC_SEARCH_LIMIT", 10),
		SearchThreshold: getEnvFloat("MAILVEC_SEARCH_THRESHOLD", 0.3),
		CacheTTL:        getEnvDuration("MAILVEC_CACHE_TTL", 5*time.Minute),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.SearchThreshold < 0 || c.SearchThreshold > 1 {
		return fmt.Errorf("MAILVEC_SEARCH_THRESHOLD must be 0-1, got %f", c.SearchThreshold)
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("MAILVEC_SEARCH_LIMIT must be positive, got %d", c.SearchLimit)
	}
	if c.VectorDimension <= 0 {
		return fmt.Errorf("MAILVEC_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("MAILVEC_CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return nil
}

// DBPath returns the database file path under the data directory
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "mailvec.db")
}

func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "mailvec")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
