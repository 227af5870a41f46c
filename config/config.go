package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	SerpAPI    SerpAPIConfig
	Embeddings EmbeddingsConfig
	Grouping   GroupingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SerpAPIConfig holds shopping-search provider configuration
type SerpAPIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// EmbeddingsConfig holds embedding service configuration
type EmbeddingsConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// GroupingConfig holds listing-grouping configuration
type GroupingConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	MaxListings         int     `mapstructure:"max_listings"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricelens/")

	// Environment variable settings
	v.SetEnvPrefix("PRICELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// SerpAPI defaults
	v.SetDefault("serpapi.api_key", "") // registers the key for env lookup
	v.SetDefault("serpapi.base_url", "https://serpapi.com")

	// Embeddings defaults
	v.SetDefault("embeddings.base_url", "http://localhost:11434")
	v.SetDefault("embeddings.model", "nomic-embed-text")
	v.SetDefault("embeddings.timeout", "15s")

	// Grouping defaults
	v.SetDefault("grouping.similarity_threshold", 0.86)
	v.SetDefault("grouping.max_listings", 8)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.SerpAPI.APIKey == "" {
		return fmt.Errorf("SerpAPI key is required (set PRICELENS_SERPAPI_API_KEY)")
	}

	if config.Grouping.SimilarityThreshold <= 0 || config.Grouping.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1], got: %v", config.Grouping.SimilarityThreshold)
	}

	if config.Grouping.MaxListings <= 0 {
		return fmt.Errorf("max listings must be positive, got: %d", config.Grouping.MaxListings)
	}

	return nil
}
