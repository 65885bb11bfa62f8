// Package config loads runtime configuration from the environment, with an
// optional YAML overlay for the pieces operators tend to version-control
// (category set, jurisdiction).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	Engine        EngineConfig
	Gemini        GeminiConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Host              string
	Port              int
	MaxUploadBytes    int64
	RequestTimeoutSec int
}

// EngineConfig controls extraction defaults. Categories and Province can be
// overridden per request; these are the fallbacks.
type EngineConfig struct {
	Classifier string // "rules" or "gemini"
	Province   string
	Categories []string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

// fileOverlay is the YAML shape accepted via CONFIG_FILE.
type fileOverlay struct {
	Province   string   `yaml:"province"`
	Categories []string `yaml:"categories"`
	Classifier string   `yaml:"classifier"`
}

// Load reads configuration from the environment. A .env file is honored
// when present; CONFIG_FILE points at an optional YAML overlay.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:              getEnv("SERVER_HOST", "localhost"),
			Port:              getEnvAsInt("SERVER_PORT", 8080),
			MaxUploadBytes:    int64(getEnvAsInt("MAX_UPLOAD_BYTES", 10<<20)),
			RequestTimeoutSec: getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 60),
		},
		Engine: EngineConfig{
			Classifier: getEnv("CLASSIFIER", "rules"),
			Province:   getEnv("DEFAULT_PROVINCE", "Ontario"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyOverlay(cfg, path); err != nil {
			return nil, err
		}
	}

	if cfg.Engine.Classifier != "rules" && cfg.Engine.Classifier != "gemini" {
		return nil, fmt.Errorf("unknown classifier %q", cfg.Engine.Classifier)
	}
	if cfg.Engine.Classifier == "gemini" && cfg.Gemini.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required when CLASSIFIER=gemini")
	}

	return cfg, nil
}

func applyOverlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overlay fileOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if overlay.Province != "" {
		cfg.Engine.Province = overlay.Province
	}
	if len(overlay.Categories) > 0 {
		cfg.Engine.Categories = overlay.Categories
	}
	if overlay.Classifier != "" {
		cfg.Engine.Classifier = overlay.Classifier
	}
	return nil
}

// Addr is the host:port the HTTP server binds.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
