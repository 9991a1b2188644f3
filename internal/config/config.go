// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mvarela/cv-alchemist/internal/llm"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultPort        = 8080
	DefaultMaxUploadMB = 10
)

// Config is the full application configuration.
type Config struct {
	// Provider credentials and model overrides.
	OpenAIAPIKey string
	GeminiAPIKey string
	OpenAIModel  string
	GeminiModel  string

	// Server settings.
	Port        int
	MaxUploadMB int

	// ChromePath overrides headless browser discovery for PDF export.
	ChromePath string
}

// FromEnv reads configuration from environment variables. Unset numeric
// values fall back to defaults; malformed ones are an error.
func FromEnv() (Config, error) {
	cfg := Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		ChromePath:   os.Getenv("CHROME_PATH"),
		Port:         DefaultPort,
		MaxUploadMB:  DefaultMaxUploadMB,
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT value %q", raw)
		}
		cfg.Port = port
	}

	if raw := os.Getenv("MAX_UPLOAD_MB"); raw != "" {
		mb, err := strconv.Atoi(raw)
		if err != nil || mb <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_UPLOAD_MB value %q", raw)
		}
		cfg.MaxUploadMB = mb
	}

	return cfg, nil
}

// HasProviderKey reports whether at least one generation provider is
// configured. Generation without any key still runs but always yields the
// failure diagnostic, so callers may want to warn at startup.
func (c Config) HasProviderKey() bool {
	return c.OpenAIAPIKey != "" || c.GeminiAPIKey != ""
}

// LLM maps the application settings onto the generation client config.
func (c Config) LLM() llm.Config {
	return llm.Config{
		OpenAIAPIKey: c.OpenAIAPIKey,
		GeminiAPIKey: c.GeminiAPIKey,
		OpenAIModel:  c.OpenAIModel,
		GeminiModel:  c.GeminiModel,
	}
}
