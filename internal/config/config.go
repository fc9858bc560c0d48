// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CredentialPrefix is the documented prefix of a plausible Anthropic API
// key. Anything else routes analysis to the mock completer.
const CredentialPrefix = "sk-ant-"

// Config holds all configuration for the FabAssist server.
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type AIConfig struct {
	APIKey           string
	Model            string
	InferenceTimeout time.Duration
}

// Load reads configuration from environment variables and returns a
// validated Config. The API key is optional: its absence selects the mock
// analysis path, never a startup failure.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("FABASSIST_PORT", 8080),
			Env:  envString("FABASSIST_ENV", "development"),
		},
		AI: AIConfig{
			APIKey:           strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
			Model:            envString("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
			InferenceTimeout: envDurationSecs("AI_INFERENCE_TIMEOUT_SECS", 60*time.Second),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasCredential reports whether a syntactically plausible live credential
// is configured.
func (c AIConfig) HasCredential() bool {
	return c.APIKey != "" && strings.HasPrefix(c.APIKey, CredentialPrefix)
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("FABASSIST_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.AI.InferenceTimeout <= 0 {
		return fmt.Errorf("AI_INFERENCE_TIMEOUT_SECS must be positive")
	}
	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
