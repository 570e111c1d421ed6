// Package config provides configuration management for the schemastrip CLI.
//
// Values are layered with koanf: built-in defaults, then an optional YAML
// file, then SCHEMASTRIP_ environment variables, then explicitly set flags.
package config

import (
	"time"

	"github.com/leapstack-labs/schemastrip/internal/llm"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool      `koanf:"verbose"`
	OutputFormat string    `koanf:"output"`
	LLM          LLMConfig `koanf:"llm"`
}

// LLMConfig configures the chat-completion client used by ask.
type LLMConfig struct {
	Model       string        `koanf:"model"`
	TokenModel  string        `koanf:"token_model"`
	BaseURL     string        `koanf:"base_url"`
	APIKey      string        `koanf:"api_key"`
	APIKeyEnv   string        `koanf:"api_key_env"`
	EnvFile     string        `koanf:"env_file"`
	MaxAttempts int           `koanf:"max_attempts"`
	RetryDelay  time.Duration `koanf:"retry_delay"`
	Timeout     time.Duration `koanf:"timeout"`
}

// Default configuration values.
const (
	DefaultOutput     = "auto" // TTY=text, otherwise markdown
	DefaultModel      = "gpt-4o-mini"
	DefaultTokenModel = "gpt-4"
	DefaultEnvFile    = ".env"
	DefaultTimeout    = 60 * time.Second
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LLM: LLMConfig{
			Model:       DefaultModel,
			TokenModel:  DefaultTokenModel,
			BaseURL:     llm.DefaultBaseURL,
			APIKeyEnv:   llm.DefaultAPIKeyEnv,
			EnvFile:     DefaultEnvFile,
			MaxAttempts: llm.DefaultMaxAttempts,
			RetryDelay:  llm.DefaultRetryDelay,
			Timeout:     DefaultTimeout,
		},
	}
}
