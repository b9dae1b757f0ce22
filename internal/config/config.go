// Package config loads tidychat configuration from YAML with environment
// overrides. Missing config file means defaults; a present file is merged
// over them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tidychat configuration.
type Config struct {
	// LLM backend
	LLM LLMConfig `yaml:"llm"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Transcript persistence
	History HistoryConfig `yaml:"history"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the generative-language backend.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`

	// SystemPrompt is prepended to every conversation.
	SystemPrompt string `yaml:"system_prompt"`
}

// UIConfig configures the chat TUI.
type UIConfig struct {
	Theme    string `yaml:"theme"`     // dark, light, auto
	WordWrap int    `yaml:"word_wrap"` // 0 = terminal width
}

// HistoryConfig configures transcript persistence.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Categories map[string]bool `yaml:"categories"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:   "gemini-2.0-flash",
			Timeout: "120s",
		},
		UI: UIConfig{
			Theme:    "auto",
			WordWrap: 0,
		},
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: filepath.Join(".tidychat", "history.db"),
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(".tidychat", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("TIDYCHAT_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if path := os.Getenv("TIDYCHAT_DB"); path != "" {
		c.History.DatabasePath = path
	}
}

// GetLLMTimeout returns the LLM request timeout as a duration.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// Validate checks the configuration for fatal problems.
func (c *Config) Validate() error {
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme must be dark, light, or auto (got %q)", c.UI.Theme)
	}
	if c.History.Enabled && c.History.DatabasePath == "" {
		return fmt.Errorf("history.database_path is required when history is enabled")
	}
	return nil
}
