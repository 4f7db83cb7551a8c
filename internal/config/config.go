// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all server configuration.
type Config struct {
	// Server
	ListenAddr string `mapstructure:"listen_addr"`

	// Upstream repository host
	GithubToken   string        `mapstructure:"github_token"`
	GithubAPIBase string        `mapstructure:"github_api_base"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`

	// Database (optional: without it the db/ and prompts/ tree groups
	// are empty and record endpoints report unavailable)
	DatabaseURL string `mapstructure:"database_url"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Token counting: "whitespace" (default) or an OpenAI model name
	// resolved through tiktoken
	TokenizerModel string `mapstructure:"tokenizer_model"`

	// Extensions never auto-selected by a directory toggle
	ExcludedExtensions []string `mapstructure:"excluded_extensions"`

	// Auth (optional: empty secret leaves the dashboard open)
	AuthSecret  string        `mapstructure:"auth_secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`

	// CORS
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DefaultExcludedExtensions lists binary, font and image formats that a
// directory-level toggle skips. Files with these extensions can still be
// selected individually.
var DefaultExcludedExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".ico",
	".woff", ".woff2", ".ttf", ".otf", ".eot",
	".pdf", ".zip", ".gz", ".tar", ".exe", ".bin", ".so", ".dylib",
}

// Load reads configuration from PS_-prefixed environment variables with
// defaults suitable for local use.
func Load() (*Config, error) {
	reader := viper.New()
	reader.SetEnvPrefix("PS")
	reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	reader.AutomaticEnv()

	reader.SetDefault("listen_addr", "localhost:8080")
	reader.SetDefault("github_api_base", "https://api.github.com")
	reader.SetDefault("fetch_timeout", "30s")
	reader.SetDefault("database_url", "")
	reader.SetDefault("github_token", "")
	reader.SetDefault("log_level", "info")
	reader.SetDefault("log_format", "console")
	reader.SetDefault("tokenizer_model", "whitespace")
	reader.SetDefault("excluded_extensions", DefaultExcludedExtensions)
	reader.SetDefault("auth_secret", "")
	reader.SetDefault("token_expiry", "24h")
	reader.SetDefault("allowed_origins", []string{})

	var cfg Config
	if err := reader.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if cfg.ListenAddr == "" {
		return nil, fmt.Errorf("listen address must not be empty")
	}

	return &cfg, nil
}

// ExcludedExtensionSet returns the exclusion list as a lookup set with
// lowercased keys.
func (c *Config) ExcludedExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.ExcludedExtensions))
	for _, ext := range c.ExcludedExtensions {
		set[strings.ToLower(ext)] = true
	}
	return set
}
