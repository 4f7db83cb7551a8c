package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ListenAddr)
	assert.Equal(t, "https://api.github.com", cfg.GithubAPIBase)
	assert.Equal(t, "whitespace", cfg.TokenizerModel)
	assert.Empty(t, cfg.AuthSecret)
	assert.NotEmpty(t, cfg.ExcludedExtensions)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PS_LISTEN_ADDR", ":9999")
	t.Setenv("PS_GITHUB_TOKEN", "test-token")
	t.Setenv("PS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "test-token", cfg.GithubToken)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestExcludedExtensionSet(t *testing.T) {
	cfg := &Config{ExcludedExtensions: []string{".ICO", ".png"}}
	set := cfg.ExcludedExtensionSet()

	assert.True(t, set[".ico"])
	assert.True(t, set[".png"])
	assert.False(t, set[".go"])
}
