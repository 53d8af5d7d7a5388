package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("FAB_API_ENDPOINT", "https://api.example.com/v1/")
	t.Setenv("FAB_TOKEN", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", cfg.APIEndpoint, "trailing slash stripped")
	assert.Equal(t, "secret", cfg.Token)
}

func TestLoadMissingEndpoint(t *testing.T) {
	t.Setenv("FAB_API_ENDPOINT", "")
	t.Setenv("FAB_TOKEN", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "FAB_API_ENDPOINT is required")
}

func TestLoadInvalidEndpoint(t *testing.T) {
	t.Setenv("FAB_API_ENDPOINT", "not a url")
	t.Setenv("FAB_TOKEN", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "not a valid URL")
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("FAB_API_ENDPOINT", "https://api.example.com")
	t.Setenv("FAB_TOKEN", "")

	_, err := Load()
	assert.ErrorContains(t, err, "FAB_TOKEN is required")
}
