package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents environment-derived settings.
type Config struct {
	APIEndpoint string
	Token       string
}

// Load reads .env (if present) and validates required settings.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIEndpoint: strings.TrimSpace(os.Getenv("FAB_API_ENDPOINT")),
		Token:       strings.TrimSpace(os.Getenv("FAB_TOKEN")),
	}

	if cfg.APIEndpoint == "" {
		return cfg, errors.New("FAB_API_ENDPOINT is required (base URL of the item store API)")
	}
	u, err := url.Parse(cfg.APIEndpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return cfg, fmt.Errorf("FAB_API_ENDPOINT %q is not a valid URL", cfg.APIEndpoint)
	}
	cfg.APIEndpoint = strings.TrimRight(cfg.APIEndpoint, "/")

	if cfg.Token == "" {
		return cfg, errors.New("FAB_TOKEN is required (bearer token for the item store API)")
	}

	return cfg, nil
}
