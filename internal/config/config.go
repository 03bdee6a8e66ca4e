// Package config resolves process settings from the environment, with an
// optional .env file loaded first.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Collector modes
const (
	ModeRapidAPI = "rapidapi"
	ModeMock     = "mock"
)

const (
	defaultPort     = "8080"
	defaultSnapshot = "data/current.json"
	defaultAPIHost  = "fresh-linkedin-profile-data.p.rapidapi.com"
)

// Config carries all runtime settings
type Config struct {
	Port         string
	SnapshotPath string
	Provider     Provider
}

// Provider configures the post collector
type Provider struct {
	Mode    string
	APIKey  string
	APIHost string
	BaseURL string
}

// Load reads a .env file when present, then resolves the environment.
// BaseURL is derived from the API host unless LINKPULSE_API_URL overrides it.
func Load() Config {
	godotenv.Load()

	cfg := Config{
		Port:         envOr("PORT", defaultPort),
		SnapshotPath: envOr("SNAPSHOT_PATH", defaultSnapshot),
		Provider: Provider{
			Mode:    envOr("COLLECTOR_MODE", ModeRapidAPI),
			APIKey:  os.Getenv("RAPID_API_KEY"),
			APIHost: envOr("RAPID_API_HOST", defaultAPIHost),
			BaseURL: os.Getenv("LINKPULSE_API_URL"),
		},
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://" + cfg.Provider.APIHost
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
