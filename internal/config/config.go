// Package config loads application configuration from the environment
// into one explicit struct, so collaborators never read env vars
// themselves.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every credential and knob the application uses.
type Config struct {
	SpotifyClientID     string
	SpotifyClientSecret string
	ORSAPIKey           string
	GoogleMapsAPIKey    string // optional, client-side map rendering
	Port                string
	ArtifactDir         string
	WebDir              string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	// Errors loading .env are not fatal: deployed environments set
	// real env vars instead.
	_ = godotenv.Load()

	return Config{
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		ORSAPIKey:           os.Getenv("OPENROUTE_API_KEY"),
		GoogleMapsAPIKey:    os.Getenv("GOOGLE_MAPS_API_KEY"),
		Port:                getEnv("PORT", "8000"),
		ArtifactDir:         getEnv("ARTIFACT_DIR", "maps"),
		WebDir:              getEnv("WEB_DIR", "web"),
	}
}

// Validate fails fast when a required credential is missing.
func (c Config) Validate() error {
	if c.SpotifyClientID == "" || c.SpotifyClientSecret == "" {
		return errors.New("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required")
	}
	if c.ORSAPIKey == "" {
		return errors.New("OPENROUTE_API_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
