package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// AI backend settings; an empty APIKey means every request runs on
	// the deterministic fallback path.
	AIAPIKey  string
	AIModel   string
	AITimeout time.Duration

	// Upload settings
	MaxUploadBytes int64

	LogLevel string
}

const defaultModel = "gpt-4o-mini"

var allowedExtensions = map[string]bool{
	".txt": true,
	".eml": true,
	".msg": true,
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() *Config {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := &Config{
		Host:           envOr("HOST", "localhost"),
		Port:           envOr("PORT", "8080"),
		AIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		AIModel:        envOr("OPENAI_MODEL", defaultModel),
		AITimeout:      15 * time.Second,
		MaxUploadBytes: 5 << 20,
		LogLevel:       envOr("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("AI_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.AITimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}

	return cfg
}

// AIEnabled reports whether the external AI backend is configured.
func (c *Config) AIEnabled() bool {
	return c.AIAPIKey != ""
}

// AllowedFile checks whether an uploaded filename carries an accepted
// extension (.txt, .eml, .msg).
func (c *Config) AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Address returns the full server address
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

// URL returns the full server URL
func (c *Config) URL() string {
	return "http://" + c.Address()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
