package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	AppEnv    string
	Debug     bool
	Version   string
	Port      string
	SentryDSN string

	// Scraping provider.
	ApifyToken string
	ApifyActor string

	// Language-model provider.
	OpenAIAPIKey string
	OpenAIModel  string

	// Comma-separated CORS allow-list.
	AllowedOrigins []string

	// Optional shared cache backend; empty selects the in-memory cache.
	RedisAddr string
}

// ConfigOK reports whether both required provider credentials are present.
// The process boots without them (so /healthz can report the gap), but the
// audit pipeline refuses to run.
func (c *Config) ConfigOK() bool {
	return c.ApifyToken != "" && c.OpenAIAPIKey != ""
}

// LoadConfig loads configuration from environment variables. It attempts to
// load a .env file if present but prioritizes actual environment variables
// set in the system (e.g., by Docker).
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	debug, _ := strconv.ParseBool(getEnv("DEBUG", "false"))

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Debug:          debug,
		Version:        getEnv("VERSION", "dev"),
		Port:           getEnv("PORT", "8080"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		ApifyToken:     getEnv("APIFY_TOKEN", ""),
		ApifyActor:     getEnv("APIFY_ACTOR", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", ""),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
	}

	// Missing vendor credentials are not fatal: the health endpoint must be
	// able to report config-missing from a live process.
	if cfg.ApifyToken == "" {
		log.Println("Warning: APIFY_TOKEN is not set. Post fetching disabled.")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set. Audit generation disabled.")
	}
	if cfg.SentryDSN == "" {
		log.Println("Warning: SENTRY_DSN is not set. Error tracking disabled.")
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
