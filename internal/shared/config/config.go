package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// Credential store. An empty DatabaseURL or UseMemoryStore=true selects
	// the process-lifetime in-memory backend at boot.
	DatabaseURL    string
	UseMemoryStore bool

	// Session tokens.
	SessionSecret string

	// Generation providers.
	GenProvider    string
	GenModel       string
	GenTimeout     time.Duration
	GeminiAPIKey   string
	DeepSeekAPIKey string

	// Hosted identity provider (Google).
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))

	if env == "production" {
		if dbURL == "" {
			log.Printf("DATABASE_URL is empty in production; credential store will be in-memory")
		}
		if secret == "" {
			log.Printf("SESSION_SECRET is required in production")
		}
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DatabaseURL:        dbURL,
		UseMemoryStore:     getEnvBool("USE_IN_MEMORY_DB", false),
		SessionSecret:      secret,
		GenProvider:        normalizeProvider(getEnv("GEN_PROVIDER", "gemini")),
		GenModel:           getEnv("GEN_MODEL", ""),
		GenTimeout:         getEnvSeconds("GEN_TIMEOUT_SECONDS", 60*time.Second),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		DeepSeekAPIKey:     getEnv("DEEPSEEK_API_KEY", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", "http://localhost:3000/dashboard"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch raw {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "deepseek":
		return "deepseek"
	default:
		return "gemini"
	}
}

// IsDevLike reports whether the environment tolerates missing external
// services (credential store falls back to memory instead of failing boot).
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}
