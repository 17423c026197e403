package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, resolved once at process start.
type Config struct {
	Port        string
	DatabaseURL string
	FrontendURL string

	// PublicProjectLimit caps GET /api/projects and marks the response
	// uncacheable. 0 disables the cap.
	PublicProjectLimit int

	// StorageDir enables data-URI image offloading when non-empty.
	StorageDir string
}

// Load reads .env (if present) and the environment. A missing DATABASE_URL
// is a startup failure, not something to discover on the first request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        dbURL,
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		PublicProjectLimit: getEnvInt("PUBLIC_PROJECT_LIMIT", 10),
		StorageDir:         os.Getenv("STORAGE_DIR"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
