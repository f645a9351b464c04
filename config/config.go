package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	CookieDomain string
	AllowOrigins []string
}

// Load reads configuration from the environment. DATABASE_URL wins over
// the individual DB_* variables when both are set.
func Load() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		DatabaseURL:  databaseURL(),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret-change-me"),
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),
		AllowOrigins: []string{getenv("FRONTEND_ORIGIN", "http://localhost:3000")},
	}
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "quantamstore"),
		getenv("DB_PORT", "5432"),
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
