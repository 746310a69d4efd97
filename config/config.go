package config

import (
	"os"
	"time"
)

// Config is loaded once at startup and treated as read-only afterwards.
type Config struct {
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	JWTExpiresIn time.Duration
	Port         string
	CORSOrigin   string
	LogLevel     string
}

func Load() *Config {
	cfg := &Config{
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "portfolio"),
		JWTSecret:    getenv("JWT_SECRET", "default_secret_change_in_production"),
		JWTExpiresIn: 7 * 24 * time.Hour,
		Port:         getenv("PORT", "4000"),
		CORSOrigin:   getenv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.JWTExpiresIn = d
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
