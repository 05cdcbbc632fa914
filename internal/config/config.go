package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the front end.
type Config struct {
	BackendURL  string
	RedisAddr   string
	HTTPPort    string
	JWTSecret   string
	SessionTTL  time.Duration
	CORSOrigins string
	CookieName  string
}

// Load reads configuration from the environment, falling back to
// development defaults. A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BackendURL:  getEnv("BACKEND_URL", "https://live-courses.onrender.com/api"),
		RedisAddr:   getEnv("REDIS_URI", "localhost:6379"),
		HTTPPort:    getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		SessionTTL:  getDuration("SESSION_TTL", 7*24*time.Hour),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CookieName:  getEnv("SESSION_COOKIE", "lc_session"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	return defaultVal
}
