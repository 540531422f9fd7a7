package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	HTTPPort       string
	DatabaseURL    string // postgres DSN; sqlite is used when empty
	SQLitePath     string
	RedisAddr      string // cache disabled when empty
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	TokenTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	LogDir         string
	LogLevel       string
}

// Load reads configuration from the environment, after sourcing a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		HTTPPort:       GetEnvAsString("HTTP_PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     GetEnvAsString("SQLITE_PATH", "school.db"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        GetEnvAsInt("REDIS_DB", 0),
		JWTSecret:      jwtSecret,
		TokenTTL:       GetEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		RateLimitRPS:   float64(GetEnvAsInt("RATE_LIMIT_RPS", 100)),
		RateLimitBurst: GetEnvAsInt("RATE_LIMIT_BURST", 200),
		LogDir:         os.Getenv("LOG_DIR"),
		LogLevel:       GetEnvAsString("LOG_LEVEL", "info"),
	}, nil
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
