package config

import (
	"os"
	"strconv"
	"time"

	"taskdeck/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	LogLevel string
	LogJSON  bool
}

// tokens stay valid for 5 days after login
const defaultTokenTTLHours = 120

// Load reads configuration from the environment. Missing required
// values are fatal: the process cannot serve without them.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ttlHours := defaultTokenTTLHours
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		JWTSecret:   jwtSecret,
		TokenTTL:    time.Duration(ttlHours) * time.Hour,
		LogLevel:    logLevel,
		LogJSON:     os.Getenv("LOG_JSON") == "true",
	}
}
