package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultDriver        = "sqlite"
	defaultDSN           = "casefile.db"
	defaultTokenTTLHours = 24
)

type Config struct {
	// http server
	Port string

	// relational store
	DatabaseDriver string // "sqlite" or "mysql"
	DatabaseDSN    string

	// cross-origin policy; defaults to "*" so station dashboards work
	// without extra setup
	CORSAllowedOrigins []string

	// session tokens
	JWTSecret string
	TokenTTL  time.Duration

	// whether 500 responses include the underlying error text
	ExposeErrorDetails bool

	// insert the bootstrap admin on an empty users table
	SeedAdmin bool
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %v. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	origins := strings.Split(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret-change-me"
		log.Printf("Warning: JWT_SECRET not set, using the development default")
	}

	cfg := Config{
		Port:               getEnvOrDefault("PORT", defaultPort),
		DatabaseDriver:     getEnvOrDefault("DATABASE_DRIVER", defaultDriver),
		DatabaseDSN:        getEnvOrDefault("DATABASE_DSN", defaultDSN),
		CORSAllowedOrigins: origins,
		JWTSecret:          secret,
		TokenTTL:           time.Duration(getEnvIntOrDefault("TOKEN_TTL_HOURS", defaultTokenTTLHours)) * time.Hour,
		ExposeErrorDetails: getEnvBoolOrDefault("EXPOSE_ERROR_DETAILS", true),
		SeedAdmin:          getEnvBoolOrDefault("SEED_ADMIN", true),
	}

	return cfg, nil
}
