package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	AppMode          string
	JWTSecret        string
	JWTExpiryMin     int
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RateLimitEnabled bool
	AuthRateLimit    int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppMode:          getEnv("APP_MODE", "debug"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiryMin:     getEnvAsInt("JWT_EXPIRY_MIN", 60),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RateLimitEnabled: getEnvAsBool("RATE_LIMIT_ENABLED", false),
		AuthRateLimit:    getEnvAsInt("AUTH_RATE_LIMIT", 5),
	}

	if cfg.JWTSecret == "" {
		if cfg.AppMode == "release" {
			log.Fatal("JWT_SECRET must be set in release mode")
		}
		cfg.JWTSecret = "dev-only-secret"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
