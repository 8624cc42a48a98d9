package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the scan service
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Open Food Facts configuration
	OFFBaseURL     string
	OFFUserAgent   string
	OFFTimeoutSec  int
	OFFCacheTTLSec int

	// Rate limiting
	RateLimitPerSec float64
	RateLimitBurst  int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "server"),
		DBPassword: getEnv("DB_PASSWORD", "secret"),
		DBName:     getEnv("DB_NAME", "foodscan"),

		OFFBaseURL:     getEnv("OFF_BASE_URL", "https://world.openfoodfacts.org"),
		OFFUserAgent:   getEnv("OFF_USER_AGENT", "ScanService/1.0 (contact: ops@foodscan.local)"),
		OFFTimeoutSec:  getIntEnv("OFF_TIMEOUT_SEC", 12),
		OFFCacheTTLSec: getIntEnv("OFF_CACHE_TTL_SEC", 600),

		RateLimitPerSec: float64(getIntEnv("RATE_LIMIT_PER_SEC", 10)),
		RateLimitBurst:  getIntEnv("RATE_LIMIT_BURST", 20),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
