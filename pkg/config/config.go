package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	Environment    string
	APIBaseURL     string
	RequestTimeout time.Duration
	CookieDomain   string
	CookieSecure   bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000"),
		RequestTimeout: time.Duration(getEnvAsInt64("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:   getEnvAsBool("COOKIE_SECURE", false),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
