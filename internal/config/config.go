// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"customer-registry/internal/store"

	"github.com/joho/godotenv"
)

// Config holds all configurable values for the app.
type Config struct {
	Env             string
	HTTPAddr        string
	StoreDriver     string
	StorePath       string
	StoreKey        string
	RedisURL        string
	DatabaseURL     string
	PhoneRegion     string
	ShutdownTimeout time.Duration
}

var storeDrivers = map[string]bool{
	store.DriverFile:     true,
	store.DriverMemory:   true,
	store.DriverRedis:    true,
	store.DriverPostgres: true,
}

// Load reads an optional .env file, then environment variables, and populates a Config struct.
// Variables already set in the environment win over the .env file.
func Load() *Config {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		log.Panicf("Invalid SHUTDOWN_TIMEOUT: %v", err)
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", "file"))
	if !storeDrivers[driver] {
		log.Panicf("Invalid STORE_DRIVER: %q", driver)
	}

	return &Config{
		Env:             getEnv("ENV", "development"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		StoreDriver:     driver,
		StorePath:       getEnv("STORE_PATH", "customers.json"),
		StoreKey:        getEnv("STORE_KEY", "customers"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:     getEnv("DATABASE_URL", "postgres://localhost:5432/customers?sslmode=disable"),
		PhoneRegion:     strings.ToUpper(getEnv("PHONE_REGION", "US")),
		ShutdownTimeout: timeout,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
