package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DefaultTimezone is the IANA identifier used when a factory call does
	// not name a timezone. Read once at startup.
	DefaultTimezone string
	Environment     string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	timezone := getEnv("DEFAULT_TIMEZONE", "UTC")

	if err := ValidateTimezone(timezone); err != nil {
		if environment == "production" {
			log.Fatalf("[CRITICAL] DEFAULT_TIMEZONE %q is not a recognized IANA timezone identifier", timezone)
		}
		log.Printf("[WARNING] DEFAULT_TIMEZONE %q is not a recognized IANA timezone identifier. Falling back to UTC.", timezone)
		timezone = "UTC"
	}

	return &Config{
		DefaultTimezone: timezone,
		Environment:     environment,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// ValidateTimezone checks that name is a recognized IANA timezone identifier
func ValidateTimezone(name string) error {
	_, err := time.LoadLocation(name)
	return err
}
