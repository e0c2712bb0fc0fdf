package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimezone anchors "today" and week-ending math when TIMEZONE is not
// set. It must match the business location, not the server's zone.
const DefaultTimezone = "America/Chicago"

type Config struct {
	DSN            string
	Addr           string
	Timezone       string
	SigningSecret  string // base64; empty disables API authentication
	MaxConnections int
	DBLogLevel     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		DSN:            os.Getenv("DSN"),
		Addr:           getEnv("ADDR", "0.0.0.0:8090"),
		Timezone:       getEnv("TIMEZONE", DefaultTimezone),
		SigningSecret:  os.Getenv("TIMECLOCK_SIGNING_SECRET"),
		MaxConnections: getEnvInt("MAX_DB_CONNECTIONS", 10),
		DBLogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
	}
}

// Location resolves the configured timezone, falling back to UTC if the zone
// database does not know the name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, falling back to UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
