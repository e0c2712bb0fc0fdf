package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DSN", "")
	t.Setenv("ADDR", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("DB_LOG_LEVEL", "")
	t.Setenv("MAX_DB_CONNECTIONS", "")

	cfg := Load()
	assert.Equal(t, "0.0.0.0:8090", cfg.Addr)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.Equal(t, 10, cfg.MaxConnections)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("MAX_DB_CONNECTIONS", "3")

	cfg := Load()
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, 3, cfg.MaxConnections)
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus_Mons"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg = &Config{Timezone: "America/Chicago"}
	loc := cfg.Location()
	assert.Equal(t, "America/Chicago", loc.String())
}

func TestMaxConnectionsBadValue(t *testing.T) {
	t.Setenv("MAX_DB_CONNECTIONS", "plenty")

	cfg := Load()
	assert.Equal(t, 10, cfg.MaxConnections)
}
