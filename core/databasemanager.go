package core

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// ParseLogLevel maps a config string to a LogLevel. Unknown values are
// treated as warn.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	case "info":
		return LogLevelInfo
	}
	return LogLevelWarn
}

// DatabaseManager owns the process-wide connection pool. It is constructed
// once by the entry point and passed into handlers; domain functions receive
// a *gorm.DB and never touch globals.
type DatabaseManager struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// New creates the global pool (e.g. 10 conns). dsn is a standard Postgres
// connection string.
func New(dsn string, maxConnection int, level LogLevel) (*DatabaseManager, error) {
	gormLogLevel := logger.Silent
	switch level {
	case LogLevelError:
		gormLogLevel = logger.Error
	case LogLevelWarn:
		gormLogLevel = logger.Warn
	case LogLevelInfo:
		gormLogLevel = logger.Info
	case LogLevelSilent:
		gormLogLevel = logger.Silent
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{db: db, sqlDB: sqlDB}, nil
}

// NewFromDB wraps an already-open gorm handle. Used by tests to run against
// in-memory sqlite.
func NewFromDB(db *gorm.DB) *DatabaseManager {
	sqlDB, _ := db.DB()
	return &DatabaseManager{db: db, sqlDB: sqlDB}
}

// Exec runs fn with a request-scoped handle.
func (dm *DatabaseManager) Exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	return fn(dm.db.WithContext(ctx))
}

// Ping verifies connectivity to the store.
func (dm *DatabaseManager) Ping(ctx context.Context) error {
	return dm.sqlDB.PingContext(ctx)
}

// Close closes the global pool
func (dm *DatabaseManager) Close() error {
	return dm.sqlDB.Close()
}
