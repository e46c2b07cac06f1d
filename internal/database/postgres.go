// Package database opens the PostgreSQL connection used by the durable booking store.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotConfigured is returned when no database URL is set.
var ErrNotConfigured = errors.New("no database URL configured")

// PostgresConfig holds connection settings.
type PostgresConfig struct {
	URL            string
	ConnectTimeout time.Duration
	Debug          bool
}

// Connect opens a GORM handle and verifies it with a ping bounded by ConnectTimeout.
func Connect(ctx context.Context, cfg PostgresConfig, log *zap.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}

	logMode := logger.Silent
	if cfg.Debug {
		logMode = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:               logger.Default.LogMode(logMode),
		DisableAutomaticPing: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected")
	return db, nil
}
